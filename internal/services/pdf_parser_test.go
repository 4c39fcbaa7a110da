package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPageCountRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "cv.pdf")
	if err := os.WriteFile(garbage, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	parser := NewPDFParserService()

	for _, path := range []string{garbage, filepath.Join(dir, "missing.pdf")} {
		if _, err := parser.PageCount(path); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("PageCount(%s) err = %v, want ErrInvalidInput", filepath.Base(path), err)
		}
	}
}

func TestExtractGuideTextMissingFile(t *testing.T) {
	if _, err := NewPDFParserService().ExtractGuideText(filepath.Join(t.TempDir(), "guide.pdf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

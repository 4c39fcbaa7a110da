package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFParserService checks uploaded resumes and reads career-guide text for
// ingestion. Resume content itself is never parsed; the model sees page
// images.
type PDFParserService interface {
	PageCount(filePath string) (int, error)
	ExtractGuideText(filePath string) (*GuideContent, error)
}

type GuideContent struct {
	Source    string
	Text      string
	PageCount int
	Skipped   int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// PageCount is the only shape check done on uploads.
func (p *pdfParserService) PageCount(filePath string) (int, error) {
	var n int
	err := withPDF(filePath, func(r *pdf.Reader) error {
		n = r.NumPage()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: not a readable PDF: %v", ErrInvalidInput, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: PDF has no pages", ErrInvalidInput)
	}

	return n, nil
}

// ExtractGuideText joins the plain text of every readable page, separated by
// blank lines so the chunker sees page breaks as paragraph breaks.
func (p *pdfParserService) ExtractGuideText(filePath string) (*GuideContent, error) {
	content := &GuideContent{Source: filePath}
	var pages []string

	err := withPDF(filePath, func(r *pdf.Reader) error {
		content.PageCount = r.NumPage()

		for i := 1; i <= content.PageCount; i++ {
			page := r.Page(i)
			if page.V.IsNull() {
				content.Skipped++
				continue
			}

			text, err := page.GetPlainText(nil)
			if err != nil {
				log.Printf("⚠️  Skipping page %d of %s: %v\n", i, filePath, err)
				content.Skipped++
				continue
			}
			if text = strings.TrimSpace(text); text != "" {
				pages = append(pages, text)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", filePath, err)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text content found in %s", filePath)
	}

	content.Text = strings.Join(pages, "\n\n")
	return content, nil
}

func withPDF(filePath string, fn func(r *pdf.Reader) error) error {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(r)
}

package services

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"sachinggsingh/resume-ai/internal/config"
)

func TestEmbeddingInputTruncatesOnRunes(t *testing.T) {
	text := "a" + strings.Repeat("é", maxEmbeddingRunes)

	got := truncateRunes(text, maxEmbeddingRunes)

	if !utf8.ValidString(got) {
		t.Fatal("truncated input is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != maxEmbeddingRunes {
		t.Errorf("got %d runes, want %d", n, maxEmbeddingRunes)
	}
	if short := "résumé"; truncateRunes(short, maxEmbeddingRunes) != short {
		t.Error("short input should be unchanged")
	}
}

func TestNewGeminiServiceRequiresAPIKey(t *testing.T) {
	if _, err := NewGeminiService(config.GeminiConfig{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

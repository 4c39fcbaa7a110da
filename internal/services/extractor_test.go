package services

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"sachinggsingh/resume-ai/internal/models"
)

func TestExtractRoundTrip(t *testing.T) {
	want := &models.ATSSummary{
		ATSScore:            82,
		KeywordsMatch:       64,
		FormatScore:         91,
		KeyStrengths:        []string{"Quantified impact", "", "Clean layout"},
		AreasForImprovement: []string{"Few cloud keywords"},
		Recommendations:     []string{"Mention Kubernetes", "Add certifications", "Shorten summary"},
		KeywordAnalysis:     "Backend keywords present, cloud keywords sparse.",
		OverallAssessment:   "Strong resume that needs minor tailoring.",
	}

	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := NewResultExtractor().Extract(string(raw))
	if !got.Structured {
		t.Fatalf("expected structured result, got raw %q", got.RawText)
	}
	if !reflect.DeepEqual(got.Summary, want) {
		t.Errorf("round trip mismatch:\n got %#v\nwant %#v", got.Summary, want)
	}
}

func TestExtractRecoversScores(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		atsScore int
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"atsScore\":85,\"keywordsMatch\":90,\"formatScore\":70,\"keyStrengths\":[\"a\"]}\n```",
			atsScore: 85,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"atsScore\":77,\"keywordsMatch\":90,\"formatScore\":70}\n```",
			atsScore: 77,
		},
		{
			name:     "prose around json",
			input:    `Here is the analysis: {"atsScore":60,"keywordsMatch":55,"formatScore":65} Thanks!`,
			atsScore: 60,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n   {\"atsScore\":42,\"keywordsMatch\":1,\"formatScore\":2}  \n",
			atsScore: 42,
		},
		{
			name:     "numeric string score",
			input:    `{"atsScore":"88","keywordsMatch":90,"formatScore":70}`,
			atsScore: 88,
		},
		{
			name:     "fractional score rounds",
			input:    `{"atsScore":72.6,"keywordsMatch":90,"formatScore":70}`,
			atsScore: 73,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewResultExtractor().Extract(tc.input)
			if !got.Structured {
				t.Fatalf("expected structured result, got raw %q", got.RawText)
			}
			if got.Summary.ATSScore != tc.atsScore {
				t.Errorf("atsScore = %d, want %d", got.Summary.ATSScore, tc.atsScore)
			}
		})
	}
}

func TestExtractGarbageUsesFallback(t *testing.T) {
	got := NewResultExtractor().Extract("not json at all")

	if !got.Structured {
		t.Fatal("fallback must be structured")
	}
	s := got.Summary
	if s.ATSScore != 75 || s.KeywordsMatch != 70 || s.FormatScore != 80 {
		t.Errorf("fallback scores = %d/%d/%d, want 75/70/80", s.ATSScore, s.KeywordsMatch, s.FormatScore)
	}
	if !strings.Contains(s.OverallAssessment, "not json at all") {
		t.Errorf("overallAssessment %q should embed the raw text", s.OverallAssessment)
	}
	if !strings.Contains(s.KeywordAnalysis, "not json at all") {
		t.Errorf("keywordAnalysis %q should embed the raw text", s.KeywordAnalysis)
	}
	if len(s.KeyStrengths) == 0 || len(s.AreasForImprovement) == 0 || len(s.Recommendations) == 0 {
		t.Error("fallback lists must be populated")
	}
}

func TestExtractFallbackTruncatesRunes(t *testing.T) {
	raw := strings.Repeat("é", 300)

	got := NewResultExtractor().Extract(raw)

	want := strings.Repeat("é", 200) + "..."
	if !strings.Contains(got.Summary.OverallAssessment, want) {
		t.Errorf("expected 200-rune preview in %q", got.Summary.OverallAssessment)
	}
	if strings.Contains(got.Summary.OverallAssessment, strings.Repeat("é", 201)) {
		t.Error("preview longer than 200 runes")
	}
}

func TestExtractWrongShapeIsUnstructured(t *testing.T) {
	testCases := []string{
		`{"foo":"bar"}`,
		`{"atsScore":80,"keywordsMatch":70}`,
		`{"atsScore":0,"keywordsMatch":70,"formatScore":60}`,
		`{"atsScore":"high","keywordsMatch":70,"formatScore":60}`,
		`{"atsScore":1e30,"keywordsMatch":70,"formatScore":60}`,
		`{"atsScore":80,"keywordsMatch":-1e30,"formatScore":60}`,
		`{"atsScore":80,"keywordsMatch":70,"formatScore":"1e400"}`,
		`[1,2,3]`,
		`"just a string"`,
		`null`,
	}

	for _, input := range testCases {
		got := NewResultExtractor().Extract(input)
		if got.Structured {
			t.Errorf("Extract(%q) should be unstructured", input)
			continue
		}
		if got.RawText != input {
			t.Errorf("RawText = %q, want %q", got.RawText, input)
		}
	}
}

func TestExtractIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"{",
		"}",
		"} {",
		"```",
		"```json",
		`{"atsScore":85,"keywordsMatch":`,
		"```json\n{\"atsScore\":85,\n```",
		"Sure! {\"atsScore\": 85} and then {broken",
		strings.Repeat("{", 1000),
	}

	for _, input := range inputs {
		got := NewResultExtractor().Extract(input)
		if got == nil {
			t.Fatalf("Extract(%q) returned nil", input)
		}
		if got.Structured {
			s := got.Summary
			if s == nil || s.KeyStrengths == nil || s.AreasForImprovement == nil || s.Recommendations == nil {
				t.Errorf("Extract(%q) returned an incomplete structured summary: %#v", input, s)
			}
		}
	}
}

func TestExtractNormalizesLists(t *testing.T) {
	input := `{"atsScore":80,"keywordsMatch":70,"formatScore":60,"keyStrengths":"Single strength","recommendations":["a",null,"",2]}`

	got := NewResultExtractor().Extract(input)
	if !got.Structured {
		t.Fatalf("expected structured result")
	}
	if !reflect.DeepEqual(got.Summary.KeyStrengths, []string{"Single strength"}) {
		t.Errorf("KeyStrengths = %#v", got.Summary.KeyStrengths)
	}
	if !reflect.DeepEqual(got.Summary.Recommendations, []string{"a", ""}) {
		t.Errorf("Recommendations = %#v", got.Summary.Recommendations)
	}
	if got.Summary.AreasForImprovement == nil || len(got.Summary.AreasForImprovement) != 0 {
		t.Errorf("AreasForImprovement = %#v, want empty list", got.Summary.AreasForImprovement)
	}
}

func TestStripCodeFences(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```{\"a\":1}```", `{"a":1}`},
		{"text {\"a\":{\"b\":2}} more", `{"a":{"b":2}}`},
		{"no braces", "no braces"},
		{"} reversed {", "} reversed {"},
	}

	for _, tc := range testCases {
		if got := stripCodeFences(tc.input); got != tc.expected {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"sachinggsingh/resume-ai/internal/models"
)

// Placeholder scores used when no attempt recovers JSON from the model output.
const (
	fallbackATSScore      = 75
	fallbackKeywordsMatch = 70
	fallbackFormatScore   = 80
	fallbackPreviewRunes  = 200
)

var scoreKeys = [...]string{"atsScore", "keywordsMatch", "formatScore"}

// ResultExtractor turns free-form model output into an AnalysisResult.
type ResultExtractor struct{}

func NewResultExtractor() *ResultExtractor {
	return &ResultExtractor{}
}

// Extract never fails. It tries, in order: the trimmed text as JSON, the text
// with code fences removed and narrowed to its outermost braces, and the
// untouched text. When nothing parses it synthesizes a placeholder summary.
func (e *ResultExtractor) Extract(rawText string) *models.AnalysisResult {
	trimmed := strings.TrimSpace(rawText)

	if doc, err := parseJSON(trimmed); err == nil {
		return e.fromDocument(doc, rawText)
	}

	cleaned := stripCodeFences(trimmed)
	doc, err := parseJSON(cleaned)
	if err == nil {
		return e.fromDocument(doc, rawText)
	}
	log.Printf("⚠️  Failed to parse cleaned model response: %v\n", err)

	if doc, err := parseJSON(rawText); err == nil {
		log.Println("✅ Parsed original model response on retry")
		return e.fromDocument(doc, rawText)
	}

	log.Println("⚠️  All parse attempts failed, using fallback summary")
	return fallbackResult(rawText)
}

// fromDocument accepts a parsed value only if it carries the three scores.
// Anything else is valid JSON of the wrong shape and is passed through raw.
func (e *ResultExtractor) fromDocument(doc interface{}, rawText string) *models.AnalysisResult {
	obj, ok := doc.(map[string]interface{})
	if !ok {
		log.Println("⚠️  Model response is JSON but not an object")
		return models.NewUnstructuredResult(rawText)
	}

	var scores [len(scoreKeys)]int
	for i, key := range scoreKeys {
		score, ok := scoreValue(obj[key])
		if !ok {
			log.Printf("⚠️  Missing required field %q in model response\n", key)
			return models.NewUnstructuredResult(rawText)
		}
		scores[i] = score
	}

	return models.NewStructuredResult(&models.ATSSummary{
		ATSScore:            scores[0],
		KeywordsMatch:       scores[1],
		FormatScore:         scores[2],
		KeyStrengths:        stringList(obj["keyStrengths"]),
		AreasForImprovement: stringList(obj["areasForImprovement"]),
		Recommendations:     stringList(obj["recommendations"]),
		KeywordAnalysis:     textValue(obj["keywordAnalysis"]),
		OverallAssessment:   textValue(obj["overallAssessment"]),
	})
}

func parseJSON(text string) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// stripCodeFences removes markdown fence markers and narrows the text to the
// span between the first '{' and the last '}', when there is one.
func stripCodeFences(text string) string {
	for _, fence := range []string{"```json", "```JSON", "```"} {
		text = strings.ReplaceAll(text, fence, "")
	}
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

// scoreValue reports a usable score. Zero, empty, non-numeric and values
// outside the int32 range count as missing.
func scoreValue(v interface{}) (int, bool) {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if f == 0 || math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(math.Round(f)), true
}

func stringList(v interface{}) []string {
	out := []string{}

	switch val := v.(type) {
	case []interface{}:
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func textValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func fallbackResult(rawText string) *models.AnalysisResult {
	preview := truncateRunes(rawText, fallbackPreviewRunes)

	return models.NewStructuredResult(&models.ATSSummary{
		ATSScore:            fallbackATSScore,
		KeywordsMatch:       fallbackKeywordsMatch,
		FormatScore:         fallbackFormatScore,
		KeyStrengths:        []string{"Resume analysis completed", "Basic structure detected"},
		AreasForImprovement: []string{"Unable to parse detailed analysis", "Check resume format"},
		Recommendations:     []string{"Review the raw analysis below", "Consider manual review"},
		KeywordAnalysis:     "Analysis completed but JSON parsing failed. Raw response: " + preview + "...",
		OverallAssessment:   "Resume analysis completed but structured data unavailable. Raw analysis: " + preview + "...",
	})
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

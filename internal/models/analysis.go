package models

import "encoding/json"

// ATSSummary is the structured assessment of a resume against a target role.
type ATSSummary struct {
	ATSScore            int      `json:"atsScore"`
	KeywordsMatch       int      `json:"keywordsMatch"`
	FormatScore         int      `json:"formatScore"`
	KeyStrengths        []string `json:"keyStrengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Recommendations     []string `json:"recommendations"`
	KeywordAnalysis     string   `json:"keywordAnalysis"`
	OverallAssessment   string   `json:"overallAssessment"`
}

// AnalysisResult is either a structured summary or the raw model text.
// Exactly one of Summary and RawText is meaningful, selected by Structured.
type AnalysisResult struct {
	Structured bool
	Summary    *ATSSummary
	RawText    string
}

func NewStructuredResult(summary *ATSSummary) *AnalysisResult {
	return &AnalysisResult{Structured: true, Summary: summary}
}

func NewUnstructuredResult(rawText string) *AnalysisResult {
	return &AnalysisResult{RawText: rawText}
}

// MarshalJSON renders {"summary": <object|string>, "isStructured": bool}.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	var summary interface{} = r.RawText
	if r.Structured {
		summary = r.Summary
	}

	return json.Marshal(struct {
		Summary      interface{} `json:"summary"`
		IsStructured bool        `json:"isStructured"`
	}{
		Summary:      summary,
		IsStructured: r.Structured,
	})
}

type ConversationRole string

const (
	RoleUser      ConversationRole = "user"
	RoleAssistant ConversationRole = "assistant"
)

// ConversationTurn is one message of a caller-owned chat transcript.
type ConversationTurn struct {
	Role    ConversationRole `json:"role"`
	Content string           `json:"content"`
}

package services

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"sachinggsingh/resume-ai/internal/models"
)

// ModelRequest is a single multimodal turn: the instruction prompt followed by
// the inlined page image.
type ModelRequest struct {
	Prompt   string
	Image    []byte
	MIMEType string
}

// Contents converts the request into the generative API's content list.
func (r *ModelRequest) Contents() []*genai.Content {
	parts := []*genai.Part{genai.NewPartFromText(r.Prompt)}
	if len(r.Image) > 0 {
		parts = append(parts, genai.NewPartFromBytes(r.Image, r.MIMEType))
	}

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSAnalysisPrompt creates the instruction for scoring a resume image.
func (pb *PromptBuilder) BuildATSAnalysisPrompt(targetRole string) string {
	return fmt.Sprintf(`You are an ATS (applicant tracking system) resume analyzer. Analyze the attached resume for the job role: "%s".

You must respond with ONLY a valid JSON object. No explanations, no markdown, no additional text.

Use exactly these keys and replace the example values with your analysis. Scores are integers from 0 to 100:

{
  "atsScore": 85,
  "keywordsMatch": 92,
  "formatScore": 78,
  "keyStrengths": ["Strong keyword optimization", "Clear professional summary", "Quantified achievements"],
  "areasForImprovement": ["Add more industry-specific keywords", "Include recent certifications", "Tailor experience to the role"],
  "recommendations": ["Add 3-5 relevant keywords", "Include recent project examples", "Tailor the summary to the target role"],
  "keywordAnalysis": "Which role-relevant keywords are present and which important ones are missing.",
  "overallAssessment": "Two or three sentences on how the resume is likely to perform in ATS screening for this role."
}

IMPORTANT: Return ONLY the JSON object. Nothing else.`, targetRole)
}

// BuildRequest validates its inputs before anything is sent to the model.
func (pb *PromptBuilder) BuildRequest(targetRole string, image []byte, mimeType string) (*ModelRequest, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return nil, fmt.Errorf("%w: job title is required", ErrInvalidInput)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: resume image is empty", ErrInvalidInput)
	}
	if mimeType == "" {
		mimeType = defaultImageMIMEType
	}

	return &ModelRequest{
		Prompt:   pb.BuildATSAnalysisPrompt(targetRole),
		Image:    image,
		MIMEType: mimeType,
	}, nil
}

// BuildChatPrompt renders the transcript in input order inside the advisor
// framing. guideContext is optional reference material.
func (pb *PromptBuilder) BuildChatPrompt(history []models.ConversationTurn, guideContext string) string {
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		speaker := "Assistant"
		if turn.Role == models.RoleUser {
			speaker = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, turn.Content))
	}

	var reference string
	if strings.TrimSpace(guideContext) != "" {
		reference = fmt.Sprintf("\nReference material from career guides (use it when relevant):\n%s\n", guideContext)
	}

	return fmt.Sprintf(`You are an AI Resume Assistant specializing in resume optimization, job applications and career advice.

Your expertise includes:
- Resume writing and formatting tips
- ATS (Applicant Tracking System) optimization
- Job application strategies
- Interview preparation
- Career development advice
- Industry-specific resume guidance
%s
Current conversation:
%s

Give helpful, professional and actionable advice. Keep responses concise but informative and keep a supportive tone.

Respond as the Assistant:`, reference, strings.Join(lines, "\n"))
}

// BuildRetrievalQuery picks the text used to search the guide collection.
func (pb *PromptBuilder) BuildRetrievalQuery(history []models.ConversationTurn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == models.RoleUser && strings.TrimSpace(history[i].Content) != "" {
			return history[i].Content
		}
	}
	return ""
}

// Helper to clean and format context from RAG results
func FormatRAGContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Guide %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

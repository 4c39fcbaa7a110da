package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"sachinggsingh/resume-ai/internal/config"
)

// maxEmbeddingRunes keeps embedding input under the model's ~10000 token limit.
const maxEmbeddingRunes = 40000

type GeminiService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateContent(ctx context.Context, req *ModelRequest) (string, error)
}

type geminiService struct {
	client          *genai.Client
	modelName       string
	embedModel      string
	temperature     float32
	maxOutputTokens int32
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrInvalidInput)
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:          client,
		modelName:       cfg.Model,
		embedModel:      cfg.EmbedModel,
		temperature:     cfg.Temperature,
		maxOutputTokens: int32(cfg.MaxOutputTokens),
	}, nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	text = truncateRunes(text, maxEmbeddingRunes)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate embedding: %v", ErrModelInvocation, err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("%w: empty embedding result", ErrModelInvocation)
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, genai.Text(prompt))
}

// GenerateContent implements GeminiService. The request carries the prompt and
// the inline page image as two parts of a single user turn.
func (g *geminiService) GenerateContent(ctx context.Context, req *ModelRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("%w: nil model request", ErrInvalidInput)
	}

	return g.generate(ctx, req.Contents())
}

func (g *geminiService) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	temperature := g.temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("%w: %v", ErrModelInvocation, err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", fmt.Errorf("%w: nil response", ErrModelInvocation)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", ErrModelInvocation, resp.PromptFeedback.BlockReason)
	}

	// An empty reply is still a successful call; callers decide what it means.
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		log.Println("⚠️  Gemini returned an empty response")
	}

	log.Printf("📊 Gemini response received: %d characters\n", len(text))
	return text, nil
}

package services

import (
	"context"
	"fmt"
)

// GuideDocType tags career-guide chunks in the vector collection.
const GuideDocType = "career_guide"

type guideRetriever struct {
	geminiService GeminiService
	qdrantService QdrantService
	limit         int
}

func NewGuideRetriever(geminiService GeminiService, qdrantService QdrantService, limit int) ContextRetriever {
	if limit <= 0 {
		limit = 3
	}

	return &guideRetriever{
		geminiService: geminiService,
		qdrantService: qdrantService,
		limit:         limit,
	}
}

// RetrieveGuides implements ContextRetriever.
func (r *guideRetriever) RetrieveGuides(ctx context.Context, query string) (string, error) {
	embedding, err := r.geminiService.GenerateEmbedding(ctx, query)
	if err != nil {
		return "", fmt.Errorf("failed to generate query embedding: %w", err)
	}

	results, err := r.qdrantService.SearchSimilar(ctx, embedding, GuideDocType, r.limit)
	if err != nil {
		return "", err
	}

	return FormatRAGContext(results), nil
}

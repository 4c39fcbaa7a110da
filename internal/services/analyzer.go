package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"sachinggsingh/resume-ai/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, documentURL, targetRole string, page int) (*models.AnalysisResult, error)
}

type analyzerService struct {
	resolver      RenderingResolver
	fetcher       AssetFetcher
	geminiService GeminiService
	promptBuilder *PromptBuilder
	extractor     *ResultExtractor
}

func NewAnalyzerService(
	resolver RenderingResolver,
	fetcher AssetFetcher,
	geminiService GeminiService,
) AnalyzerService {
	return &analyzerService{
		resolver:      resolver,
		fetcher:       fetcher,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		extractor:     NewResultExtractor(),
	}
}

// Analyze scores one rendered page of the document against targetRole. Page
// is 1-based; values below 1 select the first page. Input is validated before
// any network call. Parse failures never surface as errors.
func (a *analyzerService) Analyze(ctx context.Context, documentURL, targetRole string, page int) (*models.AnalysisResult, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return nil, fmt.Errorf("%w: job title is required", ErrInvalidInput)
	}
	if !strings.HasPrefix(documentURL, "http") {
		return nil, fmt.Errorf("%w: invalid document url %q", ErrInvalidInput, documentURL)
	}
	if page < 1 {
		page = 1
	}

	log.Printf("🔍 Resolving pages for %s\n", documentURL)
	pages := a.resolver.ResolvePages(ctx, documentURL)
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: no renderable pages found, upload a document first", ErrAssetUnavailable)
	}
	if page > len(pages) {
		return nil, fmt.Errorf("%w: page %d out of range, document has %d page(s)", ErrInvalidInput, page, len(pages))
	}

	imageURL := pages[page-1]
	image, mimeType, err := a.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		log.Printf("❌ Failed to fetch page image %s: %v\n", imageURL, err)
		return nil, err
	}
	log.Printf("📄 Page %d fetched: %d bytes (%s)\n", page, len(image), mimeType)

	req, err := a.promptBuilder.BuildRequest(targetRole, image, mimeType)
	if err != nil {
		return nil, err
	}

	log.Printf("🤖 Analyzing resume for role %q with LLM...\n", targetRole)
	response, err := a.geminiService.GenerateContent(ctx, req)
	if err != nil {
		log.Printf("❌ Resume analysis failed: %v\n", err)
		return nil, err
	}
	log.Printf("📝 First characters of response: %s\n", truncateRunes(response, fallbackPreviewRunes))

	result := a.extractor.Extract(response)
	log.Printf("✅ Analysis completed (structured: %t)\n", result.Structured)
	return result, nil
}

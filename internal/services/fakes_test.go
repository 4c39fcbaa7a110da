package services

import (
	"context"

	"sachinggsingh/resume-ai/internal/models"
)

type fakeGemini struct {
	text     string
	err      error
	embedErr error
	prompts  []string
	requests []*ModelRequest
	embedded []string
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	f.embedded = append(f.embedded, text)
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *ModelRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.text, f.err
}

type fakeResolver struct {
	pages []string
	calls int
}

func (f *fakeResolver) PageURL(documentURL string, page int) string {
	return documentURL
}

func (f *fakeResolver) ResolvePages(ctx context.Context, documentURL string) []string {
	f.calls++
	return f.pages
}

type fakeFetcher struct {
	data    []byte
	mime    string
	err     error
	fetched []string
}

func (f *fakeFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	f.fetched = append(f.fetched, imageURL)
	return f.data, f.mime, f.err
}

type fakeRetriever struct {
	guides  string
	err     error
	queries []string
}

func (f *fakeRetriever) RetrieveGuides(ctx context.Context, query string) (string, error) {
	f.queries = append(f.queries, query)
	return f.guides, f.err
}

type fakeQdrant struct {
	results []SearchResult
	err     error
	docType string
	limit   int
}

func (f *fakeQdrant) InitCollection(ctx context.Context) error { return nil }

func (f *fakeQdrant) UpsertChunk(ctx context.Context, source, docType, text string, embedding []float32) error {
	return nil
}

func (f *fakeQdrant) SearchSimilar(ctx context.Context, queryEmbedding []float32, docType string, limit int) ([]SearchResult, error) {
	f.docType = docType
	f.limit = limit
	return f.results, f.err
}

func (f *fakeQdrant) DeleteSource(ctx context.Context, source string) error { return nil }

func turns(pairs ...string) []models.ConversationTurn {
	var out []models.ConversationTurn
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.ConversationTurn{Role: models.ConversationRole(pairs[i]), Content: pairs[i+1]})
	}
	return out
}

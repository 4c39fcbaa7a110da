package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// DefaultMaxProbePages bounds how many pages are probed per document.
const DefaultMaxProbePages = 10

// uploadSegment is the path marker the rendering service rewrites into a
// per-page transformation.
const uploadSegment = "/upload/"

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type RenderingResolver interface {
	PageURL(documentURL string, page int) string
	ResolvePages(ctx context.Context, documentURL string) []string
}

type renderingResolver struct {
	client   HTTPDoer
	maxPages int
}

func NewRenderingResolver(client HTTPDoer, maxPages int) RenderingResolver {
	if client == nil {
		client = http.DefaultClient
	}
	if maxPages < 1 {
		maxPages = DefaultMaxProbePages
	}

	return &renderingResolver{
		client:   client,
		maxPages: maxPages,
	}
}

// PageURL implements RenderingResolver. Page numbers are 1-based. It returns
// "" when the document URL does not follow the rendering convention.
func (r *renderingResolver) PageURL(documentURL string, page int) string {
	if page < 1 || !strings.Contains(documentURL, uploadSegment) {
		return ""
	}

	transform := fmt.Sprintf("%spg_%d,f_jpg,q_auto/", uploadSegment, page)
	return strings.Replace(documentURL, uploadSegment, transform, 1)
}

// ResolvePages implements RenderingResolver. Pages are probed strictly in
// order and the first failed probe ends the sequence, so the result is always
// a prefix of the real pages. Probe errors are never returned.
func (r *renderingResolver) ResolvePages(ctx context.Context, documentURL string) []string {
	pages := make([]string, 0, r.maxPages)

	if !strings.Contains(documentURL, uploadSegment) {
		log.Printf("⚠️  Document URL has no %q segment, nothing to render: %s\n", uploadSegment, documentURL)
		return pages
	}

	for page := 1; page <= r.maxPages; page++ {
		pageURL := r.PageURL(documentURL, page)
		if !r.exists(ctx, pageURL) {
			break
		}
		pages = append(pages, pageURL)
	}

	log.Printf("🔍 Resolved %d page(s) for %s\n", len(pages), documentURL)
	return pages
}

func (r *renderingResolver) exists(ctx context.Context, pageURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, pageURL, nil)
	if err != nil {
		return false
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("⚠️  Probe failed for %s: %v\n", pageURL, err)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

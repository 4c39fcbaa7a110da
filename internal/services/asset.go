package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

const (
	defaultImageMIMEType = "image/jpeg"
	maxImageBytes        = 20 << 20
)

// AssetFetcher downloads a rendered page image.
type AssetFetcher interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, string, error)
}

type assetFetcher struct {
	client          HTTPDoer
	defaultMIMEType string
}

func NewAssetFetcher(client HTTPDoer, defaultMIMEType string) AssetFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if defaultMIMEType == "" {
		defaultMIMEType = defaultImageMIMEType
	}

	return &assetFetcher{
		client:          client,
		defaultMIMEType: defaultMIMEType,
	}
}

// FetchImage implements AssetFetcher. Any transport failure, non-2xx status or
// empty body is reported as ErrAssetUnavailable.
func (f *assetFetcher) FetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid image url %q: %v", ErrAssetUnavailable, imageURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to fetch image: %v", ErrAssetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("%w: HTTP %d fetching %s", ErrAssetUnavailable, resp.StatusCode, imageURL)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read image: %v", ErrAssetUnavailable, err)
	}

	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty image data received", ErrAssetUnavailable)
	}

	return data, f.mimeType(resp.Header.Get("Content-Type")), nil
}

func (f *assetFetcher) mimeType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return f.defaultMIMEType
	}
	return mediaType
}

package idcard

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"
)

// maxImageBytes caps a fetched member photo. Anything larger is a broken or
// hostile URL, not a portrait.
const maxImageBytes = 10 << 20

// ImageBlob is a fetched image ready for embedding.
type ImageBlob struct {
	ContentType string
	Data        []byte
}

// Fetcher downloads remote images referenced by member records. Each fetch is
// bounded by its own timeout so one dead host cannot stall a render.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:  &http.Client{},
		timeout: timeout,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*ImageBlob, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", url, err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", url, maxImageBytes)
	}

	return &ImageBlob{
		ContentType: mediaTypeOf(resp.Header.Get("Content-Type"), data),
		Data:        data,
	}, nil
}

// mediaTypeOf strips parameters like "; charset=utf-8" from the header,
// falling back to content sniffing when the header is absent or malformed.
func mediaTypeOf(header string, data []byte) string {
	if mediaType, _, err := mime.ParseMediaType(header); err == nil {
		return mediaType
	}
	return http.DetectContentType(data)
}

// Package thumbnail fetches, caches and renders list item images as
// terminal half-block art.
package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Decoders for formats image.Decode should recognise
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/juanibiapina/layouts/internal/logging"
)

const (
	defaultTimeout = 10 * time.Second
	maxImageBytes  = 8 << 20
)

// Loader fetches remote images, consulting an optional Cache first
type Loader struct {
	client *http.Client
	cache  *Cache
}

// NewLoader creates a loader. client may be nil to use a default with a timeout;
// cache may be nil to disable disk caching.
func NewLoader(client *http.Client, cache *Cache) *Loader {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Loader{client: client, cache: cache}
}

// Load returns the decoded image at url
func (l *Loader) Load(ctx context.Context, url string) (image.Image, error) {
	if l.cache != nil {
		body, ok, err := l.cache.Get(url)
		if err != nil {
			logging.Logger.Warn("Thumbnail cache read failed", "url", url, "error", err)
		}
		if ok {
			img, _, err := image.Decode(bytes.NewReader(body))
			if err == nil {
				logging.Logger.Debug("Thumbnail cache hit", "url", url)
				return img, nil
			}
			// Corrupt entry, fall through and refetch
			logging.Logger.Warn("Cached thumbnail failed to decode", "url", url, "error", err)
		}
	}

	body, err := l.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", url, err)
	}
	logging.Logger.Debug("Thumbnail fetched", "url", url, "format", format, "bytes", len(body))

	if l.cache != nil {
		if err := l.cache.Put(url, body); err != nil {
			logging.Logger.Warn("Thumbnail cache write failed", "url", url, "error", err)
		}
	}

	return img, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", url, err)
	}
	if len(body) > maxImageBytes {
		return nil, fmt.Errorf("image %s exceeds %d bytes", url, maxImageBytes)
	}
	return body, nil
}

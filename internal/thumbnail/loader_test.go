package thumbnail

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(w, h, color.NRGBA{R: 0xff, A: 0xff})); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func imageServer(t *testing.T, body []byte, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestLoader_Load(t *testing.T) {
	server, _ := imageServer(t, pngBytes(t, 6, 3), http.StatusOK)

	img, err := NewLoader(server.Client(), nil).Load(context.Background(), server.URL+"/robot.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Errorf("Load() bounds = %v, want 6x3", got)
	}
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		status  int
		wantErr string
	}{
		{name: "not found", body: []byte("nope"), status: http.StatusNotFound, wantErr: "unexpected status"},
		{name: "not an image", body: []byte("<html></html>"), status: http.StatusOK, wantErr: "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := imageServer(t, tt.body, tt.status)
			_, err := NewLoader(server.Client(), nil).Load(context.Background(), server.URL)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoader_UsesCache(t *testing.T) {
	server, hits := imageServer(t, pngBytes(t, 4, 4), http.StatusOK)
	loader := NewLoader(server.Client(), openTestCache(t))
	url := server.URL + "/robot.png"

	for i := 0; i < 3; i++ {
		if _, err := loader.Load(context.Background(), url); err != nil {
			t.Fatalf("Load() #%d error = %v", i, err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}
}

func TestLoader_RefetchesCorruptCacheEntry(t *testing.T) {
	server, hits := imageServer(t, pngBytes(t, 4, 4), http.StatusOK)
	cache := openTestCache(t)
	url := server.URL + "/robot.png"
	if err := cache.Put(url, []byte("garbage")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if _, err := NewLoader(server.Client(), cache).Load(context.Background(), url); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	server, _ := imageServer(t, pngBytes(t, 4, 4), http.StatusOK)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewLoader(server.Client(), nil).Load(ctx, server.URL); err == nil {
		t.Error("Load() with cancelled context error = nil, want error")
	}
}

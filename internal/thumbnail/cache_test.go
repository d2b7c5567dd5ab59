package thumbnail

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "thumbnails.db"))
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_GetMiss(t *testing.T) {
	c := openTestCache(t)

	body, ok, err := c.Get("https://example.com/missing.png")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || body != nil {
		t.Errorf("Get() = %v, %v; want miss", body, ok)
	}
}

func TestCache_PutThenGet(t *testing.T) {
	c := openTestCache(t)
	url := "https://example.com/robot.png"

	if err := c.Put(url, []byte("first")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := c.Put(url, []byte("second")); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}

	body, ok, err := c.Get(url)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || !bytes.Equal(body, []byte("second")) {
		t.Errorf("Get() = %q, %v; want %q, true", body, ok, "second")
	}

	n, err := c.Len()
	if err != nil {
		t.Fatalf("Len() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Len() = %d, want 1", n)
	}
}

func TestCache_Prune(t *testing.T) {
	c := openTestCache(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	c.now = func() time.Time { return base }
	if err := c.Put("old", []byte("o")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	c.now = func() time.Time { return base.Add(48 * time.Hour) }
	if err := c.Put("new", []byte("n")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	removed, err := c.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("Prune(24h) removed %d, want 1", removed)
	}
	if _, ok, _ := c.Get("old"); ok {
		t.Error("old entry survived prune")
	}
	if _, ok, _ := c.Get("new"); !ok {
		t.Error("new entry was pruned")
	}

	if _, err := c.Prune(0); err == nil {
		t.Error("Prune(0) error = nil, want error")
	}
	if n, _ := c.Len(); n != 1 {
		t.Errorf("Prune(0) left %d entries, want 1", n)
	}
}

func TestCache_Clear(t *testing.T) {
	c := openTestCache(t)
	for _, url := range []string{"a", "b", "c"} {
		if err := c.Put(url, []byte(url)); err != nil {
			t.Fatalf("Put(%q) error = %v", url, err)
		}
	}

	removed, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if removed != 3 {
		t.Errorf("Clear() removed %d, want 3", removed)
	}
	if n, _ := c.Len(); n != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", n)
	}
}

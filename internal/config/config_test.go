package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
list_size = 20
scroll_duration = "1s"
cache = false
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListSize != 20 {
		t.Errorf("ListSize = %d, want 20", cfg.ListSize)
	}
	if cfg.ScrollDuration.Duration != time.Second {
		t.Errorf("ScrollDuration = %v, want 1s", cfg.ScrollDuration)
	}
	if cfg.Cache {
		t.Error("Cache = true, want false")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Untouched keys keep their defaults
	if cfg.ImageURL != DefaultImageURL {
		t.Errorf("ImageURL = %q, want default", cfg.ImageURL)
	}
	if cfg.ToastDuration.Duration != 2*time.Second {
		t.Errorf("ToastDuration = %v, want 2s", cfg.ToastDuration)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed toml",
			content: "list_size = ",
			wantErr: "failed to parse config",
		},
		{
			name:    "bad duration",
			content: `scroll_duration = "fast"`,
			wantErr: "failed to parse config",
		},
		{
			name:    "negative list size",
			content: "list_size = -1",
			wantErr: "list_size must not be negative",
		},
		{
			name:    "non http image url",
			content: `image_url = "file:///etc/passwd"`,
			wantErr: "image_url must be http or https",
		},
		{
			name:    "zero toast duration",
			content: `toast_duration = "0s"`,
			wantErr: "toast_duration must be positive",
		},
		{
			name:    "zero cache max age",
			content: `cache_max_age = "0s"`,
			wantErr: "cache_max_age must be positive",
		},
		{
			name:    "negative cache max age",
			content: `cache_max_age = "-1h"`,
			wantErr: "cache_max_age must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestEncode_RoundTripsThroughLoad(t *testing.T) {
	want := Default()
	want.ListSize = 7
	want.ScrollDuration = Duration{150 * time.Millisecond}

	data, err := want.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(string(data), "150ms") {
		t.Errorf("Encode() = %s, want human readable duration", data)
	}

	got, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load(Encode()) = %+v, want %+v", got, want)
	}
}

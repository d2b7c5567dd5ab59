package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultImageURL is the placeholder image shown next to every list item
const DefaultImageURL = "https://developer.android.com/images/brand/Android_Robot.png"

// Config holds the settings read from config.toml
type Config struct {
	ListSize          int      `toml:"list_size"`
	ImageURL          string   `toml:"image_url"`
	ScrollDuration    Duration `toml:"scroll_duration"`
	ToastDuration     Duration `toml:"toast_duration"`
	Cache             bool     `toml:"cache"`
	CacheMaxAge       Duration `toml:"cache_max_age"`
	TelemetryKey      string   `toml:"telemetry_key"`
	TelemetryEndpoint string   `toml:"telemetry_endpoint"`
	LogLevel          string   `toml:"log_level"`
}

// Duration is a time.Duration that reads and writes Go duration strings ("300ms")
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		ListSize:          100,
		ImageURL:          DefaultImageURL,
		ScrollDuration:    Duration{300 * time.Millisecond},
		ToastDuration:     Duration{2 * time.Second},
		Cache:             true,
		CacheMaxAge:       Duration{7 * 24 * time.Hour},
		TelemetryEndpoint: "https://eu.i.posthog.com",
		LogLevel:          "info",
	}
}

// Load reads the config file at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.ListSize < 0 {
		return fmt.Errorf("list_size must not be negative, got %d", c.ListSize)
	}
	if c.ImageURL != "" {
		u, err := url.Parse(c.ImageURL)
		if err != nil {
			return fmt.Errorf("image_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("image_url must be http or https, got %q", c.ImageURL)
		}
	}
	if c.ScrollDuration.Duration < 0 {
		return fmt.Errorf("scroll_duration must not be negative")
	}
	if c.ToastDuration.Duration <= 0 {
		return fmt.Errorf("toast_duration must be positive")
	}
	if c.CacheMaxAge.Duration <= 0 {
		return fmt.Errorf("cache_max_age must be positive")
	}
	return nil
}

// Encode renders the config as TOML
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juanibiapina/layouts/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const fileConfig = `
list_size = 20
image_url = "https://file.example/robot.png"
cache = true
`

// resetFlags restores every flag in the tree to its default so each run
// starts clean. Cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with args and returns what it printed
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	oldLogPath := logPath
	logPath = func() string { return filepath.Join(dir, "layouts.log") }
	t.Setenv("LAYOUTS_TELEMETRY_DISABLED", "1")

	resetFlags(RootCmd)
	cfg = config.Config{}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		logCloser.Close()
		logPath = oldLogPath
		RootCmd.SetArgs(nil)
		RootCmd.SetOut(nil)
		RootCmd.SetErr(nil)
	})

	err := RootCmd.Execute()
	return out.String(), err
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		flags     []string
		wantSize  int
		wantURL   string
		wantCache bool
	}{
		{
			name:      "file values without flags",
			wantSize:  20,
			wantURL:   "https://file.example/robot.png",
			wantCache: true,
		},
		{
			name:      "list size flag wins",
			flags:     []string{"--list-size", "5"},
			wantSize:  5,
			wantURL:   "https://file.example/robot.png",
			wantCache: true,
		},
		{
			name:      "explicit zero list size wins",
			flags:     []string{"--list-size", "0"},
			wantSize:  0,
			wantURL:   "https://file.example/robot.png",
			wantCache: true,
		},
		{
			name:      "image url flag wins",
			flags:     []string{"--image-url", "https://flag.example/cat.png"},
			wantSize:  20,
			wantURL:   "https://flag.example/cat.png",
			wantCache: true,
		},
		{
			name:      "no cache flag wins",
			flags:     []string{"--no-cache"},
			wantSize:  20,
			wantURL:   "https://file.example/robot.png",
			wantCache: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", writeConfigFile(t, fileConfig)}, tt.flags...)
			args = append(args, "config")

			if _, err := run(t, args...); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if cfg.ListSize != tt.wantSize {
				t.Errorf("ListSize = %d, want %d", cfg.ListSize, tt.wantSize)
			}
			if cfg.ImageURL != tt.wantURL {
				t.Errorf("ImageURL = %q, want %q", cfg.ImageURL, tt.wantURL)
			}
			if cfg.Cache != tt.wantCache {
				t.Errorf("Cache = %v, want %v", cfg.Cache, tt.wantCache)
			}
		})
	}
}

func TestLoadConfig_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		wantErr string
	}{
		{name: "negative list size", flags: []string{"--list-size", "-1"}, wantErr: "list_size must not be negative"},
		{name: "non http image url", flags: []string{"--image-url", "ftp://x/y.png"}, wantErr: "image_url must be http or https"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", writeConfigFile(t, fileConfig)}, tt.flags...)
			_, err := run(t, append(args, "config")...)
			if err == nil {
				t.Fatal("Execute() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Execute() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestItems_Plain(t *testing.T) {
	out, err := run(t, "--config", writeConfigFile(t, "list_size = 3"), "items")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "Item #0\nItem #1\nItem #2\n"
	if out != want {
		t.Errorf("items output = %q, want %q", out, want)
	}
}

func TestItems_JSON(t *testing.T) {
	out, err := run(t,
		"--config", writeConfigFile(t, fileConfig),
		"--list-size", "2",
		"items", "--json",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var items []itemJSON
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("items --json output is not JSON: %v\n%s", err, out)
	}
	want := []itemJSON{
		{Index: 0, Caption: "Item #0", ImageURL: "https://file.example/robot.png"},
		{Index: 1, Caption: "Item #1", ImageURL: "https://file.example/robot.png"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestItems_EmptyList(t *testing.T) {
	out, err := run(t, "--config", writeConfigFile(t, ""), "--list-size", "0", "items")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "" {
		t.Errorf("items output = %q, want empty", out)
	}
}

func TestConfig_PrintsEffectiveConfig(t *testing.T) {
	out, err := run(t, "--config", writeConfigFile(t, fileConfig), "--list-size", "7", "config")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got, err := config.Load(writeConfigFile(t, out))
	if err != nil {
		t.Fatalf("config output does not load back: %v\n%s", err, out)
	}
	if got.ListSize != 7 {
		t.Errorf("printed list_size = %d, want 7", got.ListSize)
	}
	if got.ImageURL != "https://file.example/robot.png" {
		t.Errorf("printed image_url = %q, want the file value", got.ImageURL)
	}
	if got.ScrollDuration != config.Default().ScrollDuration {
		t.Errorf("printed scroll_duration = %v, want default", got.ScrollDuration)
	}
}

func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "config")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

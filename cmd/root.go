package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/juanibiapina/layouts/internal/config"
	"github.com/juanibiapina/layouts/internal/logging"
	"github.com/juanibiapina/layouts/internal/paths"
	"github.com/juanibiapina/layouts/internal/telemetry"
	"github.com/juanibiapina/layouts/internal/version"
	"github.com/spf13/cobra"
)

// skipTelemetry lists commands that handle their own telemetry or shouldn't be tracked
var skipTelemetry = map[string]bool{
	"tui":        true, // has own telemetry
	"layouts":    true, // root runs the tui
	"completion": true, // shell completion
	"__complete": true, // internal completion
}

var (
	// Effective configuration, loaded before any command runs
	cfg config.Config

	configPath string
	listSize   int
	imageURL   string
	noCache    bool

	logCloser io.Closer = io.NopCloser(nil)

	// logPath is swapped out in tests
	logPath = paths.GetLogPath
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Tutorial screen of layout primitives",
	Long: `A single-screen tour of UI layout primitives in the terminal.

The screen has a top app bar with icon buttons, a like toggle and an
overflow menu, a card, a button, a virtualized list with animated
scroll-to-top and scroll-to-end buttons, bottom navigation, a floating
action button and a side drawer. Every click raises a toast.

Run without a subcommand to open the screen.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}

		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logCloser, err = logging.Init(logPath(), level)
		if err != nil {
			return err
		}

		telemetry.Init(cfg.TelemetryKey, cfg.TelemetryEndpoint)

		// Track CLI command usage (skip commands with own telemetry or completion)
		name := cmd.Name()
		if skipTelemetry[name] {
			return nil
		}
		if parent := cmd.Parent(); parent != nil && parent.Name() == "completion" {
			return nil
		}
		telemetry.CLICommandStart(name)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		telemetry.CLICommandEnd()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd.Context())
	},
}

// loadConfig reads the config file then applies flags the user set explicitly
func loadConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = paths.GetConfigPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("list-size") {
		loaded.ListSize = listSize
	}
	if flags.Changed("image-url") {
		loaded.ImageURL = imageURL
	}
	if flags.Changed("no-cache") {
		loaded.Cache = !noCache
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	cfg = loaded
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	cmd, err := RootCmd.ExecuteC()
	if err != nil {
		logging.Logger.Error("Command failed", "command", cmd.Name(), "error", err)
		telemetry.Error(err, "command", cmd.Name())
	}

	telemetry.Flush()
	logCloser.Close()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Set version for --version flag
	RootCmd.Version = version.Version

	// Don't show usage on errors - only show it when explicitly requested
	RootCmd.SilenceUsage = true

	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/layouts/config.toml)")
	RootCmd.PersistentFlags().IntVar(&listSize, "list-size", 0, "number of items in the list")
	RootCmd.PersistentFlags().StringVar(&imageURL, "image-url", "", "thumbnail image shown next to each item")
	RootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "don't read or write the thumbnail cache")
}

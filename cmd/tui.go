package cmd

import (
	"context"

	"github.com/juanibiapina/layouts/internal/logging"
	"github.com/juanibiapina/layouts/internal/paths"
	"github.com/juanibiapina/layouts/internal/thumbnail"
	"github.com/juanibiapina/layouts/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the tutorial screen",
	Long: `Open the tutorial screen (same as running layouts without a subcommand).

LAYOUT:
  ┌───────────────────────────────────────────┐
  │ ⌂  Page title                    ▶  ♥  ⋮  │
  │        ╭──╮  Hello Vinc                   │
  │        ╰──╯  3 minutes ago                │
  │                ▣ Button                   │
  │    Scroll to the top  Scroll to the end   │
  │ ▀▀▀▀                                      │
  │ ▀▀▀▀  Item #0                             │
  │ ...                                    +  │
  │        ◆                    ◆             │
  │       test                test 2          │
  └───────────────────────────────────────────┘

KEYBINDINGS:

  Focus:
    tab/shift+tab  Cycle through clickable controls
    enter          Click the focused control
    esc            Close menu, drawer or help; clear focus

  List:
    ↑/k ↓/j        Select the previous/next item
    home/end       Select the first/last item
    pgup/pgdn      Scroll one page
    g/G            Animated scroll to the top/end
    y              Copy the selected item's caption
    click          Select an item

  Controls:
    n p l m        Nav icon, play, like, more menu
    r b            Card, button
    1 2            Bottom navigation items
    f              Floating action button
    d              Drawer

  Global:
    ?              Show help overlay
    q              Quit

Example:
  layouts tui --list-size 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScreen(cmd.Context())
	},
}

// runScreen wires the effective config into the TUI
func runScreen(ctx context.Context) error {
	var cache *thumbnail.Cache
	if cfg.Cache {
		cache = openCache()
		if cache != nil {
			defer cache.Close()
			if n, err := cache.Prune(cfg.CacheMaxAge.Duration); err != nil {
				logging.Logger.Warn("Failed to prune thumbnail cache", "error", err)
			} else if n > 0 {
				logging.Logger.Debug("Pruned thumbnail cache", "removed", n)
			}
		}
	}

	opts := tui.Options{
		ListSize:       cfg.ListSize,
		ImageURL:       cfg.ImageURL,
		ScrollDuration: cfg.ScrollDuration.Duration,
		ToastDuration:  cfg.ToastDuration.Duration,
	}
	if cfg.ImageURL != "" {
		opts.Loader = thumbnail.NewLoader(nil, cache)
	}

	return tui.Run(ctx, opts)
}

// openCache opens the thumbnail cache, or returns nil if it is unavailable.
// The screen works without it.
func openCache() *thumbnail.Cache {
	if _, err := paths.EnsureCacheDir(); err != nil {
		logging.Logger.Warn("Thumbnail cache disabled", "error", err)
		return nil
	}
	cache, err := thumbnail.OpenCache(paths.GetCachePath())
	if err != nil {
		logging.Logger.Warn("Thumbnail cache disabled", "error", err)
		return nil
	}
	return cache
}

func init() {
	RootCmd.AddCommand(tuiCmd)
}

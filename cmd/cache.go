package cmd

import (
	"fmt"
	"time"

	"github.com/juanibiapina/layouts/internal/paths"
	"github.com/juanibiapina/layouts/internal/thumbnail"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the thumbnail cache",
	Long: `Manage the on-disk cache of downloaded thumbnail images.

The cache lives at $XDG_CACHE_HOME/layouts/thumbnails.db.`,
}

var cachePruneMaxAge time.Duration

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove cached images older than the max age",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		maxAge := cfg.CacheMaxAge.Duration
		if cmd.Flags().Changed("max-age") {
			maxAge = cachePruneMaxAge
		}
		if maxAge <= 0 {
			return fmt.Errorf("--max-age must be positive, got %s", maxAge)
		}
		return removeCached(cmd, func(c *thumbnail.Cache) (int64, error) {
			return c.Prune(maxAge)
		})
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return removeCached(cmd, (*thumbnail.Cache).Clear)
	},
}

// removeCached opens the cache, applies remove and reports the counts
func removeCached(cmd *cobra.Command, remove func(*thumbnail.Cache) (int64, error)) error {
	if _, err := paths.EnsureCacheDir(); err != nil {
		return err
	}
	cache, err := thumbnail.OpenCache(paths.GetCachePath())
	if err != nil {
		return err
	}
	defer cache.Close()

	removed, err := remove(cache)
	if err != nil {
		return err
	}
	remaining, err := cache.Len()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached image(s), %d remaining\n", removed, remaining)
	return nil
}

func init() {
	cachePruneCmd.Flags().DurationVar(&cachePruneMaxAge, "max-age", 0, "override cache_max_age from the config")
	cacheCmd.AddCommand(cachePruneCmd, cacheClearCmd)
	RootCmd.AddCommand(cacheCmd)
}

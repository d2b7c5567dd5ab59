package cmd

import (
	"fmt"

	"github.com/juanibiapina/layouts/internal/paths"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file and flags, as TOML.

The default config file is $XDG_CONFIG_HOME/layouts/config.toml.
A missing file means all defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), paths.GetConfigPath())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	RootCmd.AddCommand(configCmd)
}

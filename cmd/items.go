package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/juanibiapina/layouts/internal/tui"
	"github.com/spf13/cobra"
)

type itemJSON struct {
	Index    int    `json:"index"`
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
}

var itemsJSON bool

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Print the list items",
	Long: `Print the items the screen's list would show, one per line.

Example:
  layouts items --list-size 3
  layouts items --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if itemsJSON {
			items := make([]itemJSON, cfg.ListSize)
			for i := range items {
				items[i] = itemJSON{Index: i, Caption: tui.ItemCaption(i), ImageURL: cfg.ImageURL}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		for i := 0; i < cfg.ListSize; i++ {
			fmt.Fprintln(out, tui.ItemCaption(i))
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "output as JSON")
	RootCmd.AddCommand(itemsCmd)
}

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimline/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Run: func(_ *cobra.Command, _ []string) {
		names := make([]string, 0, len(styles.Presets))
		for name := range styles.Presets {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			marker := " "
			if name == cfg.Theme.Preset {
				marker = "*"
			}
			fmt.Printf("%s %-18s %s\n", marker, name, styles.Presets[name].Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

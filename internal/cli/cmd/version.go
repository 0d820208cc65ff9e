package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Args:    cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		renderer := styles.NewAboutRenderer(styles.NewTheme())
		fmt.Println(renderer.Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

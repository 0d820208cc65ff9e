package cmd

import (
	"github.com/spf13/cobra"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Apply the stored settings to a page",
	Long: `Load a page, restore the stored settings into it and print the styled HTML.

Examples:
  readably render article.html > styled.html
  readably render https://example.com -o styled.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "write to this file instead of stdout")
}

func runRender(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	page, err := app.OpenPage(ctx, args[0])
	if err != nil {
		return err
	}

	if _, err := app.Attach(ctx, page.Sink); err != nil {
		return err
	}
	return app.WritePage(page, renderOut)
}

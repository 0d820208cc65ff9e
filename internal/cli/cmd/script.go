package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/infrastructure/stylesink"
)

const scriptFilePerm = 0o644

var scriptOut string

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Export the stored settings as a userscript",
	Long: `Print a browser userscript that applies the stored settings to every page.

The script is compiled before it is printed, so a broken export fails here
instead of in the browser.

Examples:
  readably script > readably.user.js
  readably script -o ~/scripts/readably.user.js`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().StringVarP(&scriptOut, "output", "o", "", "write to this file instead of stdout")
}

func runScript(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	sink := stylesink.NewScript()
	if _, err := app.Attach(app.Ctx(), sink); err != nil {
		return err
	}

	src, err := sink.Source()
	if err != nil {
		return err
	}

	if scriptOut == "" || scriptOut == "-" {
		_, err = fmt.Fprint(os.Stdout, src)
		return err
	}
	if err := os.WriteFile(scriptOut, []byte(src), scriptFilePerm); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}

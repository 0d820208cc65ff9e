// Package cmd provides Cobra CLI commands for readably.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/cli"
	"github.com/bnema/readably/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "readably",
		Short: "Accessibility style overrides for web pages",
		Long: `Readably - accessibility style overrides for web pages.

Adjusts contrast, font, zoom, word spacing, line height and a readable
font override on a page. Every change is remembered and re-applied the
next time a page is opened.

Features:
  - Terminal popup with sliders for every setting
  - JSON-lines bridge for extensions and scripts
  - Styled HTML output for local files and http(s) URLs
  - Userscript export of the stored settings

Use 'readably popup <page>' to adjust a page interactively, or explore
the subcommands for scripted use.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/readably/config.toml)")
}

// Execute runs the root command. Queued settings writes are flushed even when
// the command fails.
func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.Resolve()
	rootCmd.Version = buildInfo.Version
	rootCmd.SetVersionTemplate(buildInfo.Short() + "\n")
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and READABLY_* environment variables are merged.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.Encode(app.Config)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	configPath := configFile
	if app.Manager != nil {
		configPath = app.Manager.GetConfigFile()
	}
	if configPath == "" {
		configPath = app.Theme.Subtle.Render("(defaults, no config file)")
	}

	fmt.Printf("config:   %s\n", configPath)
	fmt.Printf("database: %s\n", app.Config.Database.Path)
	return nil
}

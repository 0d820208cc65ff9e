package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/cli/styles"
	"github.com/bnema/readably/internal/domain/entity"
)

const settingsTableWidth = 44

var settingsJSON bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect or reset the stored settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget every stored setting",
	Long:  `Delete all stored settings. Pages open with the defaults afterwards.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsShowCmd.Flags().BoolVar(&settingsJSON, "json", false, "output as JSON")
}

func runSettingsShow(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	s, err := app.Settings.Get(app.Ctx(), entity.DefaultSettings())
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if settingsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	rows := styles.SettingsRows(s)
	t := styles.NewStyledTable(app.Theme, styles.SettingsTableColumns(), rows, settingsTableWidth, len(rows)+1)
	fmt.Println(app.Theme.Title.Render(styles.IconDatabase + "  Stored settings"))
	fmt.Println(t.View())
	return nil
}

func runSettingsReset(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.Settings.Reset(app.Ctx()); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	fmt.Println(app.Theme.SuccessStyle.Render("Settings reset to defaults"))
	return nil
}

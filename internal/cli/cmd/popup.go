package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/cli/model"
	"github.com/bnema/readably/internal/logging"
)

var popupOut string

var errNoTerminal = errors.New("popup needs an interactive terminal, use 'readably serve' for piped input")

var popupCmd = &cobra.Command{
	Use:   "popup [page]",
	Short: "Adjust a page interactively",
	Long: `Open the terminal popup for a page.

The page (a local file or an http(s) URL) is restored with the stored
settings first. Every slider move is sent to the page as a message and
remembered for the next run. On exit the styled page is written out and
the session is added to the interaction log.

Without a page the popup only edits the stored settings.

Examples:
  readably popup                          # Edit stored settings
  readably popup article.html             # Style a local file, print result
  readably popup https://example.com -o styled.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPopup,
}

func init() {
	rootCmd.AddCommand(popupCmd)
	popupCmd.Flags().StringVarP(&popupOut, "output", "o", "", "write the styled page to this file (default stdout)")
}

func runPopup(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdin) {
		return errNoTerminal
	}
	ctx := logging.WithComponent(app.Ctx(), "popup")

	target := ""
	if len(args) > 0 {
		target = args[0]
	}

	page, err := app.OpenPage(ctx, target)
	if err != nil {
		return err
	}

	router, err := app.Attach(ctx, page.Sink)
	if err != nil {
		return err
	}

	tracker := app.RecordUC.Start(router.Settings())
	router.AddObserver(tracker)

	cfg := app.Config.Popup
	tuiCtx := logging.WithComponent(app.TUICtx(), "popup")
	m := model.NewPopupModel(tuiCtx, app.Theme, router, model.PopupOptions{
		ZoomStep:   cfg.ZoomStep,
		ZoomMin:    cfg.ZoomMin,
		ZoomMax:    cfg.ZoomMax,
		SpacingMax: cfg.SpacingMax,
		AlignMax:   cfg.AlignMax,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !isTerminal(os.Stdout) {
		// stdout carries the styled page; draw on stderr instead.
		opts = append(opts, tea.WithOutput(os.Stderr))
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run popup: %w", err)
	}

	if cfg.TrackInteractions {
		if _, err := app.RecordUC.Finish(ctx, tracker); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("interaction not logged")
		}
	}

	return app.WritePage(page, popupOut)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/cli/styles"
	"github.com/bnema/readably/internal/domain/entity"
)

const (
	defaultInteractionsLimit = 20
	interactionsTableWidth   = 72
)

var (
	interactionsLimit int
	interactionsJSON  bool
)

var interactionsCmd = &cobra.Command{
	Use:   "interactions",
	Short: "List logged popup sessions",
	Long: `List the most recent popup and bridge sessions, newest first.

Each row shows how often zoom went up or down, how long the page was open
and the settings it ended with (contrast/font/zoom/spacing/align/readable).`,
	Args: cobra.NoArgs,
	RunE: runInteractions,
}

func init() {
	rootCmd.AddCommand(interactionsCmd)
	interactionsCmd.Flags().IntVarP(&interactionsLimit, "limit", "n", defaultInteractionsLimit, "maximum rows to show")
	interactionsCmd.Flags().BoolVar(&interactionsJSON, "json", false, "output as JSON")
}

// interactionJSON is the JSON shape of one logged session.
type interactionJSON struct {
	ID           int64           `json:"id"`
	ZoomInCount  int             `json:"zoomInCount"`
	ZoomOutCount int             `json:"zoomOutCount"`
	TimeOnPage   float64         `json:"timeOnPageSeconds"`
	Settings     entity.Settings `json:"settings"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func runInteractions(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	list, err := app.RecordUC.List(app.Ctx(), interactionsLimit)
	if err != nil {
		return err
	}

	if interactionsJSON {
		out := make([]interactionJSON, 0, len(list))
		for _, in := range list {
			out = append(out, interactionJSON{
				ID:           in.ID,
				ZoomInCount:  in.ZoomInCount,
				ZoomOutCount: in.ZoomOutCount,
				TimeOnPage:   in.TimeOnPage.Seconds(),
				Settings:     in.Settings,
				CreatedAt:    in.CreatedAt,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(list) == 0 {
		fmt.Println(app.Theme.Subtle.Render("No interactions logged yet"))
		return nil
	}

	rows := make([]table.Row, 0, len(list))
	for _, in := range list {
		rows = append(rows, styles.InteractionRow(in))
	}
	t := styles.NewStyledTable(app.Theme, styles.InteractionTableColumns(), rows, interactionsTableWidth, len(rows)+1)
	fmt.Println(t.View())
	return nil
}

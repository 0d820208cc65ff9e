package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/app/messaging"
)

var (
	sendPage string
	sendOut  string
)

// errIgnored is returned when the router drops a message without a response.
var errIgnored = errors.New("message ignored: unknown action or invalid value")

var sendCmd = &cobra.Command{
	Use:   "send <action> [value]",
	Short: "Send a single message",
	Long: `Apply one message to a page and print the response.

The value is decoded as JSON when possible and sent as a string otherwise,
the same way a range input would send it.

Examples:
  readably send setFont 2
  readably send toggleReadableFont
  readably send setZoom -10 --page article.html -o styled.html`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSend,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&sendPage, "page", "p", "", "page to apply the message to")
	sendCmd.Flags().StringVarP(&sendOut, "output", "o", "", "write the styled page to this file")
}

func runSend(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	msg := messaging.Message{Action: args[0]}
	if len(args) > 1 {
		msg.Value = rawValue(args[1])
	}

	page, err := app.OpenPage(ctx, sendPage)
	if err != nil {
		return err
	}

	router, err := app.Attach(ctx, page.Sink)
	if err != nil {
		return err
	}

	resp, ok := router.Handle(ctx, msg)
	if !ok {
		return errIgnored
	}

	if err := json.NewEncoder(os.Stdout).Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	if sendOut == "" {
		return nil
	}
	return app.WritePage(page, sendOut)
}

// rawValue keeps arg as-is when it is valid JSON and quotes it otherwise.
func rawValue(arg string) json.RawMessage {
	if json.Valid([]byte(arg)) {
		return json.RawMessage(arg)
	}
	quoted, _ := json.Marshal(arg)
	return quoted
}

package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/readably/internal/app/messaging"
	"github.com/bnema/readably/internal/logging"
)

// maxLineSize bounds one JSON message on stdin; longer lines are skipped.
const maxLineSize = 64 << 10

var (
	serveOut   string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve [page]",
	Short: "Run the JSON-lines message bridge",
	Long: `Read one message per line on stdin and apply it to the page.

Each handled message produces exactly one JSON response line on stdout.
Unknown actions and malformed lines are ignored and produce no output.
Stored settings are restored before the first message is read.

Message format:
  {"action": "setZoom", "value": "20"}
  {"action": "toggleReadableFont"}

Examples:
  readably serve < messages.jsonl
  readably serve article.html -o styled.html < messages.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveOut, "output", "o", "", "write the styled page to this file on exit")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload toggle targets when the config file changes")
}

func runServe(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithComponent(ctx, "bridge")

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

	if serveWatch {
		if err := app.WatchConfig(router); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if isTerminal(os.Stdin) {
		logging.FromContext(ctx).Info().Msg("reading messages from the terminal, one JSON object per line, Ctrl+D to finish")
	}

	tracker := app.RecordUC.Start(router.Settings())
	router.AddObserver(tracker)

	if err := runBridge(ctx, router, os.Stdin, os.Stdout, app.Settings); err != nil {
		return err
	}

	if app.Config.Popup.TrackInteractions {
		if _, err := app.RecordUC.Finish(app.Ctx(), tracker); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("interaction not logged")
		}
	}

	if serveOut == "" {
		return nil
	}
	return app.WritePage(page, serveOut)
}

// runBridge feeds newline-delimited messages from in to the router event loop
// and writes one JSON response per handled message to out. It returns when in
// is exhausted or ctx is cancelled.
func runBridge(ctx context.Context, router *messaging.Router, in io.Reader, out io.Writer, flusher messaging.Flusher) error {
	log := logging.FromContext(ctx)
	requests := make(chan messaging.Request)
	enc := json.NewEncoder(out)

	// handle forwards one line to the event loop; false stops the reader.
	handle := func(line []byte) bool {
		msg, err := messaging.ParseMessage(line)
		if err != nil {
			log.Debug().Err(err).Msg("skipping line")
			return true
		}

		reply := make(chan messaging.Response, 1)
		select {
		case requests <- messaging.Request{Message: msg, Reply: reply}:
		case <-ctx.Done():
			return false
		}

		for resp := range reply {
			if err := enc.Encode(resp); err != nil {
				log.Error().Err(err).Msg("failed to write response")
				return false
			}
		}
		return true
	}

	go func() {
		defer close(requests)

		reader := bufio.NewReaderSize(in, maxLineSize)
		oversized := false
		for {
			line, err := reader.ReadSlice('\n')
			if errors.Is(err, bufio.ErrBufferFull) {
				// Drop the rest of a line that does not fit, then resync.
				oversized = true
				continue
			}
			if oversized {
				oversized = false
				log.Debug().Int("limit", maxLineSize).Msg("skipping oversized line")
			} else if len(bytes.TrimSpace(line)) > 0 {
				if !handle(line) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					log.Warn().Err(err).Msg("stopped reading messages")
				}
				return
			}
		}
	}()

	err := router.Serve(ctx, requests, flusher)
	if err != nil && ctx.Err() != nil {
		// Interrupted: pending writes were flushed by Serve.
		return nil
	}
	if err != nil {
		return fmt.Errorf("bridge stopped: %w", err)
	}
	return nil
}

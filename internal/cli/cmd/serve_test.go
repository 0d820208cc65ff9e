package cmd

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/readably/internal/app/messaging"
	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/logging"
)

type nopEngine struct{}

func (nopEngine) Apply(context.Context, entity.Settings, entity.Dimension) error { return nil }

type countingFlusher struct{ n atomic.Int32 }

func (f *countingFlusher) Flush() { f.n.Add(1) }

func testCtx() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func TestRunBridge_OneResponsePerHandledLine(t *testing.T) {
	router := messaging.NewRouter(nopEngine{}, entity.DefaultSettings(), messaging.DefaultOptions())
	in := strings.NewReader(strings.Join([]string{
		`{"action":"setFont","value":"2"}`,
		``,
		`not json`,
		`{"action":"explode"}`,
		`{"action":"setZoom","value":-10}`,
		`{"action":"toggleReadableFont"}`,
	}, "\n"))
	var out bytes.Buffer
	flusher := &countingFlusher{}

	require.NoError(t, runBridge(testCtx(), router, in, &out, flusher))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"status":"font set to 2"}`, lines[0])
	assert.JSONEq(t, `{"status":"zoom set to -10"}`, lines[1])
	assert.JSONEq(t, `{"status":"readableFont enabled"}`, lines[2])

	assert.Equal(t, entity.Settings{Font: 2, Zoom: -10, ReadableFont: true}, router.Settings())
	assert.Equal(t, int32(1), flusher.n.Load())
}

func TestRunBridge_SkipsOversizedLine(t *testing.T) {
	router := messaging.NewRouter(nopEngine{}, entity.DefaultSettings(), messaging.DefaultOptions())
	huge := `{"action":"setFont","value":"` + strings.Repeat("9", 70<<10) + `"}`
	in := strings.NewReader(strings.Join([]string{
		`{"action":"setFont","value":"2"}`,
		huge,
		`{"action":"setZoom","value":-10}`,
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, runBridge(testCtx(), router, in, &out, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"status":"font set to 2"}`, lines[0])
	assert.JSONEq(t, `{"status":"zoom set to -10"}`, lines[1])
	assert.Equal(t, entity.Settings{Font: 2, Zoom: -10}, router.Settings())
}

func TestRunBridge_EmptyInput(t *testing.T) {
	router := messaging.NewRouter(nopEngine{}, entity.DefaultSettings(), messaging.DefaultOptions())
	var out bytes.Buffer

	require.NoError(t, runBridge(testCtx(), router, strings.NewReader(""), &out, nil))
	assert.Empty(t, out.String())
}

func TestRawValue(t *testing.T) {
	assert.Equal(t, `2`, string(rawValue("2")))
	assert.Equal(t, `true`, string(rawValue("true")))
	assert.Equal(t, `"wide"`, string(rawValue("wide")))
	assert.Equal(t, `"-"`, string(rawValue("-")))
}

func TestDocsTarget(t *testing.T) {
	dir, ext, err := docsTarget("markdown", "")
	require.NoError(t, err)
	assert.Equal(t, "./docs", dir)
	assert.Equal(t, ".md", ext)

	dir, ext, err = docsTarget("man", "/tmp/man")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/man", dir)
	assert.Equal(t, ".1", ext)

	_, ext, err = docsTarget("yaml", "")
	require.NoError(t, err)
	assert.Equal(t, ".yaml", ext)

	_, _, err = docsTarget("pdf", "")
	assert.Error(t, err)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	want := []string{"popup", "serve", "send", "render", "script", "settings", "interactions", "schema", "version", "config", "gen-docs"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("x"), 600<<10)
	for range 3 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
	assert.Len(t, backups(t, dir), 1)
}

func TestRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	chunk := bytes.Repeat([]byte("y"), 700<<10)
	for range 2 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	names := backups(t, dir)
	require.Len(t, names, 1)
	assert.Equal(t, ".gz", filepath.Ext(names[0]))
}

func TestRotator_RequiresDir(t *testing.T) {
	_, err := NewRotator(RotatorConfig{})
	assert.Error(t, err)
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	cfg := Config{Level: zerolog.InfoLevel, Format: "json", Output: &stderr}

	loggers, cleanup, err := NewWithFile(cfg, FileConfig{
		Enabled:       true,
		WriteToStderr: true,
		Rotator:       RotatorConfig{Dir: dir, MaxSizeMB: 1},
	})
	require.NoError(t, err)
	loggers.Main.Info().Msg("both")
	loggers.Quiet.Info().Msg("file only")
	loggers.Main.Debug().Msg("filtered")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"both"`)
	assert.Contains(t, string(data), `"message":"file only"`)
	assert.NotContains(t, string(data), "filtered")

	assert.Contains(t, stderr.String(), "both")
	assert.NotContains(t, stderr.String(), "file only")
}

func TestNewWithFile_Disabled(t *testing.T) {
	var stderr bytes.Buffer
	loggers, cleanup, err := NewWithFile(Config{Level: zerolog.InfoLevel, Format: "json", Output: &stderr}, FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	loggers.Main.Info().Msg("console only")
	loggers.Quiet.Info().Msg("dropped")
	assert.Contains(t, stderr.String(), "console only")
	assert.NotContains(t, stderr.String(), "dropped")
}

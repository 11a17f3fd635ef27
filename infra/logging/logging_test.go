package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONLinesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Opts{Level: "info"})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("feed loaded", "posts", 3)
	require.NoError(t, l.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "feed loaded", entry["message"])
	assert.EqualValues(t, 3, entry["posts"])
}

func TestNewFile_AppendsAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := NewFile(path, Opts{Level: "debug"})
	require.NoError(t, err)
	l.Debug("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

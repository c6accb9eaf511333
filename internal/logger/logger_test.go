package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldIsFunctionName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller")
	l.Logger = l.Output(&buf)

	l.Info().Msg("where")

	entry := decodeEntry(t, &buf)
	fn, ok := entry["func"].(string)
	require.True(t, ok)
	assert.Contains(t, fn, "TestNewLogger_CallerFieldIsFunctionName")
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l, closeLog := NewClientLogger("client", path, "debug")

	l.Debug().Msg("to file")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"to file"`))
}

func TestNewClientLogger_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l, closeLog := NewClientLogger("client", path, "warn")
	defer closeLog()

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestNewClientLogger_DiscardsWhenFileUnavailable(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing directory", path: filepath.Join(t.TempDir(), "missing", "client.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr, err := os.CreateTemp(t.TempDir(), "stderr")
			require.NoError(t, err)
			defer stderr.Close()
			origStderr, origStdout := os.Stderr, os.Stdout
			os.Stderr, os.Stdout = stderr, stderr
			defer func() { os.Stderr, os.Stdout = origStderr, origStdout }()

			l, closeLog := NewClientLogger("client", tt.path, "debug")
			require.NotNil(t, l)

			l.Error().Msg("nowhere")
			assert.NoError(t, closeLog())

			data, err := os.ReadFile(stderr.Name())
			require.NoError(t, err)
			assert.Empty(t, data, "terminal streams must stay clean")
			if tt.path != "" {
				assert.NoFileExists(t, tt.path)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

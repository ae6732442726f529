package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestNewLogger_StructuredEntries(t *testing.T) {
	tests := []struct {
		logger     string
		messageKey string
	}{
		{logger: "zap", messageKey: "msg"},
		{logger: "zerolog", messageKey: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.logger, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewLogger(&LoggerConfig{
				AppName: "devops-sample",
				Logger:  tt.logger,
				Level:   "debug",
				Output:  &buf,
			})
			require.NoError(t, err)

			extra := map[ExtraKey]any{Method: "GET", Path: "/health", StatusCode: 200}
			l.Info(RequestResponse, API, "request completed", extra)
			require.NoError(t, l.Sync())

			entries := decodeLines(t, &buf)
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, "request completed", entry[tt.messageKey])
			assert.Equal(t, "RequestResponse", entry["Category"])
			assert.Equal(t, "API", entry["SubCategory"])
			assert.Equal(t, "GET", entry["Method"])
			assert.Equal(t, "/health", entry["Path"])
			assert.EqualValues(t, 200, entry["StatusCode"])
			assert.Equal(t, "devops-sample", entry["AppName"])

			// the caller's map must not be mutated
			assert.Len(t, extra, 3)
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	for _, name := range []string{"zap", "zerolog"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := NewLogger(&LoggerConfig{Logger: name, Level: "warn", Output: &buf})
			require.NoError(t, err)

			l.Debug(General, Startup, "hidden", nil)
			l.Info(General, Startup, "hidden", nil)
			l.Warn(General, Startup, "shown", nil)
			l.Errorf("shown %d", 2)
			require.NoError(t, l.Sync())

			entries := decodeLines(t, &buf)
			assert.Len(t, entries, 2)
		})
	}
}

func TestNewLogger_Unsupported(t *testing.T) {
	l, err := NewLogger(&LoggerConfig{Logger: "logrus"})
	assert.ErrorIs(t, err, ErrUnsupportedLogger)
	assert.Nil(t, l)
}

func TestNewLogger_WritesRotatingFile(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	l, err := NewLogger(&LoggerConfig{Logger: "zerolog", Level: "info", FilePath: dir, Output: &buf})
	require.NoError(t, err)

	l.Infof("Server running on port %d in %s environment", 3000, "development")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Server running on port 3000 in development environment")
	assert.Contains(t, buf.String(), "Server running on port 3000")
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Error(Internal, Recover, "ignored", map[ExtraKey]any{ErrorMessage: "boom"})
		l.Infof("ignored %s", "too")
	})
	assert.NoError(t, l.Sync())
}

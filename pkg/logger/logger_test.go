package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{in: "debug", want: zapcore.DebugLevel},
		{in: "INFO", want: zapcore.InfoLevel},
		{in: "", want: zapcore.InfoLevel},
		{in: "warning", want: zapcore.WarnLevel},
		{in: "error", want: zapcore.ErrorLevel},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zapcore.WarnLevel)

	log.Info("draft %s created", "a")
	log.Warn("draft %s not found", "b")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "draft b not found", entries[0]["msg"])
	assert.Contains(t, entries[0], "time")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zapcore.InfoLevel)

	log.Debug("hidden")
	log.SetLevel(zapcore.DebugLevel)
	log.Debug("replay of %d operations", 3)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "replay of 3 operations", entries[0]["msg"])
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Error("order service unavailable: %v", "timeout")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"order service unavailable: timeout"`)
	assert.Contains(t, string(data), `"level":"error"`)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "loud")
	require.Error(t, err)
}

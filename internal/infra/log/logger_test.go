package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"smartpack/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(&buf, config.Log{Level: "warn"}, "smartpack")
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("book_id", "1"))

	var line map[string]any
	require.NoError(t, jsoniter.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "smartpack", line["service"])
	assert.Equal(t, "1", line["book_id"])
}

func TestNewWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter(&buf, config.Log{Pretty: true, Level: "debug"}, "")
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.NotContains(t, buf.String(), "service=")
}

package log

import (
	"bytes"
	"encoding/json/v2"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForComponentBeforeSink(t *testing.T) {
	l := ForComponent("test").With(Calendar("maya")).WithGroup("tick")

	var buf bytes.Buffer
	To(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { To(slog.DiscardHandler) })

	l.Info("converted", slog.String("state", "13.0.0.0.0"), Error(errors.New("nope")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "test", got[ComponentKey])
	assert.Equal(t, "maya", got[CalendarKey])
	assert.Equal(t, map[string]any{"state": "13.0.0.0.0", "error": "nope"}, got["tick"])
}

func TestDiscardByDefault(t *testing.T) {
	h := &indirectHandler{h: sink.h}
	sink.h.Store(nil)

	assert.False(t, h.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, h.Handle(t.Context(), slog.Record{}))
}

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		name string
		want slog.Level
	}{
		{name: "", want: slog.LevelInfo},
		{name: "debug", want: slog.LevelDebug},
		{name: "WARN", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var buf bytes.Buffer
		h, c, err := NewHandler(Options{Level: "warn"}, &buf)
		require.NoError(t, err)
		defer c.Close()

		l := slog.New(h)
		l.Info("hidden")
		l.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("JSON File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "altcal.log")

		h, c, err := NewHandler(Options{Format: FormatJSON, File: path, MaxSizeMB: 1}, nil)
		require.NoError(t, err)

		slog.New(h).Info("rotating")
		require.NoError(t, c.Close())

		require.FileExists(t, path)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		_, _, err := NewHandler(Options{Format: "xml"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}

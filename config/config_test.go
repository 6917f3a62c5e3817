package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "altcal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, Default(), cfg)
	})

	t.Run("File", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
name: living_room
language: de
broker: mqtts://broker.example.com:8883
username: altcal
discovery_prefix: ha
qos: 1
wait_for_home_assistant: 30s
log:
  level: debug
  format: json
  file: /var/log/altcal.log
  max_size_mb: 5
calendars:
  maya:
    orthography: modern
  solar_system:
    symbols: false
  synodic:
    planet: venus
  unix:
`))
		require.NoError(t, err)

		assert.Equal(t, "living_room", cfg.Name)
		assert.Equal(t, "de", cfg.Language)
		assert.Equal(t, "mqtts://broker.example.com:8883", cfg.Broker)
		assert.Equal(t, "ha", cfg.DiscoveryPrefix)
		assert.Equal(t, 1, cfg.QoS)
		assert.Equal(t, 30*time.Second, cfg.WaitForHomeAssistant)
		assert.Equal(t, DefaultTopicPrefix, cfg.TopicPrefix)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 5, cfg.Log.MaxSizeMB)

		require.Len(t, cfg.Calendars, 4)
		assert.Equal(t, "modern", cfg.Calendars["maya"].String("orthography", "classic"))
		assert.False(t, cfg.Calendars["solar_system"].Bool("symbols", true))
		assert.Nil(t, cfg.Calendars["unix"])
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv(EnvBroker, "mqtt://10.0.0.2:1883")
		t.Setenv(EnvName, "attic")
		t.Setenv(EnvLogLevel, "warn")

		cfg, err := Load(writeConfig(t, "name: kitchen\n"))
		require.NoError(t, err)

		assert.Equal(t, "attic", cfg.Name)
		assert.Equal(t, "mqtt://10.0.0.2:1883", cfg.Broker)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Load(writeConfig(t, "calendars: [maya"))
		require.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Load(writeConfig(t, "name: living room\nbroker: localhost\nqos: 3\nwait_for_home_assistant: -1s\n"))

		require.ErrorIs(t, err, ErrInvalidName)
		require.ErrorIs(t, err, ErrInvalidBroker)
		require.ErrorIs(t, err, ErrInvalidQoS)
		require.ErrorIs(t, err, ErrInvalidWait)
	})
}

func testRegistry(t *testing.T) *calendar.Registry {
	t.Helper()

	factory := func(calendar.Options, language.Tag) calendar.Calendar {
		return calendar.CalendarFunc(func(time.Time) (calendar.Result, error) { return calendar.Result{}, nil })
	}

	r, err := calendar.NewRegistry(
		calendar.Descriptor{ID: "decimal", New: factory},
		calendar.Descriptor{ID: "maya", New: factory},
		calendar.Descriptor{ID: "roman", New: factory},
	)
	require.NoError(t, err)

	return r
}

func TestSelect(t *testing.T) {
	r := testRegistry(t)

	t.Run("Registry Order", func(t *testing.T) {
		cfg := Default()
		cfg.Calendars = map[string]calendar.Options{
			"roman":   {"style": "abbreviated"},
			"decimal": nil,
			"klingon": nil,
		}

		got, err := cfg.Select(r)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "decimal", got[0].Descriptor.ID)
		assert.Equal(t, "roman", got[1].Descriptor.ID)
		assert.Equal(t, "abbreviated", got[1].Options.String("style", "full"))
	})

	t.Run("Nothing Known", func(t *testing.T) {
		cfg := Default()
		cfg.Calendars = map[string]calendar.Options{"klingon": nil}

		_, err := cfg.Select(r)
		require.ErrorIs(t, err, ErrNoCalendarsSelected)
	})

	t.Run("Nothing At All", func(t *testing.T) {
		_, err := Default().Select(r)
		require.ErrorIs(t, err, ErrNoCalendarsSelected)
	})
}

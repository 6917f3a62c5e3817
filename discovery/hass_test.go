package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/altcal/hass"
	"github.com/nlowe/altcal/mqtt"
)

func TestHomeAssistantAvailability(t *testing.T) {
	t.Run("Default Prefix", func(t *testing.T) {
		sut := HomeAssistantAvailability(DefaultPrefix)

		require.Equal(t, "homeassistant/status", sut.FullyQualifiedTopic(""))
	})

	t.Run("Custom Prefix", func(t *testing.T) {
		sut := HomeAssistantAvailability("custom")

		require.Equal(t, "custom/status", sut.FullyQualifiedTopic(""))
	})

	t.Run("Subscription", func(t *testing.T) {
		sut := HomeAssistantAvailability(DefaultPrefix)

		subs := sut.AppendSubscribeOptions(nil, "")
		require.Len(t, subs, 1)
		assert.Equal(t, "homeassistant/status", subs[0].Topic)
		assert.Equal(t, mqtt.QOSAtLeastOnce, subs[0].Options.QoS)
	})

	t.Run("Unmarshaler", func(t *testing.T) {
		sut := HomeAssistantAvailability(DefaultPrefix)

		_, ok := sut.Get()
		assert.False(t, ok, "should not have a value before first msg")

		sut.ServeMQTT(nil, "homeassistant/status", []byte(hass.Available))
		v, ok := sut.Get()

		assert.True(t, ok, "should have a value after first msg")
		assert.EqualValues(t, hass.Available, v)
	})
}

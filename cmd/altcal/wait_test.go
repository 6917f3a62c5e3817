package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nlowe/altcal/discovery"
)

func TestAwaitHomeAssistant(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		sut := discovery.HomeAssistantAvailability(discovery.DefaultPrefix)
		require.NoError(t, awaitHomeAssistant(t.Context(), sut, 0))
	})

	t.Run("Already Online", func(t *testing.T) {
		sut := discovery.HomeAssistantAvailability(discovery.DefaultPrefix)
		sut.ServeMQTT(nil, "homeassistant/status", []byte("online"))

		require.NoError(t, awaitHomeAssistant(t.Context(), sut, time.Hour))
	})

	t.Run("Comes Online", func(t *testing.T) {
		sut := discovery.HomeAssistantAvailability(discovery.DefaultPrefix)

		stop := make(chan struct{})
		defer close(stop)
		go func() {
			ticker := time.NewTicker(5 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-stop:
					return
				case <-ticker.C:
					sut.ServeMQTT(nil, "homeassistant/status", []byte("online"))
				}
			}
		}()

		require.NoError(t, awaitHomeAssistant(t.Context(), sut, 5*time.Second))
	})

	t.Run("Timeout", func(t *testing.T) {
		sut := discovery.HomeAssistantAvailability(discovery.DefaultPrefix)
		sut.ServeMQTT(nil, "homeassistant/status", []byte("offline"))

		require.NoError(t, awaitHomeAssistant(t.Context(), sut, 10*time.Millisecond))
	})

	t.Run("Cancelled", func(t *testing.T) {
		sut := discovery.HomeAssistantAvailability(discovery.DefaultPrefix)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		require.ErrorIs(t, awaitHomeAssistant(ctx, sut, time.Hour), context.Canceled)
	})
}

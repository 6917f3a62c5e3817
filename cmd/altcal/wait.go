package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nlowe/altcal/hass"
	altcallog "github.com/nlowe/altcal/log"
	"github.com/nlowe/altcal/mqtt"
)

// awaitHomeAssistant blocks until status reports Home Assistant online or timeout elapses. Running out of time is not an
// error since discovery is retained and sent again when Home Assistant comes online. Only cancellation of ctx is
// returned.
func awaitHomeAssistant(ctx context.Context, status *mqtt.RemoteValue[hass.Availability], timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}

	log := altcallog.ForComponent("altcal").With(slog.Duration("timeout", timeout))
	log.Info("Waiting for Home Assistant")

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := status.Await(waitCtx, mqtt.DesiredValue(hass.Available)); err != nil {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Home Assistant did not report online, announcing anyway")
			return nil
		}

		return err
	}

	log.Info("Home Assistant is online")
	return nil
}

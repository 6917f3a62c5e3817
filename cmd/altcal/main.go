// Command altcal publishes alternative calendar sensors to Home Assistant over MQTT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nlowe/altcal"
	"github.com/nlowe/altcal/catalog"
	"github.com/nlowe/altcal/config"
	"github.com/nlowe/altcal/entity"
	"github.com/nlowe/altcal/hass"
	"github.com/nlowe/altcal/locale"
	altcallog "github.com/nlowe/altcal/log"
	adapter "github.com/nlowe/altcal/mqtt/adapter/autopaho"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", os.Getenv(config.EnvConfig), "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "altcal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	handler, closer, err := altcallog.NewHandler(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	altcallog.To(handler)

	log := altcallog.ForComponent("altcal")
	log.With(slog.String("version", altcal.Version), slog.String("name", cfg.Name)).Info("Starting up")

	registry, err := catalog.New()
	if err != nil {
		return err
	}

	l := locale.New(locale.Parse(cfg.Language))
	entities, err := entity.FromConfig(cfg, registry, l)
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w, hassAvailability, disconnect, err := configureMQTT(ctx, cfg, adapter.DialMQTT)
	if err != nil {
		return err
	}

	scheduler := entity.NewScheduler(w, entity.NewDevice(cfg.Name, l), cfg.DiscoveryPrefix, entities)

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := scheduler.Withdraw(shutdownCtx); err != nil {
			log.With(altcallog.Error(err)).Warn("Failed to mark entities unavailable")
		}

		log.Info("Disconnecting from mqtt")
		if err := disconnect(shutdownCtx); err != nil {
			log.With(altcallog.Error(err)).Error("Failed to disconnect from mqtt")
		}
	}()

	if err = awaitHomeAssistant(ctx, hassAvailability, cfg.WaitForHomeAssistant); err == nil {
		hassAvailability.Watch(func(a hass.Availability) {
			log.With(slog.String("availability", string(a))).Info("Home Assistant state changed")
			if a == hass.Available {
				scheduler.Rediscover()
			}
		})

		err = scheduler.Run(ctx)
	}

	if errors.Is(err, context.Canceled) {
		log.Info("Goodbye!")
		return nil
	}

	return err
}

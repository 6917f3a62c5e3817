package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/nlowe/altcal/config"
	"github.com/nlowe/altcal/discovery"
	"github.com/nlowe/altcal/hass"
	altcallog "github.com/nlowe/altcal/log"
	"github.com/nlowe/altcal/mqtt"
)

type disconnectFunc func(context.Context) error

type dialFunc func(context.Context, autopaho.ClientConfig) (mqtt.Writer, mqtt.Subscriber, func(context.Context) error, error)

func clientConfig(cfg *config.Config, brokerURL *url.URL) autopaho.ClientConfig {
	log := altcallog.ForComponent("mqtt")

	clientCfg := autopaho.ClientConfig{
		ServerUrls: []*url.URL{brokerURL},
		KeepAlive:  20,

		// Seconds the broker keeps queued messages for us while we are disconnected.
		SessionExpiryInterval: 60,

		ConnectUsername: cfg.Username,

		OnConnectionUp: func(*autopaho.ConnectionManager, *paho.Connack) {
			log.Info("mqtt connected")
		},
		OnConnectError: func(err error) {
			log.With(altcallog.Error(err)).Error("mqtt connection error")
		},

		ClientConfig: paho.ClientConfig{
			ClientID: cmp.Or(cfg.ClientID, "altcal-"+cfg.Name),
			OnClientError: func(err error) {
				log.With(altcallog.Error(err)).Error("mqtt client error")
			},
			OnServerDisconnect: func(d *paho.Disconnect) {
				log := log.With(slog.Int("reason", int(d.ReasonCode)))

				if d.Properties != nil {
					log = log.With(
						slog.Group(
							"properties",
							slog.String("reference", d.Properties.ServerReference),
							slog.String("reason", d.Properties.ReasonString),
						),
					)
				}

				log.Warn("Disconnected from server")
			},
		},
	}

	if cfg.Password != "" {
		clientCfg.ConnectPassword = []byte(cfg.Password)
	}

	return clientCfg
}

func configureMQTT(ctx context.Context, cfg *config.Config, dial dialFunc) (mqtt.Writer, *mqtt.RemoteValue[hass.Availability], disconnectFunc, error) {
	log := altcallog.ForComponent("mqtt")

	brokerURL, err := cfg.BrokerURL()
	if err != nil {
		return nil, nil, nil, err
	}

	log.With(slog.String("broker", brokerURL.Redacted())).Info("Connecting to mqtt")
	w, s, disconnect, err := dial(ctx, clientConfig(cfg, brokerURL))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("mqtt: connect: %w", err)
	}

	hassAvailability := discovery.HomeAssistantAvailability(cfg.DiscoveryPrefix)
	if err = s.Subscribe(ctx, hassAvailability, hassAvailability.AppendSubscribeOptions(nil, "")...); err != nil {
		err = fmt.Errorf("subscribe to home assistant status: %w", err)
		if disconnectErr := disconnect(ctx); disconnectErr != nil {
			err = errors.Join(err, fmt.Errorf("mqtt: disconnect: %w", disconnectErr))
		}

		return nil, nil, nil, err
	}

	return w, hassAvailability, disconnect, nil
}

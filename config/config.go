// Package config loads the altcal configuration from a YAML file, with overrides from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/discovery"
	"github.com/nlowe/altcal/log"
)

const (
	EnvConfig    = "ALTCAL_CONFIG"
	EnvBroker    = "ALTCAL_BROKER"
	EnvUsername  = "ALTCAL_USERNAME"
	EnvPassword  = "ALTCAL_PASSWORD"
	EnvName      = "ALTCAL_NAME"
	EnvLanguage  = "ALTCAL_LANGUAGE"
	EnvLogLevel  = "ALTCAL_LOG_LEVEL"
	EnvLogFormat = "ALTCAL_LOG_FORMAT"

	DefaultName            = "altcal"
	DefaultLanguage        = "en"
	DefaultBroker          = "mqtt://127.0.0.1:1883"
	DefaultDiscoveryPrefix = discovery.DefaultPrefix
	DefaultTopicPrefix     = "altcal"
)

var (
	// ErrNoCalendarsSelected is returned by Config.Select when no known calendar is enabled.
	ErrNoCalendarsSelected = errors.New("config: no calendars selected")
	// ErrInvalidName is returned by Config.Validate for installation names that cannot be used in MQTT topics.
	ErrInvalidName = errors.New("config: invalid installation name")
	// ErrInvalidBroker is returned by Config.Validate for broker URLs that cannot be dialed.
	ErrInvalidBroker = errors.New("config: invalid broker url")
	// ErrInvalidQoS is returned by Config.Validate for a quality of service outside 0 through 2.
	ErrInvalidQoS = errors.New("config: invalid qos")
	// ErrInvalidWait is returned by Config.Validate for a negative WaitForHomeAssistant.
	ErrInvalidWait = errors.New("config: invalid wait_for_home_assistant")
)

// Config is the altcal configuration.
type Config struct {
	// Name identifies this installation. It prefixes the unique ID of every sensor.
	Name string `yaml:"name"`

	// Language selects the translations used for sensor names and localized attributes.
	Language string `yaml:"language"`

	Broker   string `yaml:"broker"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"client_id"`

	DiscoveryPrefix string `yaml:"discovery_prefix"`
	TopicPrefix     string `yaml:"topic_prefix"`

	// QoS is the MQTT quality of service (0, 1 or 2) used for every sensor.
	QoS int `yaml:"qos"`

	// WaitForHomeAssistant bounds how long startup waits for Home Assistant to report online before announcing
	// anyway. Zero announces immediately.
	WaitForHomeAssistant time.Duration `yaml:"wait_for_home_assistant"`

	Log log.Options `yaml:"log"`

	// Calendars enables calendars by ID, each with its own options.
	Calendars map[string]calendar.Options `yaml:"calendars"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Name:            DefaultName,
		Language:        DefaultLanguage,
		Broker:          DefaultBroker,
		DiscoveryPrefix: DefaultDiscoveryPrefix,
		TopicPrefix:     DefaultTopicPrefix,
		Log:             log.Options{Level: "info", Format: log.FormatText},
	}
}

// Load reads the configuration file at path on top of Default, then applies environment overrides. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer func() { _ = f.Close() }()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	c.Broker = envStr(EnvBroker, c.Broker)
	c.Username = envStr(EnvUsername, c.Username)
	c.Password = envStr(EnvPassword, c.Password)
	c.Name = envStr(EnvName, c.Name)
	c.Language = envStr(EnvLanguage, c.Language)
	c.Log.Level = envStr(EnvLogLevel, c.Log.Level)
	c.Log.Format = envStr(EnvLogFormat, c.Log.Format)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// Validate checks the fields that would otherwise fail later in surprising ways.
func (c *Config) Validate() error {
	var err error
	if c.Name == "" || strings.ContainsAny(c.Name, "/+# \t") {
		err = errors.Join(err, fmt.Errorf("%w: %q", ErrInvalidName, c.Name))
	}

	if _, urlErr := c.BrokerURL(); urlErr != nil {
		err = errors.Join(err, urlErr)
	}

	if c.QoS < 0 || c.QoS > 2 {
		err = errors.Join(err, fmt.Errorf("%w: %d", ErrInvalidQoS, c.QoS))
	}

	if c.WaitForHomeAssistant < 0 {
		err = errors.Join(err, fmt.Errorf("%w: %s", ErrInvalidWait, c.WaitForHomeAssistant))
	}

	return err
}

// BrokerURL parses Broker.
func (c *Config) BrokerURL() (*url.URL, error) {
	u, err := url.Parse(c.Broker)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBroker, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q needs a scheme and host", ErrInvalidBroker, c.Broker)
	}

	return u, nil
}

// Selection is a calendar enabled by the configuration.
type Selection struct {
	Descriptor calendar.Descriptor
	Options    calendar.Options
}

// Select resolves the enabled calendars against r, in registry order. Unknown calendar IDs log a warning and are
// skipped. It returns ErrNoCalendarsSelected if nothing known is enabled.
func (c *Config) Select(r *calendar.Registry) ([]Selection, error) {
	l := log.ForComponent("config")
	for id := range c.Calendars {
		if _, ok := r.Lookup(id); !ok {
			l.With(log.Calendar(id)).Warn("Unknown calendar, skipping")
		}
	}

	var result []Selection
	for _, d := range r.All() {
		opts, ok := c.Calendars[d.ID]
		if !ok {
			continue
		}

		l.With(slog.Any("descriptor", d)).Debug("Calendar enabled")
		result = append(result, Selection{Descriptor: d, Options: opts})
	}

	if len(result) == 0 {
		return nil, ErrNoCalendarsSelected
	}

	return result, nil
}

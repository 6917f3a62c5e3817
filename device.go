package altcal

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nlowe/altcal/discovery"
	"github.com/nlowe/altcal/mqtt"
)

// ErrInvalidDevice is the error returned by Device.Configure and Device.Valid if it is not properly configured.
var ErrInvalidDevice = errors.New("device must have at least one identifying value in 'identifiers'")

// Device represents an MQTT-based HomeAssistant device. In the Home Assistant MQTT Integration, a Device is a
// collection of "Components" (entities). This relationship is only constructed when marshaling the discovery payload to
// the MQTT Broker.
//
// See https://www.home-assistant.io/integrations/mqtt/#device-discovery-payload
type Device struct {
	// The ID to use for discovery. If empty, an ID is calculated from other fields.
	DiscoveryID string `json:"-"`

	// The name of the device.
	Name string `json:"name,omitempty"`

	// The manufacturer of the device.
	Manufacturer string `json:"mf,omitempty"`

	// The model of the device.
	Model string `json:"mdl,omitempty"`

	// The software version of the device
	SoftwareVersion string `json:"sw,omitempty"`

	// A list of IDs that uniquely identify the device.
	Identifiers []string `json:"ids,omitempty"`

	// Suggest an area if the device isn't in one yet
	SuggestedArea string `json:"sa,omitempty"`

	// Home Assistant requires origin information be specified when using Device-based Discovery. If omitted,
	// DefaultOrigin will be used when serializing the discovery payload instead.
	Origin *Origin `json:"-"`
}

func (d *Device) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", d.ID()),
		slog.String("name", d.Name),
	)
}

// ID calculates an identifier for this device. If the Device.DiscoveryID is specified, that value will be used.
// Otherwise, all Device.Identifiers followed by Device.Name, Device.Manufacturer and Device.Model are joined with
// discovery.IDSep, skipping empty values.
func (d *Device) ID() string {
	if d.DiscoveryID != "" {
		return d.DiscoveryID
	}

	var parts []string
	for _, part := range slices.Concat(d.Identifiers, []string{d.Name, d.Manufacturer, d.Model}) {
		if part != "" {
			parts = append(parts, discovery.IDSanitizer.Replace(part))
		}
	}

	return strings.Join(parts, discovery.IDSep)
}

// Valid checks if this Device is configured appropriately. Home Assistant requires at least one value be configured for
// Device.Identifiers.
func (d *Device) Valid() error {
	if len(d.Identifiers) == 0 {
		return ErrInvalidDevice
	}

	return nil
}

// Configure writes the device discovery payload for this device and the provided components, which are associated with
// this Device. The payload is retained so Home Assistant picks it up again after a restart.
//
// The device must pass validation performed by Device.Valid.
func (d *Device) Configure(ctx context.Context, w mqtt.Writer, discoveryPrefix string, components map[string]json.MarshalerTo) error {
	if err := d.Valid(); err != nil {
		return err
	}

	var buf bytes.Buffer
	e := jsontext.NewEncoder(
		&buf,
		jsontext.CanonicalizeRawInts(true),
		jsontext.CanonicalizeRawFloats(true),
	)

	err := errors.Join(
		e.WriteToken(jsontext.BeginObject),

		discovery.MarshalStd("device", e, discovery.FieldDevice, d),
		discovery.MarshalStd("origin", e, discovery.FieldOrigin, cmp.Or(d.Origin, &DefaultOrigin)),

		e.WriteToken(jsontext.String(discovery.FieldComponents)),
		e.WriteToken(jsontext.BeginObject),

		discovery.MaybeInlineMarshalStd(e, components),

		e.WriteToken(jsontext.EndObject),
		e.WriteToken(jsontext.EndObject),
	)

	if err != nil {
		return fmt.Errorf("configure: marshal discovery config: %w", err)
	}

	topic := fmt.Sprintf(`%s/device/%s/config`, discoveryPrefix, d.ID())
	return w.WriteTopic(ctx, topic, mqtt.WriteOptions{Retain: true}, buf.Bytes())
}

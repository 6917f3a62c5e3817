package altcal

import (
	"encoding/json/jsontext"
)

// Platform is the interface implemented by every MQTT Entity Component type.
type Platform interface {
	// MarshalDiscoveryTo marshals MQTT Device Discovery information to the specified jsontext.Encoder using the
	// provided prefix for all MQTT Topics.
	MarshalDiscoveryTo(e *jsontext.Encoder, prefix string) error

	// PlatformName returns the value for the `platform` field when configuring a component using this platform for MQTT
	// Device Discovery.
	PlatformName() string
}

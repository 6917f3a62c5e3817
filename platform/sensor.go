package platform

import (
	"encoding/json/jsontext"
	"errors"
	"time"

	"github.com/nlowe/altcal/discovery"
	"github.com/nlowe/altcal/mqtt"
)

// Sensor is a altcal.Platform that implements the sensor.mqtt integration for Home Assistant. The state of this sensor
// has a type of TValue, and attributes for state have a type of TAttributes.
//
// See the Home Assistant documentation for more details: https://www.home-assistant.io/integrations/sensor.mqtt/.
type Sensor[TValue, TAttributes any] struct {
	// If set, it defines the number of seconds after the sensor’s state expires if it’s not updated. After expiry, the
	// sensor’s state becomes unavailable. By default, the sensor’s state never expires.
	ExpireMeasurementsAfter time.Duration

	// Attributes exposes state attributes for this sensor. For standard marshaling, use mqtt.JsonValueMarshaler for the
	// mqtt.ValueMarshaler for this value. When using a custom marshaler, the resulting byte slice must be a json object.
	Attributes *mqtt.Value[TAttributes]

	// The current value of the sensor
	State *mqtt.Value[TValue] `altcal:"required"`
}

// NewSensor constructs a Sensor publishing its state to StateTopic with the provided marshaler and its attributes as
// json to AttributesTopic, both with the provided WriteOptions.
func NewSensor[TValue, TAttributes any](state mqtt.ValueMarshaler[TValue], expireAfter time.Duration, opts mqtt.WriteOptions) *Sensor[TValue, TAttributes] {
	return &Sensor[TValue, TAttributes]{
		ExpireMeasurementsAfter: expireAfter,

		State:      mqtt.NewValueWithOptions(StateTopic, state, opts),
		Attributes: mqtt.NewValueWithOptions(AttributesTopic, mqtt.JsonValueMarshaler[TAttributes](), opts),
	}
}

func (s *Sensor[TValue, TAttributes]) PlatformName() string {
	return "sensor"
}

func (s *Sensor[TValue, TAttributes]) MarshalDiscoveryTo(e *jsontext.Encoder, prefix string) error {
	return errors.Join(
		discovery.MaybeMarshalStdComparable(e, discovery.FieldExpireMeasurementsAfter, s.ExpireMeasurementsAfter),
		discovery.MaybeMarshalValueTopic(e, discovery.FieldAttributesTopic, s.Attributes, prefix),
		discovery.MarshalRequiredValueTopic("state", e, discovery.FieldStateTopic, s.State, prefix),
	)
}

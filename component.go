package altcal

import (
	"encoding/json/jsontext"
	"errors"

	"github.com/nlowe/altcal/discovery"
	"github.com/nlowe/altcal/hass"
	"github.com/nlowe/altcal/mqtt"
)

// Component exposes a HomeAssistant component (an entity such as a calendar sensor) associated with a given device. It
// implements json.MarshalerTo by encoding the component for a Home Assistant Device Discovery payload.
type Component[TPlatform Platform] struct {
	Platform    TPlatform
	TopicPrefix string

	// The name of the entity. Set to the empty string if only the device name is relevant.
	Name string

	// The Icon to use in the frontend for this entity
	Icon string

	// Identifies to home assistant whether this entity is available
	Availability *mqtt.Value[hass.Availability] `altcal:"required"`

	// Use this value instead of name for automatic generation of the entity ID. For example, `sensor.altcal_maya`. When
	// used with a UniqueID, the DefaultEntityID is only used when the entity is added for the first time.
	DefaultEntityID string

	// An ID that uniquely identifies this entity. If two entities have the same unique ID, Home Assistant will raise an
	// exception. Required when used with device-based discovery.
	UniqueID string `altcal:"required"`

	// The maximum QoS Home Assistant should subscribe to the entity's topics with.
	QoS mqtt.QualityOfService
}

func (c *Component[TPlatform]) MarshalJSONTo(e *jsontext.Encoder) error {
	nameToken := jsontext.Null
	if c.Name != "" {
		nameToken = jsontext.String(c.Name)
	}

	return errors.Join(
		e.WriteToken(jsontext.BeginObject),

		discovery.MarshalStdComparable("platform", e, discovery.FieldPlatform, c.Platform.PlatformName()),

		e.WriteToken(jsontext.String("name")),
		e.WriteToken(nameToken),

		discovery.MaybeMarshalStdComparable(e, discovery.FieldIcon, c.Icon),

		discovery.MarshalRequiredValueTopic("availability", e, discovery.FieldAvailabilityTopic, c.Availability, c.TopicPrefix),

		discovery.MaybeMarshalStdComparable(e, discovery.FieldDefaultEntityID, c.DefaultEntityID),
		discovery.MarshalStdComparable("unique_id", e, discovery.FieldUniqueID, c.UniqueID),
		discovery.MaybeMarshalStdComparable(e, discovery.FieldQualityOfService, c.QoS),

		c.Platform.MarshalDiscoveryTo(e, c.TopicPrefix),

		e.WriteToken(jsontext.EndObject),
	)
}

// Package platform contains implementations for the Home Assistant MQTT platforms published by altcal. See the Home
// Assistant docs for a list of platforms: https://www.home-assistant.io/integrations/mqtt.
//
// Each platform implementation satisfies the altcal.Platform interface. The PlatformName method returns the Home
// Assistant platform name (e.g. Sensor's PlatformName method returns the string "sensor").
//
// Not all fields for a given platform implementation are required by Home Assistant. Required fields are tagged with
// `altcal:"required"` and checked when marshaling for discovery.
package platform

const (
	// StateTopic is the topic, relative to a component's topic prefix, that platform state is written to.
	StateTopic = "state"
	// AttributesTopic is the topic, relative to a component's topic prefix, that json state attributes are written to.
	AttributesTopic = "attributes"
	// AvailabilityTopic is the topic, relative to a component's topic prefix, that availability is written to.
	AvailabilityTopic = "availability"
)

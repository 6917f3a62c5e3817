package discovery

// Constants for component (entity) discovery fields.
const (
	FieldAvailabilityTopic = "avty_t"
)

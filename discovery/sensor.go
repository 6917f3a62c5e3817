package discovery

// Generic Sensor Constants
const (
	FieldExpireMeasurementsAfter = "exp_after"
	FieldAttributesTopic         = "json_attr_t"
)

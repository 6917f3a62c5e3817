package discovery

import (
	"strings"

	"github.com/nlowe/altcal/mqtt"
)

// Constants for device fields and other fields shared by all platforms
const (
	FieldStateTopic = "stat_t"

	FieldDevice          = "dev"
	FieldOrigin          = "o"
	FieldComponents      = "cmps"
	FieldIcon            = "ic"
	FieldPlatform        = "p"
	FieldDefaultEntityID = "def_ent_id"
	FieldUniqueID        = "uniq_id"

	// IDSep is the separator used to separate various parts of a device ID. It is also used as a replacement for tokens
	// that are not allowed in an ID string.
	IDSep = "__"
)

var (
	// IDSanitizer is a strings.Replacer that sanitizes a device ID for use in an MQTT Topic.
	IDSanitizer = strings.NewReplacer(
		" ", IDSep,
		":", IDSep,
		".", IDSep,
		"!", IDSep,
		"?", IDSep,
		"+", IDSep,
		"#", IDSep,
		mqtt.TopicSeparator, IDSep,
	)
)

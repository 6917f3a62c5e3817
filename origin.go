package altcal

import "net/url"

// Version is the altcal release, overridden at build time with -ldflags "-X github.com/nlowe/altcal.Version=...".
var Version = "dev"

// Origin provides information about the software providing devices over MQTT to Home Assistant. See the documentation
// for Device.Origin for details.
type Origin struct {
	// The name of the application that is the origin of the discovered MQTT item.
	Name string `json:"name"`
	// Software version of the application that supplies the discovered MQTT item.
	SoftwareVersion string `json:"sw,omitempty"`
	// Support URL of the application that supplies the discovered MQTT item.
	SupportURL *url.URL `json:"url,omitempty"`
}

var (
	supportURL, _ = url.Parse("https://github.com/nlowe/altcal")

	// DefaultOrigin is the origin information sent to Home Assistant for devices that do not otherwise specify one.
	DefaultOrigin = Origin{
		Name:            "altcal",
		SoftwareVersion: Version,
		SupportURL:      supportURL,
	}
)

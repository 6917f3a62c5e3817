// Package discovery contains constants and utilities for constructing Home Assistant Device Discovery MQTT Payloads. To
// keep retained discovery messages small, the constants in this package map to the abbreviated field names.
//
// See https://www.home-assistant.io/integrations/mqtt/#supported-abbreviations-in-mqtt-discovery-messages for a full
// list of abbreviations. Only the fields used by altcal's sensors and devices are provided as constants.
package discovery

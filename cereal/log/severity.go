// Package log holds the root Event message of the bus schema and the sensor
// messages carried by it.
package log

// Syslog style severities for LogMessage.
const (
	SEVERITY_EMERGENCY uint8 = 0
	SEVERITY_ALERT     uint8 = 1
	SEVERITY_CRITICAL  uint8 = 2
	SEVERITY_ERROR     uint8 = 3
	SEVERITY_WARNING   uint8 = 4
	SEVERITY_NOTICE    uint8 = 5
	SEVERITY_INFO      uint8 = 6
)

// Package constants holds configuration values shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the environment name used in production.
	EnvProduction = "production"
)

// Device authentication headers used by firmware on GET endpoints.
const (
	HeaderDeviceSerial = "X-Device-Serial"
	HeaderDeviceSecret = "X-Device-Secret"
)

const (
	// DefaultTimezone is used when a device registers without a timezone.
	DefaultTimezone = "America/Mexico_City"

	// DefaultCompartmentCount is the number of slots physically addressable on the ESP32 board.
	DefaultCompartmentCount = 3

	// CompartmentAngleStep is the actuator angle between consecutive default compartments.
	CompartmentAngleStep = 90
)

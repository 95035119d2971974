package srf

import (
	"errors"
	"fmt"
	"strings"
)

// Reference wavelength grid shared by all profiles, in integer nanometers
// at 1 nm resolution.
const (
	GridMin = 350
	GridMax = 2500

	// GridLen is the number of samples on the reference grid.
	GridLen = GridMax - GridMin + 1
)

// ErrUnknownSensor is returned when a sensor key does not match the
// supported enumeration.
var ErrUnknownSensor = errors.New("srf: unknown sensor")

// Sensor identifies a supported satellite instrument.
type Sensor string

const (
	SensorSentinel2A  Sensor = "Sentinel-2A"
	SensorSentinel2B  Sensor = "Sentinel-2B"
	SensorSentinel3A  Sensor = "Sentinel-3A"
	SensorSentinel3B  Sensor = "Sentinel-3B"
	SensorSuperDove   Sensor = "PlanetScope SuperDove"
	SensorLandsat5TM  Sensor = "Landsat-5 TM"
	SensorLandsat7ETM Sensor = "Landsat-7 ETM+"
	SensorLandsat8OLI Sensor = "Landsat-8 OLI"
	SensorLandsat9OLI Sensor = "Landsat-9 OLI"
)

var sensorOrder = []Sensor{
	SensorSentinel2A,
	SensorSentinel2B,
	SensorSentinel3A,
	SensorSentinel3B,
	SensorSuperDove,
	SensorLandsat5TM,
	SensorLandsat7ETM,
	SensorLandsat8OLI,
	SensorLandsat9OLI,
}

// Sensors returns the supported sensors in a stable order.
func Sensors() []Sensor {
	out := make([]Sensor, len(sensorOrder))
	copy(out, sensorOrder)
	return out
}

// ParseSensor matches name against the canonical sensor keys, ignoring
// case and surrounding whitespace. Every other spelling is rejected with
// ErrUnknownSensor; no alias table is consulted.
func ParseSensor(name string) (Sensor, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range sensorOrder {
		if strings.ToLower(string(s)) == needle {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSensor, name)
}

package prayer

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedMethod = errors.New("unsupported calculation method")

// Method is a calculation convention. The set of implementations is closed;
// DepressionAngles is currently the only one.
type Method interface {
	Name() string
	method()
}

// DepressionAngles defines twilight events by fixed sun altitudes and the
// afternoon event by a shadow length rule.
type DepressionAngles struct {
	Label string

	// Altitudes in degrees, negative below the horizon.
	Dawn    float64
	Horizon float64
	Night   float64

	// ShadowFactor is 1 for the Shafi convention.
	ShadowFactor float64

	// Temkin holds per-event safety margins in minutes.
	Temkin [eventCount]float64

	// Above HighLatitude degrees (north or south) the night event is
	// placed NightDelay minutes after sunset. Zero disables the rule.
	HighLatitude float64
	NightDelay   float64
}

// Diyanet is the Presidency of Religious Affairs (Turkey) convention.
func Diyanet() DepressionAngles {
	return DepressionAngles{
		Label:        "Turkey",
		Dawn:         -18,
		Horizon:      -0.833,
		Night:        -17,
		ShadowFactor: 1,
		Temkin: [eventCount]float64{
			Gunes:  -7,
			Ogle:   5,
			Ikindi: 4,
			Aksam:  7,
		},
		HighLatitude: 45,
		NightDelay:   92,
	}
}

func (m DepressionAngles) Name() string { return m.Label }

func (DepressionAngles) method() {}

// Astronomical returns m without safety margins or the high latitude rule,
// leaving pure sun-altitude events.
func (m DepressionAngles) Astronomical() DepressionAngles {
	m.Temkin = [eventCount]float64{}
	m.HighLatitude = 0
	m.NightDelay = 0
	return m
}

// altitude returns the target sun altitude for e. Solar noon has none.
func (m DepressionAngles) altitude(e Event, latitude, declination float64) (float64, error) {
	switch e {
	case Imsak:
		return m.Dawn, nil
	case Gunes, Aksam:
		return m.Horizon, nil
	case Ikindi:
		return AfternoonAltitude(latitude, declination, m.ShadowFactor)
	case Yatsi:
		return m.Night, nil
	}
	return 0, fmt.Errorf("event %v has no altitude", e)
}

// ParseMethod maps a calculation method name to its definition. An empty
// name selects Diyanet.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "turkey", "diyanet":
		return Diyanet(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
}

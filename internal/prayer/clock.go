package prayer

import (
	"fmt"
	"math"
	"time"
)

const minutesPerDay = 24 * 60

// Clock is a wall clock time with minute resolution.
type Clock struct {
	Hour   int
	Minute int
}

// String formats c as zero padded 24-hour "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Format12 returns c on a 12-hour dial along with "AM" or "PM".
func (c Clock) Format12() (string, string) {
	h, period := c.Hour, "AM"
	if h >= 12 {
		period = "PM"
	}
	if h == 0 {
		h = 12
	} else if h > 12 {
		h -= 12
	}
	return fmt.Sprintf("%02d:%02d", h, c.Minute), period
}

func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClock reads a 24-hour "HH:MM" value.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 {
		return Clock{}, fmt.Errorf("invalid clock %q", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockFromHours rounds decimal hours to the nearest minute. The value is
// wrapped into [0, 24) before and after rounding, so 23:59:40 reads 00:00.
func ClockFromHours(h float64) Clock {
	m := int(math.Round(normalizeHours(h)*60)) % minutesPerDay
	return Clock{Hour: m / 60, Minute: m % 60}
}

// SolarNoonUTC is the UTC time, in decimal hours, of the sun's transit.
func SolarNoonUTC(longitude, equationOfTime float64) float64 {
	return 12 - longitude/15 - equationOfTime/60
}

// EventUTC offsets solar noon by an hour angle given in degrees.
func EventUTC(noon, hourAngle float64, morning bool) float64 {
	if morning {
		return noon - hourAngle/15
	}
	return noon + hourAngle/15
}

// LocalHours shifts a UTC time by an offset in minutes east of UTC and
// wraps it into [0, 24). The calendar date is left untouched.
func LocalHours(utc, offsetMinutes float64) float64 {
	return normalizeHours(utc + offsetMinutes/60)
}

func normalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

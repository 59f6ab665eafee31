// Package prayer computes the six daily prayer times for a location and
// date from an approximate solar position model.
//
// Everything in this package is a pure function of its inputs.
package prayer

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidDayCount = errors.New("day count must be at least 1")
	ErrInvalidOffset   = errors.New("invalid utc offset")
)

// maxOffsetMinutes bounds the local offset to one day either side of UTC.
const maxOffsetMinutes = 24 * 60

// Location is a point on the earth in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

func (l Location) Validate() error {
	switch {
	case math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90:
		return fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrInvalidLocation, l.Latitude)
	case math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180:
		return fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrInvalidLocation, l.Longitude)
	}
	return nil
}

// Day holds the times for one calendar day. A nil entry means the sun does
// not reach that event's altitude on that day.
type Day struct {
	Date  Date
	Times [eventCount]*Clock
}

// Time returns the clock time for e and whether it exists.
func (d Day) Time(e Event) (Clock, bool) {
	if e < 0 || e >= eventCount || d.Times[e] == nil {
		return Clock{}, false
	}
	return *d.Times[e], true
}

// Missing lists the events with no solution on d.
func (d Day) Missing() []Event {
	var out []Event
	for _, e := range Events {
		if d.Times[e] == nil {
			out = append(out, e)
		}
	}
	return out
}

// Compute returns dayCount consecutive days of times starting at start.
// utcOffsetMinutes is the local offset east of UTC, e.g. 180 for UTC+3.
func Compute(loc Location, start Date, dayCount int, utcOffsetMinutes float64, m Method) ([]Day, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(utcOffsetMinutes) || math.Abs(utcOffsetMinutes) > maxOffsetMinutes {
		return nil, fmt.Errorf("%w: %v minutes not in [-%d, %d]", ErrInvalidOffset, utcOffsetMinutes, maxOffsetMinutes, maxOffsetMinutes)
	}
	angles, err := depressionAngles(m)
	if err != nil {
		return nil, err
	}
	dates, err := Dates(start, dayCount)
	if err != nil {
		return nil, err
	}
	out := make([]Day, len(dates))
	for i, d := range dates {
		out[i] = angles.day(loc, d, utcOffsetMinutes)
	}
	return out, nil
}

// ComputeDay is Compute for a single day.
func ComputeDay(loc Location, date Date, utcOffsetMinutes float64, m Method) (Day, error) {
	days, err := Compute(loc, date, 1, utcOffsetMinutes, m)
	if err != nil {
		return Day{}, err
	}
	return days[0], nil
}

func depressionAngles(m Method) (DepressionAngles, error) {
	switch m := m.(type) {
	case DepressionAngles:
		return m, nil
	case *DepressionAngles:
		if m != nil {
			return *m, nil
		}
	}
	return DepressionAngles{}, fmt.Errorf("%w: %T", ErrUnsupportedMethod, m)
}

func (m DepressionAngles) day(loc Location, date Date, offset float64) Day {
	sp := SolarPosition(date.DayOfYear(), date.Year)
	noon := SolarNoonUTC(loc.Longitude, sp.EquationOfTime)

	var (
		utc [eventCount]float64
		ok  [eventCount]bool
	)
	for _, e := range Events {
		if e == Ogle {
			utc[e], ok[e] = noon, true
			continue
		}
		alt, err := m.altitude(e, loc.Latitude, sp.Declination)
		if err != nil {
			continue
		}
		h, err := HourAngle(loc.Latitude, sp.Declination, alt)
		if err != nil {
			continue
		}
		utc[e], ok[e] = EventUTC(noon, h, e.IsMorning()), true
	}

	for _, e := range Events {
		utc[e] += m.Temkin[e] / 60
	}
	if m.HighLatitude > 0 && math.Abs(loc.Latitude) > m.HighLatitude {
		utc[Yatsi], ok[Yatsi] = utc[Aksam]+m.NightDelay/60, ok[Aksam]
	}

	day := Day{Date: date}
	for _, e := range Events {
		if !ok[e] {
			continue
		}
		c := ClockFromHours(LocalHours(utc[e], offset))
		day.Times[e] = &c
	}
	return day
}

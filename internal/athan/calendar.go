package athan

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
)

// Calendar is a month of times for one screen, the printable imsakiye.
type Calendar struct {
	Screen string        `json:"screen"`
	City   string        `json:"city,omitempty"`
	Method string        `json:"method"`
	Month  string        `json:"month"` // YYYY-MM
	Days   []CalendarDay `json:"days"`
}

type CalendarDay struct {
	Date  string `json:"date"`
	Times Times  `json:"times"`
}

// MonthCalendar computes every day of year/month at the screen's location.
func MonthCalendar(s model.Screen, year int, month time.Month) (Calendar, error) {
	m, err := prayer.ParseMethod(s.Method)
	if err != nil {
		return Calendar{}, err
	}
	start, err := prayer.NewDate(year, month, 1)
	if err != nil {
		return Calendar{}, err
	}
	loc := prayer.Location{Latitude: s.Latitude, Longitude: s.Longitude}
	days, err := prayer.Compute(loc, start, start.DaysInMonth(), s.UTCOffsetMinutes, m)
	if err != nil {
		return Calendar{}, fmt.Errorf("screen %d: %w", s.ID, err)
	}

	cal := Calendar{
		Screen: s.Name,
		Method: m.Name(),
		Month:  fmt.Sprintf("%04d-%02d", year, int(month)),
		Days:   make([]CalendarDay, 0, len(days)),
	}
	if s.City != nil {
		cal.City = *s.City
	}
	for _, d := range days {
		cal.Days = append(cal.Days, CalendarDay{Date: d.Date.String(), Times: TimesOf(d)})
	}
	return cal, nil
}

func (c Calendar) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// CSV writes one row per day. Events the sun does not reach are empty cells.
func (c Calendar) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date"}
	for _, e := range prayer.Events {
		header = append(header, e.Key())
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, d := range c.Days {
		t := d.Times
		row := []string{d.Date}
		for _, clock := range []*prayer.Clock{t.Imsak, t.Gunes, t.Ogle, t.Ikindi, t.Aksam, t.Yatsi} {
			if clock == nil {
				row = append(row, "")
				continue
			}
			row = append(row, clock.String())
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

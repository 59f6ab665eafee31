// Package athan turns engine output into what screens display and receive.
package athan

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
)

// Times is the keyed form of one day, as served over HTTP and MQTT.
// A nil value marks an event the sun does not reach that day.
type Times struct {
	Imsak  *prayer.Clock `json:"imsak"`
	Gunes  *prayer.Clock `json:"gunes"`
	Ogle   *prayer.Clock `json:"ogle"`
	Ikindi *prayer.Clock `json:"ikindi"`
	Aksam  *prayer.Clock `json:"aksam"`
	Yatsi  *prayer.Clock `json:"yatsi"`
}

func TimesOf(d prayer.Day) Times {
	return Times{
		Imsak:  d.Times[prayer.Imsak],
		Gunes:  d.Times[prayer.Gunes],
		Ogle:   d.Times[prayer.Ogle],
		Ikindi: d.Times[prayer.Ikindi],
		Aksam:  d.Times[prayer.Aksam],
		Yatsi:  d.Times[prayer.Yatsi],
	}
}

// Message is the MQTT payload published to a screen.
type Message struct {
	Type     string `json:"type"`
	DeviceID string `json:"device_id"`
	Date     string `json:"date"`
	Method   string `json:"method"`
	Times    Times  `json:"times"`
	SentAt   int64  `json:"sent_at"`
}

// LocalDate is the calendar date at now for a fixed offset east of UTC.
func LocalDate(now time.Time, utcOffsetMinutes float64) prayer.Date {
	return prayer.DateOf(now.UTC().Add(time.Duration(utcOffsetMinutes * float64(time.Minute))))
}

// ScreenDay computes the screen's times for its local date at now.
func ScreenDay(s model.Screen, now time.Time) (prayer.Day, prayer.Method, error) {
	m, err := prayer.ParseMethod(s.Method)
	if err != nil {
		return prayer.Day{}, nil, err
	}
	loc := prayer.Location{Latitude: s.Latitude, Longitude: s.Longitude}
	day, err := prayer.ComputeDay(loc, LocalDate(now, s.UTCOffsetMinutes), s.UTCOffsetMinutes, m)
	if err != nil {
		return prayer.Day{}, nil, fmt.Errorf("screen %d: %w", s.ID, err)
	}
	return day, m, nil
}

// NewMessage encodes day for deviceID.
func NewMessage(deviceID string, day prayer.Day, m prayer.Method, now time.Time) ([]byte, error) {
	return json.Marshal(Message{
		Type:     "athan_times",
		DeviceID: deviceID,
		Date:     day.Date.String(),
		Method:   m.Name(),
		Times:    TimesOf(day),
		SentAt:   now.Unix(),
	})
}

// PageData lays out day for the athan.html template.
func PageData(city string, day prayer.Day, m prayer.Method) model.AthanPageData {
	data := model.AthanPageData{
		City:    strings.ToUpper(city),
		Date:    strings.ToUpper(time.Date(day.Date.Year, day.Date.Month, day.Date.Day, 0, 0, 0, 0, time.UTC).Format("January 2, 2006")),
		Method:  m.Name(),
		Prayers: make([]model.Prayer, 0, len(prayer.Events)),
	}
	for _, e := range prayer.Events {
		p := model.Prayer{Key: e.Key(), Name: strings.ToUpper(e.Name()), Time: "--:--"}
		if c, ok := day.Time(e); ok {
			p.Time, p.Period = c.Format12()
		} else {
			data.Warnings = append(data.Warnings, fmt.Sprintf("%s does not occur on this day", e.Name()))
		}
		data.Prayers = append(data.Prayers, p)
	}
	return data
}

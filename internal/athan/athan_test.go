package athan

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
)

var istanbulScreen = model.Screen{
	ID:               7,
	Name:             "Main hall",
	Latitude:         41.0,
	Longitude:        29.0,
	UTCOffsetMinutes: 180,
	Method:           "Turkey",
}

func TestLocalDate(t *testing.T) {
	now := time.Date(2025, time.February, 10, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, prayer.Date{Year: 2025, Month: time.February, Day: 11}, LocalDate(now, 180))
	assert.Equal(t, prayer.Date{Year: 2025, Month: time.February, Day: 10}, LocalDate(now, 0))
	assert.Equal(t, prayer.Date{Year: 2025, Month: time.February, Day: 10}, LocalDate(now, -300))
}

func TestScreenDayAndMessage(t *testing.T) {
	now := time.Date(2025, time.February, 11, 9, 0, 0, 0, time.UTC)
	day, m, err := ScreenDay(istanbulScreen, now)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-11", day.Date.String())

	payload, err := NewMessage("tv-1", day, m, now)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "athan_times",
		"device_id": "tv-1",
		"date": "2025-02-11",
		"method": "Turkey",
		"times": {"imsak":"06:32","gunes":"07:58","ogle":"13:23","ikindi":"16:12","aksam":"18:39","yatsi":"19:59"},
		"sent_at": 1739264400
	}`, string(payload))

	var msg Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "tv-1", msg.DeviceID)
}

func TestScreenDayRejectsUnknownMethod(t *testing.T) {
	s := istanbulScreen
	s.Method = "MWL"
	_, _, err := ScreenDay(s, time.Now())
	assert.ErrorIs(t, err, prayer.ErrUnsupportedMethod)
}

func TestPageData(t *testing.T) {
	day, err := prayer.ComputeDay(prayer.Location{Latitude: 41, Longitude: 29}, prayer.Date{Year: 2025, Month: time.February, Day: 11}, 180, prayer.Diyanet())
	require.NoError(t, err)

	data := PageData("Istanbul", day, prayer.Diyanet())
	assert.Equal(t, "ISTANBUL", data.City)
	assert.Equal(t, "FEBRUARY 11, 2025", data.Date)
	require.Len(t, data.Prayers, 6)
	assert.Equal(t, model.Prayer{Key: "imsak", Name: "FAJR", Time: "06:32", Period: "AM"}, data.Prayers[0])
	assert.Equal(t, model.Prayer{Key: "ogle", Name: "DHUHR", Time: "01:23", Period: "PM"}, data.Prayers[2])
	assert.Empty(t, data.Warnings)

	polar, err := prayer.ComputeDay(prayer.Location{Latitude: 70, Longitude: 25}, prayer.Date{Year: 2025, Month: time.June, Day: 21}, 120, prayer.Diyanet())
	require.NoError(t, err)
	data = PageData("Tromso", polar, prayer.Diyanet())
	assert.Equal(t, "--:--", data.Prayers[0].Time)
	assert.Len(t, data.Warnings, 4)
}

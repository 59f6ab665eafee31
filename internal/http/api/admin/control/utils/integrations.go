package utils

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Nixie-Tech-LLC/vakit/internal/athan"
	"github.com/Nixie-Tech-LLC/vakit/internal/http/api"
	"github.com/Nixie-Tech-LLC/vakit/internal/model"
	"github.com/Nixie-Tech-LLC/vakit/internal/prayer"
)

const athanPath = "/api/tv/integrations/athan"

// AthanConfig is everything the athan page needs to render a screen's day.
type AthanConfig struct {
	Latitude         float64
	Longitude        float64
	UTCOffsetMinutes float64
	City             string
	Method           string
	Date             string // YYYY-MM-DD
}

// AthanConfigFor fills the config from a stored screen. An empty date
// resolves to the screen's local today.
func AthanConfigFor(s model.Screen, date string, now time.Time) AthanConfig {
	cfg := AthanConfig{
		Latitude:         s.Latitude,
		Longitude:        s.Longitude,
		UTCOffsetMinutes: s.UTCOffsetMinutes,
		Method:           s.Method,
		Date:             date,
	}
	if s.City != nil {
		cfg.City = *s.City
	}
	if cfg.Date == "" {
		cfg.Date = athan.LocalDate(now, s.UTCOffsetMinutes).String()
	}
	return cfg
}

// SetupAthan validates cfg and returns the page URL a screen should load.
func SetupAthan(cfg AthanConfig) (string, *api.Error) {
	loc := prayer.Location{Latitude: cfg.Latitude, Longitude: cfg.Longitude}
	if err := loc.Validate(); err != nil {
		return "", api.BadRequest(err.Error())
	}
	if _, err := prayer.ParseDate(cfg.Date); err != nil {
		return "", api.BadRequest(err.Error())
	}
	if _, err := prayer.ParseMethod(cfg.Method); err != nil {
		return "", api.BadRequest(err.Error())
	}

	q := url.Values{}
	q.Set("lat", formatFloat(cfg.Latitude))
	q.Set("lon", formatFloat(cfg.Longitude))
	q.Set("tz", formatFloat(cfg.UTCOffsetMinutes))
	q.Set("date", cfg.Date)
	if cfg.City != "" {
		q.Set("city", cfg.City)
	}
	if m := strings.TrimSpace(cfg.Method); m != "" {
		q.Set("method", m)
	}
	return athanPath + "?" + q.Encode(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package model

import "time"

// Screen is a paired display that shows prayer times for its location.
type Screen struct {
	ID               int       `db:"id"                 json:"id"`
	DeviceID         *string   `db:"device_id"          json:"device_id"`
	Name             string    `db:"name"               json:"name"`
	City             *string   `db:"city"               json:"city"`
	Latitude         float64   `db:"latitude"           json:"latitude"`
	Longitude        float64   `db:"longitude"          json:"longitude"`
	UTCOffsetMinutes float64   `db:"utc_offset_minutes" json:"utc_offset_minutes"`
	Method           string    `db:"method"             json:"method"`
	Paired           bool      `db:"paired"             json:"paired"`
	CreatedAt        time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"         json:"updated_at"`
}

package packets

// screenResponse mirrors model.Screen but flattens times to RFC3339
type ScreenResponse struct {
	ID               int     `json:"id"`
	DeviceID         *string `json:"device_id"`
	Name             string  `json:"name"`
	City             *string `json:"city"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	UTCOffsetMinutes float64 `json:"utc_offset_minutes"`
	Method           string  `json:"method"`
	Paired           bool    `json:"paired"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type IntegrationURLResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ExportCalendarResponse struct {
	Month  string `json:"month"`
	Format string `json:"format"`
	URL    string `json:"url"`
}

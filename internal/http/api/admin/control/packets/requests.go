package packets

// UtcOffsetMinutes is minutes east of UTC (Istanbul is 180).
type CreateScreenRequest struct {
	Name             string   `json:"name" binding:"required"`
	City             *string  `json:"city"`
	Latitude         *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	UTCOffsetMinutes float64  `json:"utc_offset_minutes" binding:"gte=-840,lte=840"`
	Method           string   `json:"method"`
}

type UpdateScreenRequest struct {
	Name             *string  `json:"name" binding:"omitempty,min=1"`
	City             *string  `json:"city"`
	Latitude         *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	UTCOffsetMinutes *float64 `json:"utc_offset_minutes" binding:"omitempty,gte=-840,lte=840"`
	Method           *string  `json:"method"`
}

type PairScreenRequest struct {
	PairingCode string `json:"code" binding:"required"`
	ScreenID    int    `json:"screen_id" binding:"required"`
}

// AthanURLQuery picks the day shown by the integration page.
type AthanURLQuery struct {
	Date string `form:"date"` // YYYY-MM-DD, the screen's today when empty
}

type ExportCalendarRequest struct {
	Year   int    `json:"year" binding:"required,min=1900,max=2200"`
	Month  int    `json:"month" binding:"required,min=1,max=12"`
	Format string `json:"format" binding:"omitempty,oneof=json csv"`
}

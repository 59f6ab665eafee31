package packets

// REQUESTS FOR /api/tv/register
type RegisterPairingCodeRequest struct {
	PairingCode string `json:"code" binding:"required,min=4,max=16"`
	DeviceID    string `json:"device_id" binding:"required"`
}

// REQUESTS FOR /api/tv/times
type DeviceTimesQuery struct {
	DeviceID string `form:"device_id" binding:"required"`
}

// REQUESTS FOR /api/tv/integrations/athan
// Tz is minutes east of UTC, as stored on a screen.
type AthanQuery struct {
	Latitude  *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Longitude *float64 `form:"lon" binding:"required,gte=-180,lte=180"`
	Date      string   `form:"date"`
	Tz        float64  `form:"tz" binding:"gte=-840,lte=840"`
	City      string   `form:"city"`
	Method    string   `form:"method,default=Turkey"`
}

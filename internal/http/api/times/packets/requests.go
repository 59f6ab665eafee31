package packets

// TimesQuery is the query string shared by /timesForGPS and /calendarForGPS.
// TimezoneOffset follows JavaScript's Date.getTimezoneOffset: minutes WEST
// of UTC, so Istanbul (UTC+3) sends -180. It is required; 0 is UTC.
type TimesQuery struct {
	Latitude          *float64 `form:"lat" binding:"required,gte=-90,lte=90"`
	Longitude         *float64 `form:"lng" binding:"required,gte=-180,lte=180"`
	Date              string   `form:"date"` // YYYY-MM-DD, today when empty
	Days              int      `form:"days,default=1" binding:"min=1,max=365"`
	TimezoneOffset    *float64 `form:"timezoneOffset" binding:"required,gte=-840,lte=840"`
	CalculationMethod string   `form:"calculationMethod,default=Turkey"`
	Lang              string   `form:"lang"` // accepted, keys are always Turkish
}

// UTCOffsetMinutes converts the query offset to minutes east of UTC.
func (q TimesQuery) UTCOffsetMinutes() float64 {
	if q.TimezoneOffset == nil {
		return 0
	}
	return -*q.TimezoneOffset
}

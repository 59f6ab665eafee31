package model

// Prayer is one row on the athan screen.
type Prayer struct {
	Key    string // "imsak", "gunes", ...
	Name   string // "FAJR", "SUNRISE", ...
	Time   string // "05:12", "--:--" when the sun never reaches the event
	Period string // "AM" or "PM"
}

type AthanPageData struct {
	City     string
	Date     string // "FEBRUARY 11, 2025"
	Method   string
	Prayers  []Prayer
	Warnings []string
}

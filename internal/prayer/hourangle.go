package prayer

import (
	"errors"
	"math"
)

// ErrNoSolarEvent means the sun never reaches the requested altitude on
// that day at that latitude (polar day or night for the event).
var ErrNoSolarEvent = errors.New("no solar event this day")

// HourAngle solves
//
//	cos(H) = (sin(alt) - sin(lat)*sin(decl)) / (cos(lat)*cos(decl))
//
// for H in degrees. All arguments are in degrees.
func HourAngle(latitude, declination, altitude float64) (float64, error) {
	phi, delta := radians(latitude), radians(declination)
	cosH := (math.Sin(radians(altitude)) - math.Sin(phi)*math.Sin(delta)) /
		(math.Cos(phi) * math.Cos(delta))
	if math.IsNaN(cosH) || cosH < -1 || cosH > 1 {
		return 0, ErrNoSolarEvent
	}
	return degrees(math.Acos(cosH)), nil
}

// AfternoonAltitude is the sun altitude, in degrees, at which an object's
// shadow equals shadowFactor times its height plus its noon shadow.
func AfternoonAltitude(latitude, declination, shadowFactor float64) (float64, error) {
	z := math.Abs(latitude - declination)
	if z >= 90 {
		return 0, ErrNoSolarEvent
	}
	return degrees(math.Atan(1 / (shadowFactor + math.Tan(radians(z))))), nil
}

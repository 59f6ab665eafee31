package prayer

import "math"

// SolarParameters are the per-day inputs to every event calculation.
type SolarParameters struct {
	EquationOfTime float64 // minutes
	Declination    float64 // degrees
}

// SolarPosition evaluates the approximate USNO/NOAA fractional-year series
// for the given 1-based day of year. The hour fraction is taken as zero so
// that a single value serves the whole day.
func SolarPosition(dayOfYear, year int) SolarParameters {
	g := 2 * math.Pi * float64(dayOfYear-1) / float64(daysInYear(year))

	eot := 229.18 * (0.000075 +
		0.001868*math.Cos(g) -
		0.032077*math.Sin(g) -
		0.014615*math.Cos(2*g) -
		0.040849*math.Sin(2*g))

	decl := 0.006918 -
		0.399912*math.Cos(g) +
		0.070257*math.Sin(g) -
		0.006758*math.Cos(2*g) +
		0.000907*math.Sin(2*g) -
		0.002697*math.Cos(3*g) +
		0.00148*math.Sin(3*g)

	return SolarParameters{
		EquationOfTime: eot,
		Declination:    degrees(decl),
	}
}

func radians(d float64) float64 { return d * math.Pi / 180 }

func degrees(r float64) float64 { return r * 180 / math.Pi }

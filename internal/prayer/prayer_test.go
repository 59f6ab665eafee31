package prayer

import (
	"math"
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/solstice"
	"github.com/nathan-osman/go-sunrise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var istanbul = Location{Latitude: 41.0, Longitude: 29.0}

func clocks(d Day) []string {
	out := make([]string, len(d.Times))
	for i, c := range d.Times {
		if c == nil {
			out[i] = "-"
			continue
		}
		out[i] = c.String()
	}
	return out
}

func TestComputeIstanbulBaseline(t *testing.T) {
	start := Date{2025, time.February, 11}

	days, err := Compute(istanbul, start, 1, 180, Diyanet())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, start, days[0].Date)
	assert.Equal(t, []string{"06:32", "07:58", "13:23", "16:12", "18:39", "19:59"}, clocks(days[0]))

	days, err = Compute(istanbul, start, 1, 180, Diyanet().Astronomical())
	require.NoError(t, err)
	assert.Equal(t, []string{"06:32", "08:05", "13:18", "16:08", "18:32", "19:59"}, clocks(days[0]))

	// A negative offset moves every event six hours earlier than +180.
	days, err = Compute(istanbul, start, 1, -180, Diyanet().Astronomical())
	require.NoError(t, err)
	assert.Equal(t, []string{"00:32", "02:05", "07:18", "10:08", "12:32", "13:59"}, clocks(days[0]))
}

func TestComputeMultiDay(t *testing.T) {
	days, err := Compute(istanbul, Date{2025, time.February, 11}, 3, 180, Diyanet())
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, Date{2025, time.February, 11}, days[0].Date)
	assert.Equal(t, Date{2025, time.February, 12}, days[1].Date)
	assert.Equal(t, Date{2025, time.February, 13}, days[2].Date)

	assert.Equal(t, []string{"06:31", "07:57", "13:23", "16:13", "18:40", "20:00"}, clocks(days[1]))
	assert.Equal(t, []string{"06:30", "07:55", "13:23", "16:14", "18:41", "20:02"}, clocks(days[2]))

	for i := 1; i < len(days); i++ {
		prev, _ := days[i-1].Time(Ogle)
		cur, _ := days[i].Time(Ogle)
		assert.LessOrEqual(t, absInt(cur.Minutes()-prev.Minutes()), 1)
	}
}

func TestComputeYearRollover(t *testing.T) {
	days, err := Compute(istanbul, Date{2024, time.December, 30}, 4, 180, Diyanet())
	require.NoError(t, err)
	var got []string
	for _, d := range days {
		got = append(got, d.Date.String())
	}
	assert.Equal(t, []string{"2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}, got)
}

func TestComputeRejectsBadInput(t *testing.T) {
	_, err := Compute(istanbul, Date{2025, time.April, 31}, 1, 180, Diyanet())
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = Compute(istanbul, Date{2025, time.April, 1}, 0, 180, Diyanet())
	assert.ErrorIs(t, err, ErrInvalidDayCount)

	_, err = Compute(Location{Latitude: 91}, Date{2025, time.April, 1}, 1, 0, Diyanet())
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = Compute(Location{Longitude: -180.5}, Date{2025, time.April, 1}, 1, 0, Diyanet())
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = Compute(istanbul, Date{2025, time.April, 1}, 1, 0, nil)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestComputeAcceptsMethodPointer(t *testing.T) {
	m := Diyanet()
	days, err := Compute(istanbul, Date{2025, time.February, 11}, 1, 180, &m)
	require.NoError(t, err)
	assert.Equal(t, []string{"06:32", "07:58", "13:23", "16:12", "18:39", "19:59"}, clocks(days[0]))

	var missing *DepressionAngles
	_, err = Compute(istanbul, Date{2025, time.February, 11}, 1, 180, missing)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestComputeRejectsBadOffset(t *testing.T) {
	for _, offset := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1441, -1500} {
		_, err := ComputeDay(istanbul, Date{2025, time.February, 11}, offset, Diyanet())
		assert.ErrorIs(t, err, ErrInvalidOffset, "offset %v", offset)
	}

	for _, offset := range []float64{1440, -1440, 0} {
		_, err := ComputeDay(istanbul, Date{2025, time.February, 11}, offset, Diyanet())
		assert.NoError(t, err, "offset %v", offset)
	}
}

func TestComputeWrapsPastMidnight(t *testing.T) {
	// Six hours east of the Istanbul baseline pushes aksam and yatsi past
	// midnight without moving the date.
	start := Date{2025, time.February, 11}
	day, err := ComputeDay(istanbul, start, 540, Diyanet())
	require.NoError(t, err)
	assert.Equal(t, start, day.Date)
	assert.Equal(t, []string{"12:32", "13:58", "19:23", "22:12", "00:39", "01:59"}, clocks(day))
	assert.Empty(t, day.Missing())
}

func TestAllEventsResolveAtModerateLatitudes(t *testing.T) {
	// Above roughly 48.5 degrees the sun does not reach 18 degrees below
	// the horizon around the summer solstice.
	for _, year := range []int{2024, 2025} {
		for lat := -48.0; lat <= 48; lat += 4 {
			days, err := Compute(Location{Latitude: lat, Longitude: 15}, Date{year, time.January, 1}, daysInYear(year), 60, Diyanet().Astronomical())
			require.NoError(t, err)
			for _, d := range days {
				assert.Empty(t, d.Missing(), "lat %v on %v", lat, d.Date)
			}
		}
	}
}

func TestEventOrdering(t *testing.T) {
	for _, m := range []DepressionAngles{Diyanet(), Diyanet().Astronomical()} {
		for lat := -45.0; lat <= 45; lat += 5 {
			for lng := -180.0; lng <= 180; lng += 45 {
				offset := math.Round(lng/15) * 60
				for month := time.January; month <= time.December; month++ {
					day, err := ComputeDay(Location{Latitude: lat, Longitude: lng}, Date{2025, month, 15}, offset, m)
					require.NoError(t, err)
					for i := 1; i < len(Events); i++ {
						prev, ok := day.Time(Events[i-1])
						require.True(t, ok)
						cur, ok := day.Time(Events[i])
						require.True(t, ok)
						assert.LessOrEqual(t, prev.Minutes(), cur.Minutes(),
							"%v before %v at %v,%v on %v", Events[i-1], Events[i], lat, lng, day.Date)
					}
				}
			}
		}
	}
}

func TestEquinoxSymmetryAtEquator(t *testing.T) {
	for _, year := range []int{2025, 2026} {
		for _, jde := range []float64{solstice.March(year), solstice.September(year)} {
			date := jdeToDate(jde)
			day, err := ComputeDay(Location{}, date, 0, Diyanet().Astronomical())
			require.NoError(t, err)

			rise, _ := day.Time(Gunes)
			noon, _ := day.Time(Ogle)
			set, _ := day.Time(Aksam)
			morning := noon.Minutes() - rise.Minutes()
			evening := set.Minutes() - noon.Minutes()
			assert.LessOrEqual(t, absInt(morning-evening), 2, "%v", date)
			assert.InDelta(t, 6*60, morning, 16, "%v", date)
		}
	}
}

func TestPolarSummerHasNoTwilight(t *testing.T) {
	june := jdeToDate(solstice.June(2025))
	for _, m := range []DepressionAngles{Diyanet(), Diyanet().Astronomical()} {
		days, err := Compute(Location{Latitude: 70, Longitude: 25}, june.prev(), 3, 120, m)
		require.NoError(t, err)
		for _, d := range days {
			_, ok := d.Time(Imsak)
			assert.False(t, ok, "imsak on %v", d.Date)
			_, ok = d.Time(Yatsi)
			assert.False(t, ok, "yatsi on %v", d.Date)
			_, ok = d.Time(Gunes)
			assert.False(t, ok, "gunes on %v", d.Date)

			// The rest of the day is still reported.
			_, ok = d.Time(Ogle)
			assert.True(t, ok)
			_, ok = d.Time(Ikindi)
			assert.True(t, ok)
		}
	}

	day, err := ComputeDay(Location{Latitude: 70, Longitude: 25}, Date{2025, time.June, 21}, 120, Diyanet().Astronomical())
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "-", "12:21", "17:35", "-", "-"}, clocks(day))
}

func TestHighLatitudeNightRule(t *testing.T) {
	loc := Location{Latitude: 50, Longitude: 10}
	date := Date{2025, time.June, 21}

	day, err := ComputeDay(loc, date, 120, Diyanet().Astronomical())
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "05:10", "13:21", "17:41", "21:33", "-"}, clocks(day))

	day, err = ComputeDay(loc, date, 120, Diyanet())
	require.NoError(t, err)
	assert.Equal(t, []string{"-", "05:03", "13:26", "17:45", "21:40", "23:12"}, clocks(day))
	assert.Equal(t, []Event{Imsak}, day.Missing())
}

func TestSunriseAgreesWithGoSunrise(t *testing.T) {
	places := []Location{
		{Latitude: 41.0082, Longitude: 28.9784},
		{Latitude: 51.5074, Longitude: -0.1278},
		{Latitude: 30.0444, Longitude: 31.2357},
		{Latitude: -0.18, Longitude: -78.47},
		{Latitude: -33.87, Longitude: 151.21},
	}
	for _, loc := range places {
		for month := time.January; month <= time.December; month++ {
			date := Date{2025, month, 15}
			day, err := ComputeDay(loc, date, 0, Diyanet().Astronomical())
			require.NoError(t, err)

			rise, set := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, date.Year, date.Month, date.Day)
			gotRise, _ := day.Time(Gunes)
			gotSet, _ := day.Time(Aksam)
			assert.LessOrEqual(t, circularDiff(gotRise.Minutes(), minuteOfDay(rise)), 5.0, "sunrise %v %v", loc, date)
			assert.LessOrEqual(t, circularDiff(gotSet.Minutes(), minuteOfDay(set)), 5.0, "sunset %v %v", loc, date)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, name := range []string{"", "Turkey", "turkey", " Diyanet "} {
		m, err := ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, Diyanet(), m)
	}
	_, err := ParseMethod("ISNA")
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func (d Date) prev() Date {
	return DateOf(d.time().AddDate(0, 0, -1))
}

func minuteOfDay(t time.Time) float64 {
	t = t.UTC()
	return float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
}

func circularDiff(a int, b float64) float64 {
	d := math.Mod(math.Abs(float64(a)-b), minutesPerDay)
	return math.Min(d, minutesPerDay-d)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

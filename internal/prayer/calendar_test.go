package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRejectsNonExistentDates(t *testing.T) {
	for _, tc := range []struct {
		y, d int
		m    time.Month
	}{
		{2025, 31, time.April},
		{2025, 29, time.February},
		{1900, 29, time.February},
		{2025, 0, time.March},
		{2025, 1, time.Month(13)},
		{2025, 1, time.Month(0)},
	} {
		_, err := NewDate(tc.y, tc.m, tc.d)
		assert.ErrorIs(t, err, ErrInvalidDate, "%d-%d-%d", tc.y, tc.m, tc.d)
	}

	for _, tc := range []struct {
		y, d int
		m    time.Month
	}{
		{2024, 29, time.February},
		{2000, 29, time.February},
		{2025, 31, time.December},
	} {
		_, err := NewDate(tc.y, tc.m, tc.d)
		assert.NoError(t, err)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-02-11")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.February, Day: 11}, d)
	assert.Equal(t, "2025-02-11", d.String())

	for _, s := range []string{"2025-04-31", "2025-02-29", "2025-2-11", "11/02/2025", "", "2025-02-11T00:00:00Z"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestDayOfYear(t *testing.T) {
	for _, tc := range []struct {
		date Date
		want int
	}{
		{Date{2025, time.January, 1}, 1},
		{Date{2025, time.February, 11}, 42},
		{Date{2025, time.March, 1}, 60},
		{Date{2024, time.March, 1}, 61},
		{Date{2025, time.December, 31}, 365},
		{Date{2024, time.December, 31}, 366},
	} {
		assert.Equal(t, tc.want, tc.date.DayOfYear(), tc.date.String())
	}
	assert.Equal(t, 366, Date{2024, time.June, 1}.DaysInYear())
	assert.Equal(t, 365, Date{2100, time.June, 1}.DaysInYear())
}

func TestNextRollsOver(t *testing.T) {
	for _, tc := range []struct{ from, want Date }{
		{Date{2025, time.February, 11}, Date{2025, time.February, 12}},
		{Date{2024, time.February, 28}, Date{2024, time.February, 29}},
		{Date{2024, time.February, 29}, Date{2024, time.March, 1}},
		{Date{2025, time.February, 28}, Date{2025, time.March, 1}},
		{Date{2025, time.April, 30}, Date{2025, time.May, 1}},
		{Date{2025, time.December, 31}, Date{2026, time.January, 1}},
	} {
		assert.Equal(t, tc.want, tc.from.Next())
	}
}

func TestDates(t *testing.T) {
	start := Date{2025, time.December, 30}
	got, err := Dates(start, 4)
	require.NoError(t, err)
	assert.Equal(t, []Date{
		{2025, time.December, 30},
		{2025, time.December, 31},
		{2026, time.January, 1},
		{2026, time.January, 2},
	}, got)

	_, err = Dates(start, 0)
	assert.ErrorIs(t, err, ErrInvalidDayCount)

	_, err = Dates(Date{2025, time.April, 31}, 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, Date{2024, time.February, 1}.DaysInMonth())
	assert.Equal(t, 28, Date{2100, time.February, 1}.DaysInMonth())
	assert.Equal(t, 30, Date{2025, time.November, 1}.DaysInMonth())
	assert.Equal(t, 31, Date{2025, time.December, 1}.DaysInMonth())
}

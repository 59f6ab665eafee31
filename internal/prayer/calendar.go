package prayer

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned for calendar dates that do not exist, such as
// April 31st or February 29th of a common year.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// Date is a proleptic Gregorian calendar date with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates its arguments. It never normalizes out of range values.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December || day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DaysInMonth is the length of d's month.
func (d Date) DaysInMonth() int {
	return daysInMonth(d.Year, d.Month)
}

func (d Date) Validate() error {
	_, err := NewDate(d.Year, d.Month, d.Day)
	return err
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DayOfYear returns the 1-based ordinal of d within its year.
func (d Date) DayOfYear() int {
	return d.time().YearDay()
}

// Next returns the following calendar day, rolling over months and years.
func (d Date) Next() Date {
	return DateOf(d.time().AddDate(0, 0, 1))
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func (d Date) DaysInYear() int {
	return daysInYear(d.Year)
}

// Dates returns n consecutive dates beginning with start.
func Dates(start Date, n int) ([]Date, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDayCount, n)
	}
	out := make([]Date, n)
	out[0] = start
	for i := 1; i < n; i++ {
		out[i] = out[i-1].Next()
	}
	return out, nil
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	}
	return 31
}

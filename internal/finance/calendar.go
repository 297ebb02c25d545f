package finance

import (
	"time"

	"cloud.google.com/go/civil"
)

// AddMonths moves d by n calendar months. When the target month is shorter
// the day is clamped to its last day, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(d civil.Date, n int) civil.Date {
	idx := int(d.Month) - 1 + n
	year := d.Year + floorDiv(idx, 12)
	month := time.Month(idx - floorDiv(idx, 12)*12 + 1)

	day := d.Day
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return civil.Date{Year: year, Month: month, Day: day}
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns the first day of d's month.
func MonthStart(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

// MonthEnd returns the last day of d's month.
func MonthEnd(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// SameMonth reports whether a and b share calendar month and year.
func SameMonth(a, b civil.Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

// Today returns the calendar date of now in its own location.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

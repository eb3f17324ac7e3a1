// Package elapsed computes calendar-aware elapsed time between a fixed
// reference instant and now.
package elapsed

import "time"

// Breakdown is the elapsed time decomposed into calendar units.
type Breakdown struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every field is zero.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}

// Between decomposes the gap from reference to now into years, months,
// days, hours, minutes and seconds. Each unit takes the largest whole
// amount that fits after the larger units have been consumed, using real
// month and year lengths. A now before reference yields the zero value.
func Between(reference, now time.Time) Breakdown {
	if !now.After(reference) {
		return Breakdown{}
	}
	reference, now = wall(reference), wall(now.In(reference.Location()))
	if !now.After(reference) {
		return Breakdown{}
	}

	var b Breakdown
	cursor := reference

	b.Years = now.Year() - reference.Year()
	if b.Years > 0 && addMonths(reference, b.Years*12).After(now) {
		b.Years--
	}
	cursor = addMonths(reference, b.Years*12)

	months := (now.Year()-cursor.Year())*12 + int(now.Month()-cursor.Month())
	if months > 0 && addMonths(cursor, months).After(now) {
		months--
	}
	b.Months = months
	cursor = addMonths(cursor, months)

	b.Days = calendarDays(cursor, now)
	if b.Days > 0 && cursor.AddDate(0, 0, b.Days).After(now) {
		b.Days--
	}
	cursor = cursor.AddDate(0, 0, b.Days)

	rest := now.Sub(cursor)
	b.Hours = int(rest / time.Hour)
	rest -= time.Duration(b.Hours) * time.Hour
	b.Minutes = int(rest / time.Minute)
	rest -= time.Duration(b.Minutes) * time.Minute
	b.Seconds = int(rest / time.Second)

	return b
}

// TotalWholeDays returns the number of whole days between reference and
// now. It counts calendar dates and drops the current day while now's
// time of day is still before the reference's.
func TotalWholeDays(reference, now time.Time) int {
	if !now.After(reference) {
		return 0
	}
	reference, now = wall(reference), wall(now.In(reference.Location()))

	days := calendarDays(reference, now)
	if days > 0 && reference.AddDate(0, 0, days).After(now) {
		days--
	}
	return days
}

// wall re-reads t's clock face in UTC, so arithmetic follows the wall clock
// and a day is always 24 hours, even across DST shifts.
func wall(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// calendarDays counts date boundaries between a and b, ignoring time of
// day and DST shifts.
func calendarDays(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// addMonths adds n months to t, clamping the day to the last day of the
// target month.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

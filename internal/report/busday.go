package report

import "time"

// dateOnly truncates t to midnight UTC so day arithmetic is stable
// regardless of where the process runs.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalendarDaysBetween returns the number of calendar days from start to end.
// Negative when end precedes start.
func CalendarDaysBetween(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours() / 24)
}

// BusinessDaysBetween counts Monday-to-Friday days in the half-open interval
// [start, end). No holiday calendar. Zero when end is not after start, so a
// position opened today has been open for zero business days.
func BusinessDaysBetween(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	n := 0
	for d := s; d.Before(e); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}

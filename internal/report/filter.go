package report

import (
	"errors"
	"sort"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// AllPositions is the position-filter sentinel meaning "no filter".
const AllPositions = "All"

// ErrInvalidDateRange indicates the requested reporting window could not be
// resolved to two valid dates. The pass aborts; the range is never widened
// silently.
var ErrInvalidDateRange = errors.New("invalid date range")

// Period is the reporting lookback window, anchored at the latest data date.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod maps a selector value to a Period.
func ParsePeriod(s string) (Period, bool) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return Period(s), true
	}
	return "", false
}

// Start returns the window start for a period ending at end, or the zero
// time for an unknown period.
func (p Period) Start(end time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return end.AddDate(0, 0, -7)
	case PeriodMonth:
		return end.AddDate(0, -1, 0)
	case PeriodQuarter:
		return end.AddDate(0, -3, 0)
	case PeriodYear:
		return end.AddDate(-1, 0, 0)
	}
	return time.Time{}
}

// Label returns the display name for the period.
func (p Period) Label() string {
	switch p {
	case PeriodWeek:
		return "Week"
	case PeriodMonth:
		return "Month"
	case PeriodQuarter:
		return "3 Months"
	case PeriodYear:
		return "Year"
	}
	return string(p)
}

// FilterRows returns the rows with start <= date <= end that match position.
// Position AllPositions (or empty) disables the position filter. Input order
// is preserved; the input slice is not modified. A zero start or end is an
// ErrInvalidDateRange.
func FilterRows(rows []normalize.Row, start, end time.Time, position string) ([]normalize.Row, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrInvalidDateRange
	}
	s := dateOnly(start)
	e := dateOnly(end)

	out := make([]normalize.Row, 0, len(rows))
	for _, r := range rows {
		if r.Date.Before(s) || r.Date.After(e) {
			continue
		}
		if position != "" && position != AllPositions && r.Position != position {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// DateRange returns the earliest and latest row dates. ok is false for an
// empty row-set.
func DateRange(rows []normalize.Row) (min, max time.Time, ok bool) {
	for _, r := range rows {
		if !ok {
			min, max, ok = r.Date, r.Date, true
			continue
		}
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max, ok
}

// Positions returns the sorted distinct position keys in the row-set.
func Positions(rows []normalize.Row) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rows {
		if r.Position == "" {
			continue
		}
		if _, dup := seen[r.Position]; dup {
			continue
		}
		seen[r.Position] = struct{}{}
		out = append(out, r.Position)
	}
	sort.Strings(out)
	return out
}

package report

import (
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// Velocity is the overall hiring-speed verdict for the filtered window:
// calendar days from the earliest row (opening) to the latest hire event.
type Velocity struct {
	HasOpening bool      `json:"has_opening"`
	HasHire    bool      `json:"has_hire"`
	OpenedAt   time.Time `json:"opened_at"`
	LastHire   time.Time `json:"last_hire"`
	Days       int       `json:"days"`
	Slow       bool      `json:"slow"`
}

// HiringVelocity computes the velocity verdict. With no rows there is no
// opening; with rows but no hire events the verdict stays incomplete rather
// than guessing. Slow means the gap exceeds slowAfterDays.
func HiringVelocity(rows []normalize.Row, slowAfterDays int) Velocity {
	var v Velocity
	min, _, ok := DateRange(rows)
	if !ok {
		return v
	}
	v.HasOpening = true
	v.OpenedAt = min

	for _, r := range rows {
		if r.Hired <= 0 {
			continue
		}
		if !v.HasHire || r.Date.After(v.LastHire) {
			v.HasHire = true
			v.LastHire = r.Date
		}
	}
	if !v.HasHire {
		return v
	}

	v.Days = CalendarDaysBetween(v.OpenedAt, v.LastHire)
	v.Slow = v.Days > slowAfterDays
	return v
}

// ElapsedBands classify per-position days-to-hire for the table's
// conditional styling: good up to GoodUpTo, warn up to WarnUpTo, bad above.
type ElapsedBands struct {
	GoodUpTo int
	WarnUpTo int
}

// Classify returns "good", "warn" or "bad" for a day count.
func (b ElapsedBands) Classify(days int) string {
	switch {
	case days <= b.GoodUpTo:
		return "good"
	case days <= b.WarnUpTo:
		return "warn"
	default:
		return "bad"
	}
}

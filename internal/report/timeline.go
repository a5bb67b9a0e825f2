package report

import (
	"sort"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// Timeline is the derived life of one position within a row-set: when it
// opened, its most recent status row, and whether it is still open.
type Timeline struct {
	Position string
	OpenedAt time.Time

	// First is the earliest row recorded for the position; ties on the
	// opening date keep the first row in input order. Its counters are the
	// initial sourcing snapshot.
	First normalize.Row

	// Latest is the row with the maximum date; ties keep the last row in
	// input order. Open/closed state derives from this row only.
	Latest normalize.Row

	Open bool
}

// BuildTimelines derives one Timeline per distinct position, sorted by
// position key. Positions appear only through rows with valid dates, so the
// opening date is always <= every other date for the key.
func BuildTimelines(rows []normalize.Row) []Timeline {
	byPos := make(map[string]*Timeline)
	for _, r := range rows {
		if r.Position == "" {
			continue
		}
		tl, exists := byPos[r.Position]
		if !exists {
			byPos[r.Position] = &Timeline{
				Position: r.Position,
				OpenedAt: r.Date,
				First:    r,
				Latest:   r,
			}
			continue
		}
		if r.Date.Before(tl.OpenedAt) {
			tl.OpenedAt = r.Date
			tl.First = r
		}
		if !r.Date.Before(tl.Latest.Date) {
			tl.Latest = r
		}
	}

	out := make([]Timeline, 0, len(byPos))
	for _, tl := range byPos {
		tl.Open = !tl.Latest.Closed()
		out = append(out, *tl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

// PositionElapsed is the per-position time-to-first-hire entry for the
// elapsed-time table.
type PositionElapsed struct {
	Position   string    `json:"position"`
	OpenedAt   time.Time `json:"opened_at"`
	Hired      bool      `json:"hired"`
	DaysToHire int       `json:"days_to_hire"`
}

// ElapsedByPosition computes, for each position in the row-set, the calendar
// days from its opening to its first hire event. Positions with no hires are
// included with Hired false so the table can show them pending.
func ElapsedByPosition(rows []normalize.Row) []PositionElapsed {
	timelines := BuildTimelines(rows)
	firstHire := make(map[string]time.Time)
	for _, r := range rows {
		if r.Hired <= 0 || r.Position == "" {
			continue
		}
		if cur, ok := firstHire[r.Position]; !ok || r.Date.Before(cur) {
			firstHire[r.Position] = r.Date
		}
	}

	out := make([]PositionElapsed, 0, len(timelines))
	for _, tl := range timelines {
		e := PositionElapsed{Position: tl.Position, OpenedAt: tl.OpenedAt}
		if hire, ok := firstHire[tl.Position]; ok {
			e.Hired = true
			e.DaysToHire = CalendarDaysBetween(tl.OpenedAt, hire)
		}
		out = append(out, e)
	}
	return out
}

package report

import (
	"sort"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// TernaEvent is one shortlist submission: a row whose terna counter is
// positive, positioned by business days since the position opened.
type TernaEvent struct {
	Date              time.Time `json:"date"`
	BusinessDayOffset int       `json:"business_day_offset"`
	Candidates        int       `json:"candidates"`
}

// TernaSummary is the per-position shortlist submission history, ordered by
// date ascending. Drives the submission scatter view; plotting is the
// presentation layer's concern.
type TernaSummary struct {
	Position    string       `json:"position"`
	Submissions int          `json:"submissions"`
	Candidates  int          `json:"candidates"`
	Events      []TernaEvent `json:"events"`
}

// TernaByPosition collects shortlist submissions per position. Positions
// without any submission in the row-set are omitted.
func TernaByPosition(rows []normalize.Row) []TernaSummary {
	opened := make(map[string]time.Time)
	for _, tl := range BuildTimelines(rows) {
		opened[tl.Position] = tl.OpenedAt
	}

	byPos := make(map[string]*TernaSummary)
	for _, r := range rows {
		if r.TernaCandidates <= 0 || r.Position == "" {
			continue
		}
		s, ok := byPos[r.Position]
		if !ok {
			s = &TernaSummary{Position: r.Position}
			byPos[r.Position] = s
		}
		s.Submissions++
		s.Candidates += r.TernaCandidates
		s.Events = append(s.Events, TernaEvent{
			Date:              r.Date,
			BusinessDayOffset: BusinessDaysBetween(opened[r.Position], r.Date),
			Candidates:        r.TernaCandidates,
		})
	}

	out := make([]TernaSummary, 0, len(byPos))
	for _, s := range byPos {
		sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].Date.Before(s.Events[j].Date) })
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

package report

import (
	"sort"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// DailyFlow is one day's candidate movement over the filtered window.
type DailyFlow struct {
	Date   time.Time `json:"date"`
	New    int       `json:"new"`
	Viable int       `json:"viable"`
	Hired  int       `json:"hired"`
}

// DailyFlowSeries sums new, viable and hired candidates per date, sorted by
// date ascending.
func DailyFlowSeries(rows []normalize.Row) []DailyFlow {
	byDate := make(map[time.Time]*DailyFlow)
	for _, r := range rows {
		f, ok := byDate[r.Date]
		if !ok {
			f = &DailyFlow{Date: r.Date}
			byDate[r.Date] = f
		}
		f.New += r.NewCandidates
		f.Viable += r.ViableCandidates
		f.Hired += r.Hired
	}
	out := make([]DailyFlow, 0, len(byDate))
	for _, f := range byDate {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// DailyGoals are the sourcing targets per working day.
type DailyGoals struct {
	Indeed int
	Direct int
}

// SourceTrendPoint is one day's sourcing volume next to the cumulative goal
// line for that day.
type SourceTrendPoint struct {
	Date       time.Time `json:"date"`
	Indeed     int       `json:"indeed"`
	Direct     int       `json:"direct"`
	IndeedGoal int       `json:"indeed_goal"`
	DirectGoal int       `json:"direct_goal"`
}

// SourceTrendSeries sums Indeed and direct-search sourcing per date and lays
// the accumulating daily goals alongside: the goal for the nth reported day
// is n times the daily target.
func SourceTrendSeries(rows []normalize.Row, goals DailyGoals) []SourceTrendPoint {
	type sums struct{ indeed, direct int }
	byDate := make(map[time.Time]*sums)
	for _, r := range rows {
		s, ok := byDate[r.Date]
		if !ok {
			s = &sums{}
			byDate[r.Date] = s
		}
		s.indeed += r.IndeedCandidates
		s.direct += r.DirectSearch
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]SourceTrendPoint, 0, len(dates))
	for i, d := range dates {
		s := byDate[d]
		out = append(out, SourceTrendPoint{
			Date:       d,
			Indeed:     s.indeed,
			Direct:     s.direct,
			IndeedGoal: goals.Indeed * (i + 1),
			DirectGoal: goals.Direct * (i + 1),
		})
	}
	return out
}

package server

import (
	"strings"
	"time"

	"github.com/wexpand/talentboard/internal/report"
)

// Header carries the page title strip and the filter selectors.
type Header struct {
	Start, End time.Time
	RowCount   int
	Position   string
	Positions  []string
	Period     report.Period
	Periods    []periodOption
}

type periodOption struct {
	Value report.Period
	Label string
}

func pageHeader(rep *report.Report) Header {
	return Header{
		Start:     rep.Start,
		End:       rep.End,
		RowCount:  rep.RowCount,
		Position:  rep.Position,
		Positions: append([]string{report.AllPositions}, rep.Positions...),
		Period:    rep.Period,
		Periods: []periodOption{
			{report.PeriodWeek, report.PeriodWeek.Label()},
			{report.PeriodMonth, report.PeriodMonth.Label()},
			{report.PeriodQuarter, report.PeriodQuarter.Label()},
			{report.PeriodYear, report.PeriodYear.Label()},
		},
	}
}

// Bar is one horizontal bar: Pct is the width relative to the largest value
// in the group, Class an optional style hook.
type Bar struct {
	Label string
	Value int
	Pct   int
	Class string
}

func bars(sums []report.StageSum) []Bar {
	max := 0
	for _, s := range sums {
		if s.Total > max {
			max = s.Total
		}
	}
	out := make([]Bar, 0, len(sums))
	for _, s := range sums {
		out = append(out, Bar{Label: s.Label, Value: s.Total, Pct: pct(s.Total, max)})
	}
	return out
}

func pct(v, max int) int {
	if max <= 0 {
		return 0
	}
	return v * 100 / max
}

// ElapsedRow is one line of the time-to-hire table with its color band.
type ElapsedRow struct {
	Position string
	OpenedAt time.Time
	Hired    bool
	Days     int
	Band     string
}

// WorkloadRow is one recruiter's load bar plus the position detail.
type WorkloadRow struct {
	Recruiter string
	Count     int
	Pct       int
	Level     string
	Positions string
}

// Overview is the view model for the overview page.
type Overview struct {
	Header    Header
	Velocity  report.Velocity
	Flow      []report.DailyFlow
	Funnel    []Bar
	Elapsed   []ElapsedRow
	Workloads []WorkloadRow
	Alerts    []report.Alert
}

func overviewView(rep *report.Report, policy report.Policy) Overview {
	elapsed := make([]ElapsedRow, 0, len(rep.Elapsed))
	for _, e := range rep.Elapsed {
		row := ElapsedRow{Position: e.Position, OpenedAt: e.OpenedAt, Hired: e.Hired}
		if e.Hired {
			row.Days = e.DaysToHire
			row.Band = policy.Elapsed.Classify(e.DaysToHire)
		}
		elapsed = append(elapsed, row)
	}

	maxLoad := 0
	for _, w := range rep.Workloads {
		if w.Count() > maxLoad {
			maxLoad = w.Count()
		}
	}
	workloads := make([]WorkloadRow, 0, len(rep.Workloads))
	for _, w := range rep.Workloads {
		workloads = append(workloads, WorkloadRow{
			Recruiter: w.Recruiter,
			Count:     w.Count(),
			Pct:       pct(w.Count(), maxLoad),
			Level:     w.Level,
			Positions: strings.Join(w.OpenPositions, ", "),
		})
	}

	return Overview{
		Header:    pageHeader(rep),
		Velocity:  rep.Velocity,
		Flow:      rep.Flow,
		Funnel:    bars(rep.Funnel),
		Elapsed:   elapsed,
		Workloads: workloads,
		Alerts:    rep.Alerts,
	}
}

// ConversionRow is one position's hire rate bar. Zero-rate positions are
// dropped here, at the presentation step.
type ConversionRow struct {
	Position string
	Viable   int
	Hired    int
	Rate     float64
	Pct      int
}

// Conversion is the view model for the evaluation and conversion page.
type Conversion struct {
	Header            Header
	SourceTrend       []report.SourceTrendPoint
	ScreeningDiscards []Bar
	ClientDiscards    []Bar
	Conversions       []ConversionRow
	Ternas            []report.TernaSummary
}

func conversionView(rep *report.Report) Conversion {
	conversions := make([]ConversionRow, 0, len(rep.Conversions))
	for _, c := range rep.Conversions {
		if c.Rate <= 0 {
			continue
		}
		conversions = append(conversions, ConversionRow{
			Position: c.Position,
			Viable:   c.Viable,
			Hired:    c.Hired,
			Rate:     c.Rate,
			Pct:      int(c.Rate),
		})
	}

	return Conversion{
		Header:            pageHeader(rep),
		SourceTrend:       rep.SourceTrend,
		ScreeningDiscards: bars(rep.ScreeningDiscards),
		ClientDiscards:    bars(rep.ClientDiscards),
		Conversions:       conversions,
		Ternas:            rep.Ternas,
	}
}

// Package report derives every dashboard aggregate from normalized rows.
// All functions are pure: they read a row snapshot and produce new values,
// never mutating shared state between passes.
package report

import (
	"errors"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// ErrNoData indicates the source produced no rows with valid dates, so no
// reporting window can be anchored.
var ErrNoData = errors.New("no rows with valid dates")

// Options select one evaluation pass: the reporting window, the position
// filter, the evaluation moment for business-day ages, and the policy.
type Options struct {
	Period   Period
	Position string
	Now      time.Time
	Policy   Policy
}

// Report is one full evaluation pass over a normalized row snapshot.
// Velocity, elapsed times, funnel, discards, conversions, ternas and the
// daily series reflect the filtered window; workload and sourcing alerts
// read the full row-set because they describe current state.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Period      Period    `json:"period"`
	Position    string    `json:"position"`

	Positions []string `json:"positions"`
	RowCount  int      `json:"row_count"`

	Velocity          Velocity          `json:"velocity"`
	Elapsed           []PositionElapsed `json:"elapsed"`
	Funnel            []StageSum        `json:"funnel"`
	ScreeningDiscards []StageSum        `json:"screening_discards"`
	ClientDiscards    []StageSum        `json:"client_discards"`
	Conversions       []Conversion      `json:"conversions"`
	Workloads         []Workload        `json:"workloads"`
	Alerts            []Alert           `json:"alerts"`
	Ternas            []TernaSummary    `json:"ternas"`
	Flow              []DailyFlow       `json:"flow"`
	SourceTrend       []SourceTrendPoint `json:"source_trend"`
}

// Build runs one evaluation pass. It is the single choke point for fatal
// conditions: ErrNoData and ErrInvalidDateRange abort the pass so callers
// show one message instead of a partial dashboard. Non-fatal conditions
// (missing columns, empty groups, zero denominators) have already degraded
// to zeros or omissions inside the aggregates.
func Build(rows []normalize.Row, opts Options) (*Report, error) {
	_, max, ok := DateRange(rows)
	if !ok {
		return nil, ErrNoData
	}

	start := opts.Period.Start(max)
	filtered, err := FilterRows(rows, start, max, opts.Position)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &Report{
		GeneratedAt: now,
		Start:       dateOnly(start),
		End:         max,
		Period:      opts.Period,
		Position:    opts.Position,

		Positions: Positions(rows),
		RowCount:  len(filtered),

		Velocity:          HiringVelocity(filtered, opts.Policy.SlowHireAfterDays),
		Elapsed:           ElapsedByPosition(filtered),
		Funnel:            SumStages(filtered, FunnelStages()),
		ScreeningDiscards: SumStages(filtered, ScreeningDiscardStages()),
		ClientDiscards:    SumStages(filtered, ClientDiscardStages()),
		Conversions:       ConversionByPosition(filtered),
		Workloads:         WorkloadByRecruiter(rows, opts.Policy.Load),
		Alerts:            EvaluateSourcing(rows, now, opts.Policy.Alerts),
		Ternas:            TernaByPosition(filtered),
		Flow:              DailyFlowSeries(filtered),
		SourceTrend:       SourceTrendSeries(filtered, opts.Policy.Goals),
	}, nil
}

package report

import (
	"errors"
	"testing"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// day parses an ISO date for fixtures.
func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

func testPolicy() Policy {
	return DefaultPolicy()
}

func TestBuildNoData(t *testing.T) {
	_, err := Build(nil, Options{Period: PeriodWeek, Policy: testPolicy()})
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestBuildUnknownPeriod(t *testing.T) {
	rows := []normalize.Row{{Date: day(t, "2026-02-06"), Position: "Backend"}}
	_, err := Build(rows, Options{Period: Period("fortnight"), Policy: testPolicy()})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestBuildWindowAnchoredAtLatestDate(t *testing.T) {
	rows := []normalize.Row{
		{Date: day(t, "2026-01-01"), Position: "Old", NewCandidates: 5},
		{Date: day(t, "2026-02-06"), Position: "Backend", NewCandidates: 3},
	}
	rep, err := Build(rows, Options{Period: PeriodWeek, Policy: testPolicy()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rep.End.Equal(day(t, "2026-02-06")) {
		t.Errorf("expected end anchored at latest data date, got %v", rep.End)
	}
	if rep.RowCount != 1 {
		t.Errorf("expected the January row outside the week window, got %d rows", rep.RowCount)
	}
}

func TestBuildEmptyAfterFilterReturnsEmptyCollections(t *testing.T) {
	rows := []normalize.Row{
		{Date: day(t, "2026-02-06"), Position: "Backend", Recruiter: "Ana", OpenState: "si", NewCandidates: 4},
	}
	rep, err := Build(rows, Options{Period: PeriodWeek, Position: "Nonexistent", Policy: testPolicy()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.RowCount != 0 {
		t.Errorf("expected 0 filtered rows, got %d", rep.RowCount)
	}
	if len(rep.Funnel) != 0 || len(rep.Conversions) != 0 || len(rep.Ternas) != 0 || len(rep.Flow) != 0 {
		t.Error("expected empty window aggregates")
	}
	if rep.Velocity.HasOpening {
		t.Error("expected no velocity opening for an empty window")
	}
	// Workload and alerts read the full row-set, not the window.
	if len(rep.Workloads) != 1 || len(rep.Alerts) != 1 {
		t.Errorf("expected current-state aggregates from the full set, got %d workloads, %d alerts",
			len(rep.Workloads), len(rep.Alerts))
	}
}

func TestBuildPositionsListsFullSet(t *testing.T) {
	rows := []normalize.Row{
		{Date: day(t, "2026-01-01"), Position: "Old"},
		{Date: day(t, "2026-02-06"), Position: "Backend"},
	}
	rep, err := Build(rows, Options{Period: PeriodWeek, Policy: testPolicy()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Positions) != 2 {
		t.Errorf("selector should list every position in the data, got %v", rep.Positions)
	}
}

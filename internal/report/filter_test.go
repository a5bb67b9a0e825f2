package report

import (
	"errors"
	"testing"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

func filterFixture(t *testing.T) []normalize.Row {
	t.Helper()
	return []normalize.Row{
		{Date: day(t, "2026-01-15"), Position: "Backend"},
		{Date: day(t, "2026-02-01"), Position: "Backend"},
		{Date: day(t, "2026-02-03"), Position: "QA"},
		{Date: day(t, "2026-02-10"), Position: "Backend"},
	}
}

func TestFilterRowsInclusiveBounds(t *testing.T) {
	rows := filterFixture(t)
	got, err := FilterRows(rows, day(t, "2026-02-01"), day(t, "2026-02-10"), AllPositions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	for _, r := range got {
		if r.Date.Before(day(t, "2026-02-01")) || r.Date.After(day(t, "2026-02-10")) {
			t.Errorf("row %v outside bounds", r.Date)
		}
	}
}

func TestFilterRowsIdempotent(t *testing.T) {
	rows := filterFixture(t)
	start, end := day(t, "2026-02-01"), day(t, "2026-02-10")
	once, err := FilterRows(rows, start, end, AllPositions)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := FilterRows(once, start, end, AllPositions)
	if err != nil {
		t.Fatal(err)
	}
	if len(once) != len(twice) {
		t.Errorf("filtering is not idempotent: %d then %d rows", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Date.Equal(twice[i].Date) {
			t.Errorf("row %d changed between passes", i)
		}
	}
}

func TestFilterRowsByPosition(t *testing.T) {
	rows := filterFixture(t)
	got, err := FilterRows(rows, day(t, "2026-01-01"), day(t, "2026-02-28"), "QA")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Position != "QA" {
		t.Errorf("expected single QA row, got %v", got)
	}
}

func TestFilterRowsInvalidRange(t *testing.T) {
	rows := filterFixture(t)
	if _, err := FilterRows(rows, time.Time{}, day(t, "2026-02-10"), AllPositions); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for zero start, got %v", err)
	}
	if _, err := FilterRows(rows, day(t, "2026-02-01"), time.Time{}, AllPositions); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange for zero end, got %v", err)
	}
}

func TestPeriodStart(t *testing.T) {
	end := day(t, "2026-02-10")
	tests := []struct {
		period Period
		want   string
	}{
		{PeriodWeek, "2026-02-03"},
		{PeriodMonth, "2026-01-10"},
		{PeriodQuarter, "2025-11-10"},
		{PeriodYear, "2025-02-10"},
	}
	for _, tt := range tests {
		if got := tt.period.Start(end); !got.Equal(day(t, tt.want)) {
			t.Errorf("%s.Start = %v, want %s", tt.period, got, tt.want)
		}
	}
	if !Period("bogus").Start(end).IsZero() {
		t.Error("unknown period should yield zero start")
	}
}

func TestParsePeriod(t *testing.T) {
	if p, ok := ParsePeriod("quarter"); !ok || p != PeriodQuarter {
		t.Errorf("expected quarter, got %v %v", p, ok)
	}
	if _, ok := ParsePeriod("fortnight"); ok {
		t.Error("expected unknown period to fail")
	}
}

func TestPositionsSortedDistinct(t *testing.T) {
	rows := []normalize.Row{
		{Date: day(t, "2026-02-01"), Position: "QA"},
		{Date: day(t, "2026-02-02"), Position: "Backend"},
		{Date: day(t, "2026-02-03"), Position: "QA"},
		{Date: day(t, "2026-02-04"), Position: ""},
	}
	got := Positions(rows)
	if len(got) != 2 || got[0] != "Backend" || got[1] != "QA" {
		t.Errorf("expected [Backend QA], got %v", got)
	}
}

func TestDateRange(t *testing.T) {
	rows := filterFixture(t)
	min, max, ok := DateRange(rows)
	if !ok || !min.Equal(day(t, "2026-01-15")) || !max.Equal(day(t, "2026-02-10")) {
		t.Errorf("unexpected range %v..%v %v", min, max, ok)
	}
	if _, _, ok := DateRange(nil); ok {
		t.Error("empty set should report no range")
	}
}

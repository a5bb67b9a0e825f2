package report

import (
	"testing"

	"github.com/wexpand/talentboard/internal/normalize"
)

func TestTernaByPosition(t *testing.T) {
	rows := []normalize.Row{
		{Date: day(t, "2026-02-02"), Position: "Backend"},
		{Date: day(t, "2026-02-06"), Position: "Backend", TernaCandidates: 3},
		{Date: day(t, "2026-02-04"), Position: "Backend", TernaCandidates: 2},
		{Date: day(t, "2026-02-03"), Position: "QA"},
	}
	got := TernaByPosition(rows)
	if len(got) != 1 {
		t.Fatalf("positions without submissions must be omitted, got %v", got)
	}

	s := got[0]
	if s.Position != "Backend" || s.Submissions != 2 || s.Candidates != 5 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if len(s.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(s.Events))
	}
	if !s.Events[0].Date.Before(s.Events[1].Date) {
		t.Error("events must be ordered by date ascending")
	}
	// Opened Monday Feb 2: Wednesday is 2 business days in, Friday is 4.
	if s.Events[0].BusinessDayOffset != 2 {
		t.Errorf("expected offset 2 for the Wednesday event, got %d", s.Events[0].BusinessDayOffset)
	}
	if s.Events[1].BusinessDayOffset != 4 {
		t.Errorf("expected offset 4 for the Friday event, got %d", s.Events[1].BusinessDayOffset)
	}
}

func TestTernaByPositionEmpty(t *testing.T) {
	rows := []normalize.Row{
		{Date: day(t, "2026-02-02"), Position: "Backend"},
	}
	if got := TernaByPosition(rows); len(got) != 0 {
		t.Errorf("expected no summaries, got %v", got)
	}
}

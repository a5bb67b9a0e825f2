package normalize

import (
	"testing"
	"time"

	"github.com/wexpand/talentboard/internal/source"
)

func TestNormalizeDropsInvalidDates(t *testing.T) {
	rows := Normalize([]source.Record{
		{colDate: "3/2/2026", colPosition: "Backend"},
		{colDate: "not a date", colPosition: "Dropped"},
		{colDate: "", colPosition: "Also dropped"},
		{colPosition: "No date column"},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Position != "Backend" {
		t.Errorf("expected Backend, got %q", rows[0].Position)
	}
}

func TestParseDateDayFirst(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"3/2/2026", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), true},
		{"03/02/2026", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), true},
		{"3-2-2026", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), true},
		{"2026-02-03", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), true},
		{" 3/2/2026 ", time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), true},
		{"31/12/2025", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"2026", time.Time{}, false},
		{"soon", time.Time{}, false},
		{"", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCountSentinelsAndFailures(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 7},
		{" 7 ", 7},
		{"7.0", 7},
		{"1,200", 1200},
		{"<5", 0},
		{"N/A", 0},
		{"—", 0},
		{"-", 0},
		{"", 0},
		{"tbd", 0},
	}
	for _, tt := range tests {
		if got := parseCount(tt.in); got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCoercesCounters(t *testing.T) {
	rows := Normalize([]source.Record{{
		colDate:          "3/2/2026",
		colPosition:      "Backend",
		colNewCandidates: "12",
		colIndeed:        "<5",
		colViable:        "x",
		colHired:         "2",
	}})
	r := rows[0]
	if r.NewCandidates != 12 || r.IndeedCandidates != 0 || r.ViableCandidates != 0 || r.Hired != 2 {
		t.Errorf("unexpected counters: %+v", r)
	}
	// colDirectSearch absent entirely: defaults to zero, not an error.
	if r.DirectSearch != 0 {
		t.Errorf("missing column should be zero, got %d", r.DirectSearch)
	}
}

func TestNormalizeOpenState(t *testing.T) {
	tests := []struct {
		in     string
		closed bool
	}{
		{"no", true},
		{" NO ", true},
		{"No", true},
		{"si", false},
		{"", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		rows := Normalize([]source.Record{{
			colDate: "3/2/2026", colPosition: "X", colOpen: tt.in,
		}})
		if got := rows[0].Closed(); got != tt.closed {
			t.Errorf("Closed() for open field %q = %v, want %v", tt.in, got, tt.closed)
		}
	}
}

func TestNormalizeTrimsIdentity(t *testing.T) {
	rows := Normalize([]source.Record{{
		colDate:      "3/2/2026",
		colPosition:  "  Backend Engineer  ",
		colRecruiter: "  Ana  ",
	}})
	if rows[0].Position != "Backend Engineer" {
		t.Errorf("position not trimmed: %q", rows[0].Position)
	}
	if rows[0].Recruiter != "Ana" {
		t.Errorf("recruiter not trimmed: %q", rows[0].Recruiter)
	}
}

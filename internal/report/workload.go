package report

import (
	"sort"

	"github.com/wexpand/talentboard/internal/normalize"
)

// Load levels for a recruiter's count of open positions.
const (
	LoadNormal   = "normal"
	LoadElevated = "elevated"
	LoadHigh     = "high"
)

// LoadBands sets the workload classification cutoffs: counts above High are
// high, counts at or above ElevatedAt are elevated, the rest normal.
type LoadBands struct {
	ElevatedAt int
	HighAbove  int
}

// Workload is one recruiter's current open-position load.
type Workload struct {
	Recruiter     string   `json:"recruiter"`
	OpenPositions []string `json:"open_positions"`
	Level         string   `json:"level"`
}

// Count returns the number of open positions assigned to the recruiter.
func (w Workload) Count() int { return len(w.OpenPositions) }

// WorkloadByRecruiter reports, per recruiter, the open positions whose
// latest status row names them. It reads the FULL row-set: workload reflects
// current state, not the selected reporting window. A position counts as
// open unless its latest row explicitly says "no", and appears in exactly
// one recruiter's list.
func WorkloadByRecruiter(rows []normalize.Row, bands LoadBands) []Workload {
	byRecruiter := make(map[string][]string)
	for _, tl := range BuildTimelines(rows) {
		if !tl.Open {
			continue
		}
		rec := tl.Latest.Recruiter
		byRecruiter[rec] = append(byRecruiter[rec], tl.Position)
	}

	out := make([]Workload, 0, len(byRecruiter))
	for rec, positions := range byRecruiter {
		sort.Strings(positions)
		out = append(out, Workload{
			Recruiter:     rec,
			OpenPositions: positions,
			Level:         bands.classify(len(positions)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Recruiter < out[j].Recruiter })
	return out
}

func (b LoadBands) classify(count int) string {
	switch {
	case count > b.HighAbove:
		return LoadHigh
	case count >= b.ElevatedAt:
		return LoadElevated
	default:
		return LoadNormal
	}
}

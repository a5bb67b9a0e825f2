package report

import (
	"sort"

	"github.com/wexpand/talentboard/internal/normalize"
)

// Conversion is the per-position viable-to-hired ratio.
type Conversion struct {
	Position string  `json:"position"`
	New      int     `json:"new"`
	Viable   int     `json:"viable"`
	Hired    int     `json:"hired"`
	Rate     float64 `json:"rate"`
}

// ConversionByPosition sums viable and hired candidates per position and
// computes the hire rate as hired/viable*100. A position with zero viable
// candidates gets rate 0 rather than a division error; dropping zero-rate
// positions is the presentation layer's call, not done here.
func ConversionByPosition(rows []normalize.Row) []Conversion {
	byPos := make(map[string]*Conversion)
	for _, r := range rows {
		if r.Position == "" {
			continue
		}
		c, ok := byPos[r.Position]
		if !ok {
			c = &Conversion{Position: r.Position}
			byPos[r.Position] = c
		}
		c.New += r.NewCandidates
		c.Viable += r.ViableCandidates
		c.Hired += r.Hired
	}

	out := make([]Conversion, 0, len(byPos))
	for _, c := range byPos {
		if c.Viable > 0 {
			c.Rate = float64(c.Hired) / float64(c.Viable) * 100
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

package report

import "github.com/wexpand/talentboard/internal/normalize"

// Stage binds a display label to the counter it sums.
type Stage struct {
	Label string
	Value func(normalize.Row) int
}

// StageSum is one summed stage. Stages that sum to zero are dropped before
// reporting: a discard reason with no occurrences is omitted, not shown as 0.
type StageSum struct {
	Label string `json:"label"`
	Total int    `json:"total"`
}

// SumStages sums each stage's counter over the row subset, preserving stage
// order and dropping zero-valued labels. A counter absent from the source
// normalizes to zero per row, so a missing column simply drops its label.
func SumStages(rows []normalize.Row, stages []Stage) []StageSum {
	out := make([]StageSum, 0, len(stages))
	for _, s := range stages {
		total := 0
		for _, r := range rows {
			total += s.Value(r)
		}
		if total == 0 {
			continue
		}
		out = append(out, StageSum{Label: s.Label, Total: total})
	}
	return out
}

// FunnelStages is the recruiting funnel, widest stage first.
func FunnelStages() []Stage {
	return []Stage{
		{"Indeed", func(r normalize.Row) int { return r.IndeedCandidates }},
		{"RCRM", func(r normalize.Row) int { return r.CRMCandidates }},
		{"Viable", func(r normalize.Row) int { return r.ViableCandidates }},
		{"Hired", func(r normalize.Row) int { return r.Hired }},
	}
}

// ScreeningDiscardStages breaks down recruiter-stage rejections by reason.
func ScreeningDiscardStages() []Stage {
	return []Stage{
		{"Hard skills", func(r normalize.Row) int { return r.RejectHardSkills }},
		{"Out of budget", func(r normalize.Row) int { return r.RejectBudget }},
		{"Soft skills", func(r normalize.Row) int { return r.RejectSoftSkills }},
		{"English level", func(r normalize.Row) int { return r.RejectEnglish }},
		{"No-show", func(r normalize.Row) int { return r.RejectNoShow }},
		{"Location", func(r normalize.Row) int { return r.RejectLocation }},
	}
}

// ClientDiscardStages breaks down client-stage rejections by reason.
func ClientDiscardStages() []Stage {
	return []Stage{
		{"Personal chemistry", func(r normalize.Row) int { return r.ClientChemistry }},
		{"Expertise inconsistencies", func(r normalize.Row) int { return r.ClientInconsistency }},
		{"Profile mismatch", func(r normalize.Row) int { return r.ClientProfile }},
		{"English level", func(r normalize.Row) int { return r.ClientEnglish }},
		{"Overqualified", func(r normalize.Row) int { return r.ClientOverqualified }},
	}
}

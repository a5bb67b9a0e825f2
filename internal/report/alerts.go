package report

import (
	"fmt"
	"time"

	"github.com/wexpand/talentboard/internal/normalize"
)

// Alert rule identifiers, in evaluation order.
const (
	RuleIndeed    = "indeed"
	RuleMessaging = "messaging"
	RuleLinkedIn  = "linkedin"
	RuleCritical  = "critical"
	RuleOK        = "ok"
)

// AlertThresholds hold the sourcing rule cutoffs. Floors are candidate
// counts a position must reach; Days are the business-day ages at which
// each rule starts to apply.
type AlertThresholds struct {
	IndeedDays     int
	IndeedFloor    int
	MessagingDays  int
	MessagingFloor int
	LinkedInDays   int
	LinkedInFloor  int
	CriticalDays   int
	CriticalTarget int
}

// DefaultAlertThresholds returns the recruiting team's standing rule table.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		IndeedDays:     1,
		IndeedFloor:    30,
		MessagingDays:  3,
		MessagingFloor: 50,
		LinkedInDays:   4,
		LinkedInFloor:  60,
		CriticalDays:   5,
		CriticalTarget: 80,
	}
}

// SourcingStats are the per-position inputs to the alert rules.
type SourcingStats struct {
	Position         string
	BusinessDaysOpen int

	// IndeedAtOpen is the Indeed counter on the position's first recorded
	// row: a snapshot of initial sourcing volume, not a sum.
	IndeedAtOpen int

	// NewCandidates is the cumulative new-candidate sum across all rows.
	NewCandidates int
}

// Total is the candidate volume the later rules measure against.
func (s SourcingStats) Total() int { return s.IndeedAtOpen + s.NewCandidates }

// Alert is the single sourcing classification for one open position.
type Alert struct {
	Position         string `json:"position"`
	BusinessDaysOpen int    `json:"business_days_open"`
	TotalCandidates  int    `json:"total_candidates"`
	Rule             string `json:"rule"`
	Message          string `json:"message"`
	OK               bool   `json:"ok"`
}

// alertRule pairs a predicate with its message so the rule table stays
// auditable and testable rule by rule.
type alertRule struct {
	name    string
	matches func(SourcingStats) bool
	message func(SourcingStats) string
}

// sourcingRules builds the ordered rule table. Evaluation is strictly
// first-match-wins, top to bottom; the thresholds are not monotonic across
// rules (a position can clear the Indeed floor yet still land in critical
// at day five), and that literal ordering is the agreed policy.
func sourcingRules(t AlertThresholds) []alertRule {
	return []alertRule{
		{
			name: RuleIndeed,
			matches: func(s SourcingStats) bool {
				return s.BusinessDaysOpen >= t.IndeedDays && s.IndeedAtOpen < t.IndeedFloor
			},
			message: func(SourcingStats) string { return "Launch an Indeed campaign" },
		},
		{
			name: RuleMessaging,
			matches: func(s SourcingStats) bool {
				return s.BusinessDaysOpen >= t.MessagingDays && s.Total() < t.MessagingFloor
			},
			message: func(SourcingStats) string { return "Recommend a messaging outreach campaign" },
		},
		{
			name: RuleLinkedIn,
			matches: func(s SourcingStats) bool {
				return s.BusinessDaysOpen >= t.LinkedInDays && s.Total() < t.LinkedInFloor
			},
			message: func(SourcingStats) string { return "Need a LinkedIn campaign" },
		},
		{
			name: RuleCritical,
			matches: func(s SourcingStats) bool {
				return s.BusinessDaysOpen >= t.CriticalDays && s.Total() < t.CriticalTarget
			},
			message: func(s SourcingStats) string {
				return fmt.Sprintf("Critical: %d candidates so far, %d short of target. Start direct sourcing.",
					s.Total(), t.CriticalTarget-s.Total())
			},
		},
	}
}

// EvaluateSourcing classifies every open position with exactly one alert
// label. Open positions follow the workload definition: latest status row
// not explicitly "no". Age is business days from opening to now, half-open.
func EvaluateSourcing(rows []normalize.Row, now time.Time, t AlertThresholds) []Alert {
	newByPos := make(map[string]int)
	for _, r := range rows {
		newByPos[r.Position] += r.NewCandidates
	}

	rules := sourcingRules(t)
	var alerts []Alert
	for _, tl := range BuildTimelines(rows) {
		if !tl.Open {
			continue
		}
		stats := SourcingStats{
			Position:         tl.Position,
			BusinessDaysOpen: BusinessDaysBetween(tl.OpenedAt, now),
			IndeedAtOpen:     tl.First.IndeedCandidates,
			NewCandidates:    newByPos[tl.Position],
		}
		alerts = append(alerts, classify(stats, rules))
	}
	return alerts
}

func classify(s SourcingStats, rules []alertRule) Alert {
	a := Alert{
		Position:         s.Position,
		BusinessDaysOpen: s.BusinessDaysOpen,
		TotalCandidates:  s.Total(),
	}
	for _, rule := range rules {
		if rule.matches(s) {
			a.Rule = rule.name
			a.Message = rule.message(s)
			return a
		}
	}
	a.Rule = RuleOK
	a.Message = "No alerts: sourcing on track"
	a.OK = true
	return a
}

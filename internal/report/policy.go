package report

import "github.com/wexpand/talentboard/internal/config"

// Policy gathers every configurable threshold a pass needs. Keeping it one
// value means aggregates never reach back into config at evaluation time.
type Policy struct {
	SlowHireAfterDays int
	Elapsed           ElapsedBands
	Load              LoadBands
	Alerts            AlertThresholds
	Goals             DailyGoals
}

// PolicyFrom maps the loaded configuration onto a Policy.
func PolicyFrom(cfg *config.Config) Policy {
	return Policy{
		SlowHireAfterDays: cfg.Velocity.SlowAfterDays,
		Elapsed: ElapsedBands{
			GoodUpTo: cfg.Velocity.GoodUpToDays,
			WarnUpTo: cfg.Velocity.WarnUpToDays,
		},
		Load: LoadBands{
			ElevatedAt: cfg.Workload.ElevatedAt,
			HighAbove:  cfg.Workload.HighAbove,
		},
		Alerts: AlertThresholds{
			IndeedDays:     cfg.Sourcing.IndeedAfterDays,
			IndeedFloor:    cfg.Sourcing.IndeedFloor,
			MessagingDays:  cfg.Sourcing.MessagingAfterDays,
			MessagingFloor: cfg.Sourcing.MessagingFloor,
			LinkedInDays:   cfg.Sourcing.LinkedInAfterDays,
			LinkedInFloor:  cfg.Sourcing.LinkedInFloor,
			CriticalDays:   cfg.Sourcing.CriticalAfterDays,
			CriticalTarget: cfg.Sourcing.CriticalTarget,
		},
		Goals: DailyGoals{
			Indeed: cfg.Goals.IndeedPerDay,
			Direct: cfg.Goals.DirectPerDay,
		},
	}
}

// DefaultPolicy is the policy used when no config is on hand (tests, the
// check command).
func DefaultPolicy() Policy {
	return PolicyFrom(config.Default())
}

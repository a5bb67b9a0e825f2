// Package normalize turns raw sheet records into typed, immutable rows.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/wexpand/talentboard/internal/source"
)

// Sentinel tokens the sheet uses for "no value" or "too few to disclose".
// All of them count as zero.
var sentinels = map[string]struct{}{
	"":    {},
	"-":   {},
	"—":   {},
	"<5":  {},
	"N/A": {},
}

// Date layouts the sheet has been observed to use. Day-first throughout;
// the ISO forms show up when someone edits the sheet by hand.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// Normalize converts raw records into typed rows. Records whose date cell
// cannot be parsed are dropped and never reconsidered. The input is not
// modified.
func Normalize(records []source.Record) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		date, ok := ParseDate(rec[colDate])
		if !ok {
			continue
		}
		rows = append(rows, Row{
			Date:      date,
			Position:  strings.TrimSpace(rec[colPosition]),
			Recruiter: strings.TrimSpace(rec[colRecruiter]),
			OpenState: strings.ToLower(strings.TrimSpace(rec[colOpen])),

			NewCandidates:    parseCount(rec[colNewCandidates]),
			IndeedCandidates: parseCount(rec[colIndeed]),
			DirectSearch:     parseCount(rec[colDirectSearch]),
			CRMCandidates:    parseCount(rec[colCRM]),
			Assigned:         parseCount(rec[colAssigned]),
			ViableCandidates: parseCount(rec[colViable]),
			TernaCandidates:  parseCount(rec[colTerna]),

			CVMust:       parseCount(rec[colCVMust]),
			CVHardSkills: parseCount(rec[colCVHardSkills]),
			CVSoftSkills: parseCount(rec[colCVSoftSkills]),

			RejectHardSkills: parseCount(rec[colRejectHardSkills]),
			RejectSoftSkills: parseCount(rec[colRejectSoftSkills]),
			RejectBudget:     parseCount(rec[colRejectBudget]),
			RejectEnglish:    parseCount(rec[colRejectEnglish]),
			RejectNoShow:     parseCount(rec[colRejectNoShow]),
			RejectLocation:   parseCount(rec[colRejectLocation]),

			ClientChemistry:     parseCount(rec[colClientChemistry]),
			ClientInconsistency: parseCount(rec[colClientInconsistency]),
			ClientProfile:       parseCount(rec[colClientProfile]),
			ClientEnglish:       parseCount(rec[colClientEnglish]),
			ClientOverqualified: parseCount(rec[colClientOverqualified]),

			Hired: parseCount(rec[colHired]),
		})
	}
	return rows
}

// ParseDate parses a sheet date cell, day-first. Returns false when the cell
// is blank or does not match any known layout.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseCount coerces a counter cell to an int. Sentinels and parse failures
// are zero, matching how the sheet mixes blanks, dashes and "<5" markers
// into otherwise numeric columns.
func parseCount(s string) int {
	s = strings.TrimSpace(s)
	if _, isSentinel := sentinels[s]; isSentinel {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return int(v)
}

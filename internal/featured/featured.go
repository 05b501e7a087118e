// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package featured marks highlighted publications by title pattern.
package featured

import (
	"strings"

	"github.com/pdiddy/pubstats/pkg/types"
)

// DefaultPatterns are the titles featured when none are configured.
var DefaultPatterns = []string{
	"Trustworthy scientific inference",
	"A Deep, High-Angular Resolution 3D Dust Map",
	"ChronoFlow: A Data-driven Model for Gyrochronology",
}

// Match records which publication a pattern flagged.
type Match struct {
	Pattern string
	Index   int
	Title   string
}

// FlagReport lists the patterns that matched and those that did not.
type FlagReport struct {
	Matched []Match
	Missing []string
}

// Flag returns a copy of pubs where, for each pattern, the first
// publication whose title contains it (case-insensitively) is featured.
// Blank patterns are ignored. Existing flags are preserved.
func Flag(pubs []types.Publication, patterns []string) ([]types.Publication, FlagReport) {
	out := clone(pubs)
	var report FlagReport
	for _, pattern := range patterns {
		needle := strings.ToLower(strings.TrimSpace(pattern))
		if needle == "" {
			continue
		}
		found := false
		for i := range out {
			if strings.Contains(strings.ToLower(out[i].Title), needle) {
				out[i].Featured = true
				report.Matched = append(report.Matched, Match{Pattern: pattern, Index: i, Title: out[i].Title})
				found = true
				break
			}
		}
		if !found {
			report.Missing = append(report.Missing, pattern)
		}
	}
	return out, report
}

// Clear returns a copy of pubs with every featured flag removed, and the
// number of flags that were set.
func Clear(pubs []types.Publication) ([]types.Publication, int) {
	out := clone(pubs)
	cleared := 0
	for i := range out {
		if out[i].Featured {
			out[i].Featured = false
			cleared++
		}
	}
	return out, cleared
}

func clone(pubs []types.Publication) []types.Publication {
	out := make([]types.Publication, len(pubs))
	for i, p := range pubs {
		out[i] = p.Clone()
	}
	return out
}

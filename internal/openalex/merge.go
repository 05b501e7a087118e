// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package openalex

import (
	"strings"
	"unicode"

	"github.com/pdiddy/pubstats/pkg/types"
)

// MergeSummary counts the outcome of a merge.
type MergeSummary struct {
	Updated   int
	Added     int
	Unchanged int
}

// Merge folds fetched works into existing. A fetched work matches an
// existing entry by DOI, then by normalized title. Matches refresh the
// citation count and fill identifiers and abstract that were empty;
// curated fields (authorship tags, area probabilities, featured) are
// never touched. Unmatched works are appended. existing is not modified.
func Merge(existing, fetched []types.Publication) ([]types.Publication, MergeSummary) {
	out := make([]types.Publication, len(existing))
	byDOI := make(map[string]int)
	byTitle := make(map[string]int)
	for i, p := range existing {
		out[i] = p.Clone()
		if p.DOI != "" {
			byDOI[strings.ToLower(p.DOI)] = i
		}
		if t := normalizeTitle(p.Title); t != "" {
			byTitle[t] = i
		}
	}

	var summary MergeSummary
	for _, f := range fetched {
		i, ok := -1, false
		if f.DOI != "" {
			i, ok = byDOI[strings.ToLower(f.DOI)]
		}
		if !ok {
			i, ok = byTitle[normalizeTitle(f.Title)]
		}
		if !ok {
			out = append(out, f.Clone())
			idx := len(out) - 1
			if f.DOI != "" {
				byDOI[strings.ToLower(f.DOI)] = idx
			}
			byTitle[normalizeTitle(f.Title)] = idx
			summary.Added++
			continue
		}

		if refresh(&out[i], f) {
			summary.Updated++
		} else {
			summary.Unchanged++
		}
	}
	return out, summary
}

// refresh copies fetched metadata into p and reports whether p changed.
func refresh(p *types.Publication, f types.Publication) bool {
	changed := false
	if f.Citations > p.Citations {
		p.Citations = f.Citations
		changed = true
	}
	fill := func(dst *string, src string) {
		if *dst == "" && src != "" {
			*dst = src
			changed = true
		}
	}
	fill(&p.DOI, f.DOI)
	fill(&p.Abstract, f.Abstract)
	fill(&p.Journal, f.Journal)
	fill(&p.ArxivID, f.ArxivID)
	fill(&p.OpenAlex, f.OpenAlex)
	if p.Year == nil && f.Year != nil {
		y := *f.Year
		p.Year = &y
		changed = true
	}
	return changed
}

// normalizeTitle lower-cases a title and keeps only letters and digits,
// so punctuation and brace differences do not prevent a match.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"sort"

	"github.com/pdiddy/pubstats/pkg/types"
)

// timelineStart is the first publication year counted in the citations
// timeline.
const timelineStart = 2000

// Summary holds author-level metrics over the full publication list.
type Summary struct {
	TotalPapers                int            `json:"totalPapers" yaml:"totalPapers"`
	TotalCitations             int            `json:"totalCitations" yaml:"totalCitations"`
	HIndex                     int            `json:"hIndex" yaml:"hIndex"`
	I10Index                   int            `json:"i10Index" yaml:"i10Index"`
	CitationsByPublicationYear map[string]int `json:"citationsByPublicationYear" yaml:"citationsByPublicationYear"`
}

// Summarize computes paper and citation totals, h-index and i10-index.
func Summarize(pubs []types.Publication) Summary {
	s := Summary{
		TotalPapers:                len(pubs),
		CitationsByPublicationYear: make(map[string]int),
	}
	counts := make([]int, 0, len(pubs))
	for _, p := range pubs {
		c := p.Citations
		if c < 0 {
			c = 0
		}
		s.TotalCitations += c
		counts = append(counts, c)
		if c >= 10 {
			s.I10Index++
		}
		if y, ok := p.YearValue(); ok && y >= timelineStart {
			s.CitationsByPublicationYear[p.YearKey()] += c
		}
	}
	s.HIndex = HIndex(counts)
	return s
}

// HIndex returns the largest h such that h papers have at least h
// citations each.
func HIndex(citations []int) int {
	sorted := append([]int(nil), citations...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	h := 0
	for i, c := range sorted {
		if c < i+1 {
			break
		}
		h = i + 1
	}
	return h
}

// Metrics converts s into the document's metrics block.
func (s Summary) Metrics(sources []string, updated string) *types.Metrics {
	return &types.Metrics{
		TotalPapers:                s.TotalPapers,
		TotalCitations:             s.TotalCitations,
		HIndex:                     s.HIndex,
		I10Index:                   s.I10Index,
		CitationsByPublicationYear: s.CitationsByPublicationYear,
		Sources:                    sources,
		LastUpdated:                updated,
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate classifies a publication list and derives the counts
// and chart series shown on the portfolio's statistics dashboard. Every
// call builds a fresh Result; nothing is updated incrementally and inputs
// are never modified.
package aggregate

import (
	"time"

	"github.com/pdiddy/pubstats/internal/classify"
	"github.com/pdiddy/pubstats/pkg/types"
)

// recentWindow is the number of calendar years, including the current
// one, counted as "last five years".
const recentWindow = 5

// YearCounts holds per-category publication counts for one year bucket.
type YearCounts struct {
	Primary               int `json:"primary" yaml:"primary"`
	Student               int `json:"student" yaml:"student"`
	NonStudentSignificant int `json:"nonStudentSignificant" yaml:"nonStudentSignificant"`
	Other                 int `json:"other" yaml:"other"`
	Total                 int `json:"total" yaml:"total"`
}

func (c *YearCounts) add(cat classify.Category) {
	switch cat {
	case classify.Primary:
		c.Primary++
	case classify.Student:
		c.Student++
	case classify.NonStudentSignificant:
		c.NonStudentSignificant++
	default:
		c.Other++
	}
	c.Total++
}

// Get returns the count for cat.
func (c YearCounts) Get(cat classify.Category) int {
	switch cat {
	case classify.Primary:
		return c.Primary
	case classify.Student:
		return c.Student
	case classify.NonStudentSignificant:
		return c.NonStudentSignificant
	default:
		return c.Other
	}
}

// AreaWeight holds the (possibly fractional) publication weight of one
// research area.
type AreaWeight struct {
	AllTime       float64 `json:"allTime" yaml:"allTime"`
	LastFiveYears float64 `json:"lastFiveYears" yaml:"lastFiveYears"`
}

// Result is the output of Categorize.
type Result struct {
	All                   []types.Publication `json:"all"`
	Primary               []types.Publication `json:"primary"`
	Student               []types.Publication `json:"student"`
	NonStudentSignificant []types.Publication `json:"nonStudentSignificant"`
	Other                 []types.Publication `json:"other"`

	// ByYear is keyed by decimal year or types.UnknownYear.
	ByYear map[string]YearCounts `json:"byYear"`

	// ByArea always holds the canonical areas; curated probabilities may
	// add others.
	ByArea map[string]AreaWeight `json:"byArea"`
}

// Partition returns the publications in cat.
func (r *Result) Partition(cat classify.Category) []types.Publication {
	switch cat {
	case classify.Primary:
		return r.Primary
	case classify.Student:
		return r.Student
	case classify.NonStudentSignificant:
		return r.NonStudentSignificant
	default:
		return r.Other
	}
}

func (r *Result) appendTo(cat classify.Category, p types.Publication) {
	switch cat {
	case classify.Primary:
		r.Primary = append(r.Primary, p)
	case classify.Student:
		r.Student = append(r.Student, p)
	case classify.NonStudentSignificant:
		r.NonStudentSignificant = append(r.NonStudentSignificant, p)
	default:
		r.Other = append(r.Other, p)
	}
}

// Options controls classification. The zero value uses the default owner
// spellings, the default keyword table and the current calendar year.
type Options struct {
	// OwnerNames are the owner's byline spellings.
	OwnerNames []string

	// Keywords replaces the research-area keyword table when non-nil.
	Keywords []types.KeywordRule

	// DefaultArea is the keyword fallback's default arm.
	DefaultArea string

	// CurrentYear anchors the last-five-years window. Zero uses the
	// current calendar year.
	CurrentYear int
}

func (o Options) currentYear() int {
	if o.CurrentYear > 0 {
		return o.CurrentYear
	}
	return time.Now().Year()
}

// Categorize assigns each publication to exactly one authorship partition
// and attributes it to research areas. Missing fields degrade to their
// documented defaults; there is no error path.
func Categorize(pubs []types.Publication, roster []types.Mentee, opts Options) *Result {
	authorship := classify.NewAuthorship(opts.OwnerNames, types.FamilyNames(roster))
	keywords := classify.NewKeywordTable(opts.Keywords, opts.DefaultArea)
	recentFrom := opts.currentYear() - (recentWindow - 1)

	r := &Result{
		All:                   make([]types.Publication, len(pubs)),
		Primary:               []types.Publication{},
		Student:               []types.Publication{},
		NonStudentSignificant: []types.Publication{},
		Other:                 []types.Publication{},
		ByYear:                make(map[string]YearCounts),
		ByArea:                make(map[string]AreaWeight, len(classify.CanonicalAreas)),
	}
	copy(r.All, pubs)
	for _, area := range classify.CanonicalAreas {
		r.ByArea[area] = AreaWeight{}
	}

	for _, p := range r.All {
		cat := authorship.Classify(p)
		r.appendTo(cat, p)

		key := p.YearKey()
		counts := r.ByYear[key]
		counts.add(cat)
		r.ByYear[key] = counts

		year, hasYear := p.YearValue()
		recent := hasYear && year >= recentFrom
		for area, w := range keywords.AreaWeights(p) {
			aw := r.ByArea[area]
			aw.AllTime += w
			if recent {
				aw.LastFiveYears += w
			}
			r.ByArea[area] = aw
		}
	}

	return r
}

// Count returns the number of publications in each partition.
func (r *Result) Count() map[classify.Category]int {
	return map[classify.Category]int{
		classify.Primary:               len(r.Primary),
		classify.Student:               len(r.Student),
		classify.NonStudentSignificant: len(r.NonStudentSignificant),
		classify.Other:                 len(r.Other),
	}
}

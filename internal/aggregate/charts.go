// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"math"
	"strconv"

	"github.com/pdiddy/pubstats/internal/classify"
	"github.com/pdiddy/pubstats/pkg/types"
)

// CategorySeries is a dense per-year series split by authorship category.
// All slices share the index of Years.
type CategorySeries struct {
	Years                 []int `json:"years" yaml:"years"`
	Primary               []int `json:"primary" yaml:"primary"`
	Student               []int `json:"student" yaml:"student"`
	NonStudentSignificant []int `json:"nonStudentSignificant" yaml:"nonStudentSignificant"`
	Other                 []int `json:"other" yaml:"other"`
	Total                 []int `json:"total" yaml:"total"`
}

// Len returns the number of years in the series.
func (s CategorySeries) Len() int { return len(s.Years) }

// At returns the counts for year, or false when year is outside the range.
func (s CategorySeries) At(year int) (YearCounts, bool) {
	if len(s.Years) == 0 || year < s.Years[0] || year > s.Years[len(s.Years)-1] {
		return YearCounts{}, false
	}
	i := year - s.Years[0]
	return YearCounts{
		Primary:               s.Primary[i],
		Student:               s.Student[i],
		NonStudentSignificant: s.NonStudentSignificant[i],
		Other:                 s.Other[i],
		Total:                 s.Total[i],
	}, true
}

// DenseYears returns every year from min to max inclusive. It returns nil
// when max < min.
func DenseYears(min, max int) []int {
	if max < min {
		return nil
	}
	years := make([]int, 0, max-min+1)
	for y := min; y <= max; y++ {
		years = append(years, y)
	}
	return years
}

// newSeries builds a zero-filled series covering the observed years.
func newSeries(observed map[int]YearCounts) CategorySeries {
	if len(observed) == 0 {
		return CategorySeries{
			Years: []int{}, Primary: []int{}, Student: []int{},
			NonStudentSignificant: []int{}, Other: []int{}, Total: []int{},
		}
	}
	min, max := math.MaxInt, math.MinInt
	for y := range observed {
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	years := DenseYears(min, max)
	s := CategorySeries{
		Years:                 years,
		Primary:               make([]int, len(years)),
		Student:               make([]int, len(years)),
		NonStudentSignificant: make([]int, len(years)),
		Other:                 make([]int, len(years)),
		Total:                 make([]int, len(years)),
	}
	for i, y := range years {
		c := observed[y]
		s.Primary[i] = c.Primary
		s.Student[i] = c.Student
		s.NonStudentSignificant[i] = c.NonStudentSignificant
		s.Other[i] = c.Other
		s.Total[i] = c.Total
	}
	return s
}

// PapersByYear returns the ByYear counts as a dense series. The Unknown
// bucket has no place on a year axis and is left out.
func PapersByYear(r *Result) CategorySeries {
	observed := make(map[int]YearCounts, len(r.ByYear))
	for key, c := range r.ByYear {
		if key == types.UnknownYear {
			continue
		}
		y, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		observed[y] = c
	}
	return newSeries(observed)
}

// CitationsByPublicationYear sums citations per publication year and
// authorship category. Only publications with a year and at least one
// citation contribute, and only their years bound the range.
func CitationsByPublicationYear(r *Result) CategorySeries {
	observed := make(map[int]YearCounts)
	for _, cat := range classify.Categories {
		for _, p := range r.Partition(cat) {
			y, ok := p.YearValue()
			if !ok || p.Citations <= 0 {
				continue
			}
			c := observed[y]
			switch cat {
			case classify.Primary:
				c.Primary += p.Citations
			case classify.Student:
				c.Student += p.Citations
			case classify.NonStudentSignificant:
				c.NonStudentSignificant += p.Citations
			default:
				c.Other += p.Citations
			}
			c.Total += p.Citations
			observed[y] = c
		}
	}
	return newSeries(observed)
}

// AreaRing is one segment of the research-area ring chart.
type AreaRing struct {
	Area          string  `json:"area" yaml:"area"`
	AllTime       float64 `json:"allTime" yaml:"allTime"`
	LastFiveYears float64 `json:"lastFiveYears" yaml:"lastFiveYears"`
}

// AreaRings returns the four canonical areas in chart order, rounded to
// one decimal place. Non-canonical areas are not rendered.
func AreaRings(r *Result) []AreaRing {
	rings := make([]AreaRing, 0, len(classify.CanonicalAreas))
	for _, area := range classify.CanonicalAreas {
		w := r.ByArea[area]
		rings = append(rings, AreaRing{
			Area:          area,
			AllTime:       round1(w.AllTime),
			LastFiveYears: round1(w.LastFiveYears),
		})
	}
	return rings
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

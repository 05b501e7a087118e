// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for pubstats: the publication
// and mentee records read from the portfolio's JSON documents, and the
// configuration for each stage that maintains them.
package types

import (
	"strconv"
	"strings"
)

// UnknownYear is the ByYear bucket for publications without a year.
const UnknownYear = "Unknown"

// Years outside [MinYear, MaxYear] are typos or sentinels and count as
// missing.
const (
	MinYear = 1000
	MaxYear = 9999
)

// Authorship tags curated in the bibliographic library service.
const (
	TagPrimary     = "primary"
	TagStudent     = "student"
	TagSignificant = "significant"
	TagAll         = "all"
)

// Publication is a single entry of publications_data.json. Optional fields
// use nil or zero values; the accessor methods apply the defaulting rules
// so callers never check field presence themselves.
type Publication struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in byline order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year is the publication year. Nil when the source did not provide one.
	Year *int `json:"year,omitempty" yaml:"year,omitempty"`

	// Citations is the citation count. Absent or null decodes to 0.
	Citations int `json:"citations" yaml:"citations"`

	// Abstract is the paper abstract, used by the keyword area fallback.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords are the bibliographic keywords, used by area scoring.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// ResearchArea is the display label for the highest-weighted area. It
	// is written by scoring and never read by aggregation.
	ResearchArea string `json:"researchArea,omitempty" yaml:"researchArea,omitempty"`

	// CategoryProbabilities maps research area to weight in [0,1]. When
	// non-nil, even if empty, it supersedes the keyword fallback.
	CategoryProbabilities map[string]float64 `json:"categoryProbabilities,omitempty" yaml:"categoryProbabilities,omitempty"`

	// AuthorshipCategories holds curated tags (primary, student,
	// significant, all). When non-empty it supersedes name matching.
	AuthorshipCategories []string `json:"authorshipCategories,omitempty" yaml:"authorshipCategories,omitempty"`

	// Featured marks papers highlighted on the landing page.
	Featured bool `json:"featured,omitempty" yaml:"featured,omitempty"`

	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Bibcode  string `json:"bibcode,omitempty" yaml:"bibcode,omitempty"`
	ADSURL   string `json:"adsUrl,omitempty" yaml:"adsUrl,omitempty"`
	DOI      string `json:"doi,omitempty" yaml:"doi,omitempty"`
	ArxivID  string `json:"arxivId,omitempty" yaml:"arxivId,omitempty"`
	Journal  string `json:"journal,omitempty" yaml:"journal,omitempty"`
	OpenAlex string `json:"openalexId,omitempty" yaml:"openalexId,omitempty"`
}

// YearValue returns the publication year and whether a plausible one is
// set.
func (p Publication) YearValue() (int, bool) {
	if p.Year == nil || *p.Year < MinYear || *p.Year > MaxYear {
		return 0, false
	}
	return *p.Year, true
}

// YearKey returns the ByYear bucket for p: the decimal year, or UnknownYear.
func (p Publication) YearKey() string {
	y, ok := p.YearValue()
	if !ok {
		return UnknownYear
	}
	return strconv.Itoa(y)
}

// HasProbabilities reports whether p carries research-area weights. An
// empty object counts: it records that scoring found nothing.
func (p Publication) HasProbabilities() bool {
	return p.CategoryProbabilities != nil
}

// HasAuthorshipTags reports whether p carries curated authorship tags.
func (p Publication) HasAuthorshipTags() bool {
	return len(p.AuthorshipCategories) > 0
}

// HasTag reports whether tag is among p's authorship tags.
func (p Publication) HasTag(tag string) bool {
	for _, t := range p.AuthorshipCategories {
		if t == tag {
			return true
		}
	}
	return false
}

// Identifiers returns every identifier that may name p in the ADS
// libraries: bibcode, id, and the bibcode embedded in adsUrl.
func (p Publication) Identifiers() []string {
	var ids []string
	if p.Bibcode != "" {
		ids = append(ids, p.Bibcode)
	}
	if p.ID != "" && p.ID != p.Bibcode {
		ids = append(ids, p.ID)
	}
	if i := strings.LastIndex(p.ADSURL, "/abs/"); i >= 0 {
		code := strings.TrimSuffix(p.ADSURL[i+len("/abs/"):], "/abstract")
		code = strings.TrimSuffix(code, "/")
		if code != "" && code != p.Bibcode && code != p.ID {
			ids = append(ids, code)
		}
	}
	return ids
}

// Clone returns a deep copy of p so callers can modify it without touching
// the receiver.
func (p Publication) Clone() Publication {
	c := p
	if p.Year != nil {
		y := *p.Year
		c.Year = &y
	}
	if p.Authors != nil {
		c.Authors = append([]string(nil), p.Authors...)
	}
	if p.Keywords != nil {
		c.Keywords = append([]string(nil), p.Keywords...)
	}
	if p.AuthorshipCategories != nil {
		c.AuthorshipCategories = append([]string(nil), p.AuthorshipCategories...)
	}
	if p.CategoryProbabilities != nil {
		c.CategoryProbabilities = make(map[string]float64, len(p.CategoryProbabilities))
		for k, v := range p.CategoryProbabilities {
			c.CategoryProbabilities[k] = v
		}
	}
	return c
}

// IntPtr is a convenience for building publications with a year.
func IntPtr(v int) *int { return &v }

// Metrics holds author-level figures stored alongside the publication list.
type Metrics struct {
	TotalPapers                int            `json:"totalPapers" yaml:"totalPapers"`
	TotalCitations             int            `json:"totalCitations" yaml:"totalCitations"`
	HIndex                     int            `json:"hIndex" yaml:"hIndex"`
	I10Index                   int            `json:"i10Index" yaml:"i10Index"`
	CitationsByPublicationYear map[string]int `json:"citationsByPublicationYear,omitempty" yaml:"citationsByPublicationYear,omitempty"`
	Sources                    []string       `json:"sources,omitempty" yaml:"sources,omitempty"`
	LastUpdated                string         `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`
}

// PublicationsDocument is the top-level shape of publications_data.json.
type PublicationsDocument struct {
	Publications []Publication `json:"publications"`
	Metrics      *Metrics      `json:"metrics,omitempty"`
	LastUpdated  string        `json:"lastUpdated,omitempty"`
}

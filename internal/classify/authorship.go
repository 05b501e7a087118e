// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns publications to authorship categories and
// research areas. Both are ordered rule lists evaluated top to bottom with
// a default arm, so the priority of every rule is visible in one place.
package classify

import (
	"strings"

	"github.com/pdiddy/pubstats/pkg/types"
)

// Category is the mutually exclusive authorship classification of a
// publication relative to the portfolio owner.
type Category string

const (
	Primary               Category = "primary"
	Student               Category = "student"
	NonStudentSignificant Category = "nonStudentSignificant"
	Other                 Category = "other"
)

// Categories lists every authorship category in display order.
var Categories = []Category{Primary, Student, NonStudentSignificant, Other}

// DefaultOwnerNames are the owner's byline spellings used when none are
// configured.
var DefaultOwnerNames = []string{"J. Speagle", "Joshua S. Speagle"}

// ownerSlots is the number of leading byline positions that count as
// primary authorship.
const ownerSlots = 2

// Authorship classifies publications. The zero value matches nobody by
// name; use NewAuthorship.
type Authorship struct {
	owners  map[string]bool
	mentees []string
}

// NewAuthorship builds a classifier for the given owner spellings and
// mentee family names. Empty ownerNames falls back to DefaultOwnerNames.
func NewAuthorship(ownerNames, menteeFamilyNames []string) *Authorship {
	if len(ownerNames) == 0 {
		ownerNames = DefaultOwnerNames
	}
	owners := make(map[string]bool, len(ownerNames))
	for _, n := range ownerNames {
		if n = strings.TrimSpace(n); n != "" {
			owners[n] = true
		}
	}
	var mentees []string
	for _, n := range menteeFamilyNames {
		if n != "" {
			mentees = append(mentees, n)
		}
	}
	return &Authorship{owners: owners, mentees: mentees}
}

// authorshipRule is one row of the decision table.
type authorshipRule struct {
	name     string
	matches  func(a *Authorship, p types.Publication) bool
	category Category
}

// authorshipRules is evaluated top to bottom; the first match wins. The
// curated-tag rows come first and only apply when tags are present. The
// name-heuristic rows never produce NonStudentSignificant.
var authorshipRules = []authorshipRule{
	{"tag:primary", tagged(types.TagPrimary), Primary},
	{"tag:student", tagged(types.TagStudent), Student},
	{"tag:significant", tagged(types.TagSignificant), NonStudentSignificant},
	{"tag:other", func(_ *Authorship, p types.Publication) bool { return p.HasAuthorshipTags() }, Other},
	{"name:owner-leading", (*Authorship).ownerLeads, Primary},
	{"name:mentee-first", (*Authorship).menteeFirst, Student},
}

func tagged(tag string) func(*Authorship, types.Publication) bool {
	return func(_ *Authorship, p types.Publication) bool {
		return p.HasAuthorshipTags() && p.HasTag(tag)
	}
}

// Classify returns the authorship category of p.
func (a *Authorship) Classify(p types.Publication) Category {
	c, _ := a.explain(p)
	return c
}

// Explain returns the category of p and the name of the rule that
// produced it ("default" when no rule matched).
func (a *Authorship) Explain(p types.Publication) (Category, string) {
	return a.explain(p)
}

func (a *Authorship) explain(p types.Publication) (Category, string) {
	for _, r := range authorshipRules {
		if r.matches(a, p) {
			return r.category, r.name
		}
	}
	return Other, "default"
}

// OwnerIndex returns the byline position of the owner, or -1.
func (a *Authorship) OwnerIndex(authors []string) int {
	for i, name := range authors {
		if a.owners[strings.TrimSpace(name)] {
			return i
		}
	}
	return -1
}

func (a *Authorship) ownerLeads(p types.Publication) bool {
	i := a.OwnerIndex(p.Authors)
	return i >= 0 && i < ownerSlots
}

// menteeFirst matches when the first author contains a mentee family
// name. The match is a case-sensitive substring test on the family name.
func (a *Authorship) menteeFirst(p types.Publication) bool {
	if len(p.Authors) == 0 {
		return false
	}
	first := p.Authors[0]
	for _, family := range a.mentees {
		if strings.Contains(first, family) {
			return true
		}
	}
	return false
}

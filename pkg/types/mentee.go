// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"sort"
	"strings"
)

// PrivacyPlaceholder marks a mentee record that stands in for an
// unnamed person and must not be used for name matching.
const PrivacyPlaceholder = "placeholder"

// Mentee is one supervised researcher.
type Mentee struct {
	Name    string `json:"name" yaml:"name"`
	Privacy string `json:"privacy,omitempty" yaml:"privacy,omitempty"`
}

// IsPlaceholder reports whether m is excluded from name matching.
func (m Mentee) IsPlaceholder() bool {
	return m.Privacy == PrivacyPlaceholder
}

// FamilyName returns the last whitespace-separated token of the name.
func (m Mentee) FamilyName() string {
	parts := strings.Fields(m.Name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// MenteeStage groups mentees at one career stage.
type MenteeStage struct {
	Current   []Mentee `json:"current,omitempty" yaml:"current,omitempty"`
	Completed []Mentee `json:"completed,omitempty" yaml:"completed,omitempty"`
}

// MenteeDocument is the top-level shape of mentees.json. Stage names
// (postdocs, graduate, undergraduate, ...) are free-form.
type MenteeDocument struct {
	Mentees map[string]MenteeStage `json:"mentees"`
}

// Roster flattens current and completed mentees across all stages,
// skipping placeholders. Stages are visited in name order so the result
// is stable.
func (d *MenteeDocument) Roster() []Mentee {
	if d == nil {
		return nil
	}
	stages := make([]string, 0, len(d.Mentees))
	for name := range d.Mentees {
		stages = append(stages, name)
	}
	sort.Strings(stages)

	var roster []Mentee
	for _, name := range stages {
		stage := d.Mentees[name]
		for _, list := range [][]Mentee{stage.Current, stage.Completed} {
			for _, m := range list {
				if m.IsPlaceholder() || strings.TrimSpace(m.Name) == "" {
					continue
				}
				roster = append(roster, m)
			}
		}
	}
	return roster
}

// FamilyNames returns the de-duplicated family names of the roster, in
// roster order.
func FamilyNames(roster []Mentee) []string {
	seen := make(map[string]bool, len(roster))
	var names []string
	for _, m := range roster {
		if m.IsPlaceholder() {
			continue
		}
		f := m.FamilyName()
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		names = append(names, f)
	}
	return names
}

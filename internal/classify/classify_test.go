// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/pubstats/pkg/types"
)

// --- authorship ---

func TestAuthorshipClassify(t *testing.T) {
	a := NewAuthorship(nil, []string{"Zucker", "Van-Lane"})

	tests := []struct {
		name     string
		pub      types.Publication
		want     Category
		wantRule string
	}{
		{
			name:     "primary tag wins over every other tag",
			pub:      types.Publication{AuthorshipCategories: []string{"significant", "student", "primary", "all"}},
			want:     Primary,
			wantRule: "tag:primary",
		},
		{
			name:     "student tag wins over significant",
			pub:      types.Publication{AuthorshipCategories: []string{"significant", "student"}},
			want:     Student,
			wantRule: "tag:student",
		},
		{
			name:     "significant only",
			pub:      types.Publication{AuthorshipCategories: []string{"significant"}},
			want:     NonStudentSignificant,
			wantRule: "tag:significant",
		},
		{
			name:     "all only is other",
			pub:      types.Publication{AuthorshipCategories: []string{"all"}},
			want:     Other,
			wantRule: "tag:other",
		},
		{
			name: "tags supersede name heuristics",
			pub: types.Publication{
				Authors:              []string{"J. Speagle"},
				AuthorshipCategories: []string{"all"},
			},
			want:     Other,
			wantRule: "tag:other",
		},
		{
			name:     "owner first author",
			pub:      types.Publication{Authors: []string{"J. Speagle", "A. Person"}},
			want:     Primary,
			wantRule: "name:owner-leading",
		},
		{
			name:     "owner second author with alternate spelling",
			pub:      types.Publication{Authors: []string{"A. Person", "Joshua S. Speagle"}},
			want:     Primary,
			wantRule: "name:owner-leading",
		},
		{
			name:     "empty tag list falls back to names",
			pub:      types.Publication{Authors: []string{"J. Speagle"}, AuthorshipCategories: []string{}},
			want:     Primary,
			wantRule: "name:owner-leading",
		},
		{
			name:     "mentee first author, owner third",
			pub:      types.Publication{Authors: []string{"C. Zucker", "A. Saydjari", "J. Speagle"}},
			want:     Student,
			wantRule: "name:mentee-first",
		},
		{
			name:     "owner in second slot outranks mentee first author",
			pub:      types.Publication{Authors: []string{"C. Zucker", "J. Speagle"}},
			want:     Primary,
			wantRule: "name:owner-leading",
		},
		{
			name:     "mentee match is case sensitive",
			pub:      types.Publication{Authors: []string{"c. zucker", "B", "J. Speagle"}},
			want:     Other,
			wantRule: "default",
		},
		{
			name:     "mentee in second slot does not count",
			pub:      types.Publication{Authors: []string{"A. Person", "C. Zucker"}},
			want:     Other,
			wantRule: "default",
		},
		{
			name:     "no authors",
			pub:      types.Publication{Title: "Untitled"},
			want:     Other,
			wantRule: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := a.Explain(tt.pub)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.want, a.Classify(tt.pub))
		})
	}
}

// The name heuristic has no path to NonStudentSignificant; only curated
// tags produce it. This pins that asymmetry.
func TestAuthorshipHeuristicNeverSignificant(t *testing.T) {
	a := NewAuthorship(nil, []string{"Zucker"})
	bylines := [][]string{
		nil,
		{"J. Speagle"},
		{"A", "B", "J. Speagle"},
		{"C. Zucker"},
		{"A", "B", "C", "D", "E", "J. Speagle"},
	}
	for _, authors := range bylines {
		got := a.Classify(types.Publication{Authors: authors})
		assert.NotEqual(t, NonStudentSignificant, got, "authors %v", authors)
	}
}

func TestOwnerIndex(t *testing.T) {
	a := NewAuthorship([]string{" Speagle, J. "}, nil)
	assert.Equal(t, 2, a.OwnerIndex([]string{"A", "B", "Speagle, J."}))
	assert.Equal(t, -1, a.OwnerIndex([]string{"J. Speagle"}))
	assert.Equal(t, -1, a.OwnerIndex(nil))
}

// --- keyword table ---

func TestKeywordTableCategory(t *testing.T) {
	table := NewKeywordTable(nil, "")

	tests := []struct {
		name string
		text string
		want string
	}{
		{"machine learning", "A Machine Learning approach to stars", AreaLearning},
		{"interpretability", "On the interpretability of emulators", AreaInterpretation},
		{"nested sampling", "dynesty: a dynamic Nested Sampling package", AreaInference},
		{"dark matter", "dark matter halos of dwarfs", AreaDiscovery},
		{"no match uses default", "stellar streams in the halo", DefaultArea},
		{"empty text", "", DefaultArea},
		{
			name: "earlier rule wins when several match",
			text: "bayesian inference of galaxy formation with deep learning",
			want: AreaLearning,
		},
		{
			name: "inference before discovery",
			text: "monte carlo methods for cosmology",
			want: AreaInference,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Category(tt.text))
		})
	}
}

func TestKeywordTableCustomRules(t *testing.T) {
	table := NewKeywordTable([]types.KeywordRule{
		{Keyword: "Dust", Area: "Dust Mapping"},
		{Keyword: "", Area: "ignored"},
		{Keyword: "star", Area: ""},
	}, "Misc")

	assert.Equal(t, "Dust Mapping", table.Category("a 3D DUST map"))
	assert.Equal(t, "Misc", table.Category("star formation"))
}

func TestKeywordTablePublicationUsesAbstract(t *testing.T) {
	table := NewKeywordTable(nil, "")
	p := types.Publication{Title: "Something", Abstract: "We apply MCMC to ..."}
	assert.Equal(t, AreaInference, table.Publication(p))
}

func TestAreaWeights(t *testing.T) {
	table := NewKeywordTable(nil, "")

	t.Run("probabilities are not normalized", func(t *testing.T) {
		p := types.Publication{CategoryProbabilities: map[string]float64{
			AreaInference: 0.6,
			AreaDiscovery: 0.3,
		}}
		w := table.AreaWeights(p)
		assert.Equal(t, map[string]float64{AreaInference: 0.6, AreaDiscovery: 0.3}, w)

		w[AreaInference] = 0
		assert.Equal(t, 0.6, p.CategoryProbabilities[AreaInference], "input must not be mutated")
	})

	t.Run("empty probabilities contribute nothing", func(t *testing.T) {
		p := types.Publication{Title: "machine learning", CategoryProbabilities: map[string]float64{}}
		assert.Empty(t, table.AreaWeights(p))
	})

	t.Run("keyword fallback weighs one area", func(t *testing.T) {
		p := types.Publication{Title: "Deep learning for photometric redshifts"}
		assert.Equal(t, map[string]float64{AreaLearning: 1.0}, table.AreaWeights(p))
	})

	t.Run("research area label is not an attribution", func(t *testing.T) {
		p := types.Publication{Title: "Deep learning for photometric redshifts", ResearchArea: AreaDiscovery}
		assert.Equal(t, map[string]float64{AreaLearning: 1.0}, table.AreaWeights(p))
	})
}

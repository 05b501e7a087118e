// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubstats/pkg/types"
)

var smallTable = []types.WeightedKeyword{
	{Keyword: "bayesian", Area: AreaInference, Weight: 10},
	{Keyword: "neural network", Area: AreaLearning, Weight: 5},
	{Keyword: "data-driven", Area: AreaLearning, Weight: 4},
	{Keyword: "galaxy", Area: AreaDiscovery, Weight: 2},
}

func TestScorerRawScores(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.ScoringConfig
		pub  types.Publication
		want map[string]float64
	}{
		{
			name: "fields and priorities",
			pub: types.Publication{
				Title:    "Bayesian ages of galaxy disks",
				Abstract: "We train a neural network.",
			},
			want: map[string]float64{AreaInference: 60, AreaLearning: 10, AreaDiscovery: 6, AreaInterpretation: 0},
		},
		{
			name: "a keyword counts once per field",
			pub:  types.Publication{Title: "Bayesian, bayesian, BAYESIAN"},
			want: map[string]float64{AreaInference: 60, AreaLearning: 0, AreaDiscovery: 0, AreaInterpretation: 0},
		},
		{
			name: "every field adds",
			pub: types.Publication{
				Title:    "bayesian",
				Abstract: "bayesian",
				Keywords: []string{"Bayesian methods"},
			},
			want: map[string]float64{AreaInference: 120, AreaLearning: 0, AreaDiscovery: 0, AreaInterpretation: 0},
		},
		{
			name: "whole words only",
			pub:  types.Publication{Title: "Bayesianism and neural networks in galaxy-scale data"},
			want: map[string]float64{AreaInference: 0, AreaLearning: 0, AreaDiscovery: 6, AreaInterpretation: 0},
		},
		{
			name: "punctuation is stripped but hyphens kept",
			pub:  types.Publication{Title: "Data-driven: (Bayesian) priors!"},
			want: map[string]float64{AreaInference: 60, AreaLearning: 24, AreaDiscovery: 0, AreaInterpretation: 0},
		},
		{
			name: "abstract is truncated",
			cfg:  types.ScoringConfig{AbstractLimit: 10},
			pub:  types.Publication{Abstract: "0123456789 bayesian"},
			want: map[string]float64{AreaInference: 0, AreaLearning: 0, AreaDiscovery: 0, AreaInterpretation: 0},
		},
		{
			name: "custom priorities and field weights",
			cfg: types.ScoringConfig{
				Fields:     types.FieldWeights{Title: 1, Abstract: 1, Keywords: 1},
				Priorities: []types.AreaPriority{{Area: AreaInference, Multiplier: 0.5}},
			},
			pub:  types.Publication{Title: "bayesian neural network"},
			want: map[string]float64{AreaInference: 5, AreaLearning: 5, AreaDiscovery: 0, AreaInterpretation: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.Keywords = smallTable
			got := NewScorer(cfg, "").Score(tt.pub)
			assert.Equal(t, tt.want, got.Raw)
		})
	}
}

func TestScorerProbabilities(t *testing.T) {
	s := NewScorer(types.ScoringConfig{Keywords: smallTable}, "")

	score := s.Score(types.Publication{
		Title:    "Bayesian ages of galaxy disks",
		Abstract: "We train a neural network.",
	})
	assert.InDelta(t, 60.0/76, score.Probabilities[AreaInference], 1e-12)
	assert.InDelta(t, 10.0/76, score.Probabilities[AreaLearning], 1e-12)
	assert.InDelta(t, 6.0/76, score.Probabilities[AreaDiscovery], 1e-12)
	assert.Zero(t, score.Probabilities[AreaInterpretation])
	assert.Equal(t, AreaInference, score.Primary)
	assert.Equal(t, ConfidenceHigh, score.Confidence())
	assert.False(t, score.MultiArea())
	assert.Equal(t, map[string][]string{
		AreaInference: {"bayesian"},
		AreaLearning:  {"neural network"},
		AreaDiscovery: {"galaxy"},
	}, score.Matched)

	var sum float64
	for _, p := range score.Probabilities {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestScorerNoMatches(t *testing.T) {
	s := NewScorer(types.ScoringConfig{Keywords: smallTable}, "")
	score := s.Score(types.Publication{Title: "Nothing relevant here"})

	require.Len(t, score.Probabilities, len(CanonicalAreas))
	for _, area := range CanonicalAreas {
		assert.Equal(t, 0.25, score.Probabilities[area], area)
	}
	assert.Equal(t, DefaultArea, score.Primary, "ties go to the default area")
	assert.Equal(t, ConfidenceLow, score.Confidence())
	assert.True(t, score.MultiArea())
	assert.Empty(t, score.Matched)
}

func TestScorerTieBreak(t *testing.T) {
	table := []types.WeightedKeyword{
		{Keyword: "alpha", Area: AreaLearning, Weight: 1},
		{Keyword: "beta", Area: AreaDiscovery, Weight: 2},
		{Keyword: "gamma", Area: AreaInference, Weight: 1},
	}
	s := NewScorer(types.ScoringConfig{Keywords: table}, "")

	assert.Equal(t, AreaDiscovery, s.Score(types.Publication{Title: "alpha beta"}).Primary)
	assert.Equal(t, AreaLearning, s.Score(types.Publication{Title: "alpha gamma"}).Primary,
		"without the default area, the earlier area wins")
	assert.Equal(t, AreaInference, NewScorer(types.ScoringConfig{Keywords: table}, AreaInference).
		Score(types.Publication{Title: "nothing"}).Primary)
}

func TestScorerExtraArea(t *testing.T) {
	table := append([]types.WeightedKeyword{{Keyword: "spectrograph", Area: "Instrumentation", Weight: 3}}, smallTable...)
	s := NewScorer(types.ScoringConfig{Keywords: table}, "")

	assert.Equal(t, append(append([]string{}, CanonicalAreas...), "Instrumentation"), s.Areas())
	score := s.Score(types.Publication{Title: "A new spectrograph"})
	assert.Equal(t, "Instrumentation", score.Primary)
	assert.Equal(t, 1.0, score.Probabilities["Instrumentation"])
}

func TestScorerSkipsInvalidRules(t *testing.T) {
	table := []types.WeightedKeyword{
		{Keyword: "  ", Area: AreaLearning, Weight: 1},
		{Keyword: "alpha", Area: "", Weight: 1},
		{Keyword: "beta", Area: AreaLearning, Weight: 0},
	}
	s := NewScorer(types.ScoringConfig{Keywords: table}, "")
	assert.Empty(t, s.rules)
	assert.Equal(t, DefaultArea, s.Score(types.Publication{Title: "alpha beta"}).Primary)
}

func TestScorerDefaultTable(t *testing.T) {
	s := NewScorer(types.ScoringConfig{AbstractLimit: DefaultAbstractLimit}, "")

	tests := []struct {
		title string
		want  string
	}{
		{"dynesty: a dynamic nested sampling package for estimating Bayesian posteriors and evidences", AreaInference},
		{"Deep learning with variational autoencoders for stellar spectra", AreaLearning},
		{"Interpretable and explainable models of label systematics", AreaInterpretation},
		{"The Milky Way globular cluster system", AreaDiscovery},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(types.Publication{Title: tt.title}).Primary)
		})
	}
}

func TestScoreAll(t *testing.T) {
	s := NewScorer(types.ScoringConfig{Keywords: smallTable}, "")
	pubs := []types.Publication{
		{Title: "Bayesian things", Featured: true, ResearchArea: AreaInference},
		{Title: "galaxy", ResearchArea: AreaLearning, Citations: 4},
		{Title: "unrelated", CategoryProbabilities: map[string]float64{AreaLearning: 1}},
		{Title: "Bayesian galaxy"},
	}

	scored, report := s.ScoreAll(pubs)
	require.Len(t, scored, 4)

	assert.True(t, scored[0].Featured)
	assert.Equal(t, AreaInference, scored[0].ResearchArea)
	assert.Equal(t, AreaDiscovery, scored[1].ResearchArea)
	assert.Equal(t, 4, scored[1].Citations)
	assert.Equal(t, 0.25, scored[2].CategoryProbabilities[AreaLearning])
	assert.Equal(t, AreaInference, scored[3].ResearchArea)
	for _, p := range scored {
		assert.True(t, p.HasProbabilities())
	}

	assert.Equal(t, ScoreReport{Scored: 4, Relabeled: 3, High: 3, Low: 1, MultiArea: 1}, report)

	assert.Equal(t, 1.0, pubs[2].CategoryProbabilities[AreaLearning], "input must not be mutated")
	assert.Empty(t, pubs[3].ResearchArea)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  Hello,   World!  ", "hello world"},
		{"Data-driven (MCMC) & priors", "data-driven mcmc priors"},
		{"snake_case\tand\nnewlines", "snake_case and newlines"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanText(tt.in), tt.in)
	}
}

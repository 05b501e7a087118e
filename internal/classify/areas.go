// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/pubstats/pkg/types"
)

// Canonical research areas, in chart order.
const (
	AreaLearning       = "Statistical Learning & AI"
	AreaInterpretation = "Interpretability & Insight"
	AreaInference      = "Inference & Computation"
	AreaDiscovery      = "Discovery & Understanding"
)

// CanonicalAreas lists the four research areas the charts render.
var CanonicalAreas = []string{AreaLearning, AreaInterpretation, AreaInference, AreaDiscovery}

// DefaultArea is returned when no keyword matches.
const DefaultArea = AreaDiscovery

// DefaultKeywordRules is the keyword fallback table. Order is the
// priority: earlier phrases win over later ones.
var DefaultKeywordRules = []types.KeywordRule{
	{Keyword: "machine learning", Area: AreaLearning},
	{Keyword: "artificial intelligence", Area: AreaLearning},
	{Keyword: "neural networks", Area: AreaLearning},
	{Keyword: "deep learning", Area: AreaLearning},
	{Keyword: "pattern recognition", Area: AreaLearning},
	{Keyword: "interpretability", Area: AreaInterpretation},
	{Keyword: "explainable ai", Area: AreaInterpretation},
	{Keyword: "model interpretation", Area: AreaInterpretation},
	{Keyword: "feature importance", Area: AreaInterpretation},
	{Keyword: "bayesian inference", Area: AreaInference},
	{Keyword: "nested sampling", Area: AreaInference},
	{Keyword: "mcmc", Area: AreaInference},
	{Keyword: "monte carlo", Area: AreaInference},
	{Keyword: "statistical inference", Area: AreaInference},
	{Keyword: "computational statistics", Area: AreaInference},
	{Keyword: "parameter estimation", Area: AreaInference},
	{Keyword: "galaxy formation", Area: AreaDiscovery},
	{Keyword: "galaxy evolution", Area: AreaDiscovery},
	{Keyword: "stellar populations", Area: AreaDiscovery},
	{Keyword: "astronomical surveys", Area: AreaDiscovery},
	{Keyword: "cosmology", Area: AreaDiscovery},
	{Keyword: "dark matter", Area: AreaDiscovery},
	{Keyword: "star formation", Area: AreaDiscovery},
}

// KeywordTable picks a research area by first-match substring search.
type KeywordTable struct {
	rules       []types.KeywordRule
	defaultArea string
}

// NewKeywordTable builds a table from rules. Nil rules use
// DefaultKeywordRules; an empty defaultArea uses DefaultArea. Keywords are
// lower-cased so they match the lower-cased search text.
func NewKeywordTable(rules []types.KeywordRule, defaultArea string) *KeywordTable {
	if rules == nil {
		rules = DefaultKeywordRules
	}
	if defaultArea == "" {
		defaultArea = DefaultArea
	}
	t := &KeywordTable{defaultArea: defaultArea}
	for _, r := range rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" || r.Area == "" {
			continue
		}
		t.rules = append(t.rules, types.KeywordRule{Keyword: kw, Area: r.Area})
	}
	return t
}

// Category returns the area of the first keyword found in text.
func (t *KeywordTable) Category(text string) string {
	text = strings.ToLower(text)
	for _, r := range t.rules {
		if strings.Contains(text, r.Keyword) {
			return r.Area
		}
	}
	return t.defaultArea
}

// Publication returns the fallback area for p from its title and abstract.
func (t *KeywordTable) Publication(p types.Publication) string {
	return t.Category(p.Title + " " + p.Abstract)
}

// AreaWeights returns the research-area contributions of p. Curated
// probabilities are returned as-is, without normalization, and an empty
// set contributes nothing. Only when they are absent does the keyword
// fallback contribute weight 1.0 to a single area. p.ResearchArea is
// never consulted.
func (t *KeywordTable) AreaWeights(p types.Publication) map[string]float64 {
	if p.HasProbabilities() {
		w := make(map[string]float64, len(p.CategoryProbabilities))
		for area, prob := range p.CategoryProbabilities {
			w[area] = prob
		}
		return w
	}
	return map[string]float64{t.Publication(p): 1.0}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/pubstats/pkg/types"
)

// DefaultFieldWeights favor the title over curated keywords over the
// abstract.
var DefaultFieldWeights = types.FieldWeights{Title: 3, Abstract: 1, Keywords: 2}

// DefaultPriorities boost the three methods areas over the application
// area.
var DefaultPriorities = []types.AreaPriority{
	{Area: AreaLearning, Multiplier: 2},
	{Area: AreaInterpretation, Multiplier: 2},
	{Area: AreaInference, Multiplier: 2},
	{Area: AreaDiscovery, Multiplier: 1},
}

// DefaultAbstractLimit is the number of abstract characters matched.
const DefaultAbstractLimit = 800

// Confidence buckets the top probability of a score.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Thresholds on the top probability and on secondary areas.
const (
	highConfidence   = 0.5
	mediumConfidence = 0.3
	multiAreaShare   = 0.2
)

type scoringRule struct {
	keyword string
	area    string
	weight  float64
	re      *regexp.Regexp
}

// Scorer turns a publication's title, abstract and keywords into
// research-area probabilities. Each keyword counts once per field it
// appears in, whatever the number of occurrences.
type Scorer struct {
	rules         []scoringRule
	areas         []string
	fields        types.FieldWeights
	priority      map[string]float64
	abstractLimit int
	defaultArea   string
}

// NewScorer builds a Scorer from cfg. Empty keyword and priority lists use
// the built-in tables and zero field weights use DefaultFieldWeights. An
// empty defaultArea uses DefaultArea; it wins ties for the primary area.
func NewScorer(cfg types.ScoringConfig, defaultArea string) *Scorer {
	keywords := cfg.Keywords
	if len(keywords) == 0 {
		keywords = DefaultScoringKeywords
	}
	priorities := cfg.Priorities
	if len(priorities) == 0 {
		priorities = DefaultPriorities
	}
	fields := cfg.Fields
	if fields == (types.FieldWeights{}) {
		fields = DefaultFieldWeights
	}
	if defaultArea == "" {
		defaultArea = DefaultArea
	}

	s := &Scorer{
		fields:        fields,
		priority:      make(map[string]float64, len(priorities)),
		abstractLimit: cfg.AbstractLimit,
		defaultArea:   defaultArea,
	}
	for _, p := range priorities {
		s.priority[p.Area] = p.Multiplier
	}

	seen := make(map[string]bool)
	for _, area := range CanonicalAreas {
		seen[area] = true
	}
	s.areas = append(s.areas, CanonicalAreas...)
	for _, k := range keywords {
		kw := cleanText(k.Keyword)
		if kw == "" || k.Area == "" || k.Weight <= 0 {
			continue
		}
		s.rules = append(s.rules, scoringRule{
			keyword: kw,
			area:    k.Area,
			weight:  k.Weight,
			re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
		})
		if !seen[k.Area] {
			seen[k.Area] = true
			s.areas = append(s.areas, k.Area)
		}
	}
	return s
}

// Areas returns the areas every score covers: the canonical areas, then
// any others named by the keyword table.
func (s *Scorer) Areas() []string { return s.areas }

// AreaScore is the result of scoring one publication.
type AreaScore struct {
	// Raw holds each area's weighted keyword sum after its priority
	// multiplier.
	Raw map[string]float64

	// Probabilities are Raw normalized to sum to 1. A publication with no
	// matches gets an equal share in every area.
	Probabilities map[string]float64

	// Matched lists the keywords found, per area, in table order.
	Matched map[string][]string

	// Primary is the area with the highest probability.
	Primary string
}

// Confidence buckets the primary area's probability.
func (a AreaScore) Confidence() Confidence {
	switch p := a.Probabilities[a.Primary]; {
	case p >= highConfidence:
		return ConfidenceHigh
	case p >= mediumConfidence:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// MultiArea reports whether at least two areas hold more than a fifth of
// the weight.
func (a AreaScore) MultiArea() bool {
	n := 0
	for _, p := range a.Probabilities {
		if p > multiAreaShare {
			n++
		}
	}
	return n >= 2
}

// Score computes the area probabilities of p.
func (s *Scorer) Score(p types.Publication) AreaScore {
	abstract := p.Abstract
	if s.abstractLimit > 0 {
		if r := []rune(abstract); len(r) > s.abstractLimit {
			abstract = string(r[:s.abstractLimit])
		}
	}
	title := cleanText(p.Title)
	abstract = cleanText(abstract)
	keywords := cleanText(strings.Join(p.Keywords, " "))

	score := AreaScore{
		Raw:           make(map[string]float64, len(s.areas)),
		Probabilities: make(map[string]float64, len(s.areas)),
		Matched:       make(map[string][]string),
	}
	for _, area := range s.areas {
		score.Raw[area] = 0
	}

	for _, r := range s.rules {
		var total float64
		if title != "" && r.re.MatchString(title) {
			total += r.weight * s.fields.Title
		}
		if abstract != "" && r.re.MatchString(abstract) {
			total += r.weight * s.fields.Abstract
		}
		if keywords != "" && r.re.MatchString(keywords) {
			total += r.weight * s.fields.Keywords
		}
		if total > 0 {
			score.Raw[r.area] += total
			score.Matched[r.area] = append(score.Matched[r.area], r.keyword)
		}
	}

	var sum float64
	for _, area := range s.areas {
		if m, ok := s.priority[area]; ok {
			score.Raw[area] *= m
		}
		sum += score.Raw[area]
	}
	for _, area := range s.areas {
		if sum > 0 {
			score.Probabilities[area] = score.Raw[area] / sum
		} else {
			score.Probabilities[area] = 1 / float64(len(s.areas))
		}
	}

	score.Primary = s.defaultArea
	best := score.Probabilities[s.defaultArea]
	for _, area := range s.areas {
		if score.Probabilities[area] > best {
			score.Primary, best = area, score.Probabilities[area]
		}
	}
	return score
}

// ScoreReport summarizes a ScoreAll run.
type ScoreReport struct {
	Scored    int
	Relabeled int
	High      int
	Medium    int
	Low       int
	MultiArea int
}

// ScoreAll scores every publication and returns copies with
// CategoryProbabilities and ResearchArea replaced. All other fields,
// including the featured flag, are kept. pubs is not modified.
func (s *Scorer) ScoreAll(pubs []types.Publication) ([]types.Publication, ScoreReport) {
	out := make([]types.Publication, len(pubs))
	var report ScoreReport
	for i, p := range pubs {
		score := s.Score(p)
		c := p.Clone()
		c.CategoryProbabilities = score.Probabilities
		if c.ResearchArea != score.Primary {
			report.Relabeled++
		}
		c.ResearchArea = score.Primary
		out[i] = c

		report.Scored++
		switch score.Confidence() {
		case ConfidenceHigh:
			report.High++
		case ConfidenceMedium:
			report.Medium++
		default:
			report.Low++
		}
		if score.MultiArea() {
			report.MultiArea++
		}
	}
	return out, report
}

// cleanText lower-cases text and replaces everything but letters, digits,
// underscores and hyphens with single spaces.
func cleanText(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

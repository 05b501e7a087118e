// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubstats/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// OwnerConfig identifies the portfolio owner in author lists.
type OwnerConfig struct {
	// Names are the display-name spellings that identify the owner.
	Names []string `json:"names" yaml:"names" mapstructure:"names"`
}

// DataConfig locates the portfolio JSON documents.
type DataConfig struct {
	// PublicationsPath is the local publications_data.json.
	PublicationsPath string `json:"publications_path" yaml:"publications_path" mapstructure:"publications_path"`

	// MenteesPath is the local mentees.json.
	MenteesPath string `json:"mentees_path" yaml:"mentees_path" mapstructure:"mentees_path"`

	// RemoteBaseURL, when set, is tried before the local files. The local
	// files serve as the static fallback.
	RemoteBaseURL string `json:"remote_base_url,omitempty" yaml:"remote_base_url,omitempty" mapstructure:"remote_base_url"`
}

// ADSConfig holds settings for tagging authorship from ADS libraries.
type ADSConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the ADS API root (default https://api.adsabs.harvard.edu/v1).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// APIKey is the ADS bearer token.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// Libraries maps authorship tag (all, primary, student, significant)
	// to ADS library ID.
	Libraries map[string]string `json:"libraries" yaml:"libraries" mapstructure:"libraries"`

	// RequestsPerSecond paces library page requests (default 5).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" mapstructure:"requests_per_second"`

	// CachePath is the SQLite file caching library membership.
	CachePath string `json:"cache_path" yaml:"cache_path" mapstructure:"cache_path"`

	// CacheTTL is how long cached membership is trusted (default 7 days).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache_ttl"`
}

// OpenAlexConfig holds settings for importing works from OpenAlex.
type OpenAlexConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// AuthorID is the OpenAlex author identifier (e.g. "A5023888391").
	AuthorID string `json:"author_id" yaml:"author_id" mapstructure:"author_id"`

	// Email is sent as mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`

	// PerPage is the page size for works queries (default 100, max 200).
	PerPage int `json:"per_page" yaml:"per_page" mapstructure:"per_page"`
}

// FeaturedConfig lists title patterns of papers to feature.
type FeaturedConfig struct {
	Patterns []string `json:"patterns" yaml:"patterns" mapstructure:"patterns"`
}

// KeywordRule maps a lower-case phrase to a research area.
type KeywordRule struct {
	Keyword string `json:"keyword" yaml:"keyword" mapstructure:"keyword"`
	Area    string `json:"area" yaml:"area" mapstructure:"area"`
}

// CategoriesConfig overrides the research-area keyword fallback.
type CategoriesConfig struct {
	// Keywords is evaluated top to bottom; the first match wins.
	Keywords []KeywordRule `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords"`

	// Default is the area used when no keyword matches.
	Default string `json:"default,omitempty" yaml:"default,omitempty" mapstructure:"default"`
}

// WeightedKeyword adds Weight to Area for each publication field the
// phrase occurs in.
type WeightedKeyword struct {
	Keyword string  `json:"keyword" yaml:"keyword" mapstructure:"keyword"`
	Area    string  `json:"area" yaml:"area" mapstructure:"area"`
	Weight  float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// FieldWeights multiply a keyword's weight by the field it was found in.
type FieldWeights struct {
	Title    float64 `json:"title" yaml:"title" mapstructure:"title"`
	Abstract float64 `json:"abstract" yaml:"abstract" mapstructure:"abstract"`
	Keywords float64 `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
}

// AreaPriority scales an area's summed score before normalization.
type AreaPriority struct {
	Area       string  `json:"area" yaml:"area" mapstructure:"area"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier" mapstructure:"multiplier"`
}

// ScoringConfig controls how research-area probabilities are computed.
type ScoringConfig struct {
	// Keywords replaces the built-in weighted table when non-empty.
	Keywords []WeightedKeyword `json:"keywords,omitempty" yaml:"keywords,omitempty" mapstructure:"keywords"`

	// Fields are the per-field multipliers (default title 3, abstract 1,
	// keywords 2).
	Fields FieldWeights `json:"fields" yaml:"fields" mapstructure:"fields"`

	// Priorities replaces the built-in area multipliers when non-empty.
	// Areas without an entry use 1.
	Priorities []AreaPriority `json:"priorities,omitempty" yaml:"priorities,omitempty" mapstructure:"priorities"`

	// AbstractLimit truncates abstracts to this many characters before
	// matching (default 800, 0 for no limit).
	AbstractLimit int `json:"abstract_limit" yaml:"abstract_limit" mapstructure:"abstract_limit"`
}

// ExportConfig holds settings for the chart report.
type ExportConfig struct {
	// OutputDir receives stats.json and stats.yaml.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`
}

// Config groups all stage configurations.
type Config struct {
	Owner      OwnerConfig      `json:"owner" yaml:"owner" mapstructure:"owner"`
	Data       DataConfig       `json:"data" yaml:"data" mapstructure:"data"`
	ADS        ADSConfig        `json:"ads" yaml:"ads" mapstructure:"ads"`
	OpenAlex   OpenAlexConfig   `json:"openalex" yaml:"openalex" mapstructure:"openalex"`
	Featured   FeaturedConfig   `json:"featured" yaml:"featured" mapstructure:"featured"`
	Categories CategoriesConfig `json:"categories" yaml:"categories" mapstructure:"categories"`
	Scoring    ScoringConfig    `json:"scoring" yaml:"scoring" mapstructure:"scoring"`
	Export     ExportConfig     `json:"export" yaml:"export" mapstructure:"export"`
}

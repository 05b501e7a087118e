// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config decodes pubstats settings from viper into the typed
// structs in pkg/types and fills in defaults.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubstats/internal/ads"
	"github.com/pdiddy/pubstats/internal/aggregate"
	"github.com/pdiddy/pubstats/internal/classify"
	"github.com/pdiddy/pubstats/internal/featured"
	"github.com/pdiddy/pubstats/internal/libcache"
	"github.com/pdiddy/pubstats/internal/secrets"
	"github.com/pdiddy/pubstats/internal/source"
	"github.com/pdiddy/pubstats/pkg/types"
)

// EnvPrefix prefixes environment overrides, e.g. PUBSTATS_ADS_API_KEY.
const EnvPrefix = "PUBSTATS"

// Secret file names read from the secrets directory.
const (
	SecretADSKey        = "ads-api-key"
	SecretOpenAlexEmail = "openalex-email"
)

// DefaultLibraries are the portfolio's ADS library IDs by authorship tag.
var DefaultLibraries = map[string]string{
	types.TagAll:         "YiaebBefTHKZdblrny2Vsw",
	types.TagPrimary:     "Jy98AvjOQXqykOSJ-bn96Q",
	types.TagSignificant: "X5RfsxxzRXC-BWjU11xa4A",
	types.TagStudent:     "yyWDBaVwS0GIrIkz2GKltg",
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("owner.names", classify.DefaultOwnerNames)

	v.SetDefault("data.publications_path", "assets/data/"+source.PublicationsFile)
	v.SetDefault("data.mentees_path", "assets/data/"+source.MenteesFile)
	v.SetDefault("data.remote_base_url", "")

	v.SetDefault("ads.base_url", ads.DefaultBaseURL)
	v.SetDefault("ads.api_key", "")
	v.SetDefault("ads.timeout", 30*time.Second)
	v.SetDefault("ads.user_agent", "pubstats")
	v.SetDefault("ads.max_retries", 5)
	v.SetDefault("ads.requests_per_second", 5.0)
	v.SetDefault("ads.cache_path", libcache.DefaultPath)
	v.SetDefault("ads.cache_ttl", 7*24*time.Hour)
	v.SetDefault("ads.libraries", DefaultLibraries)

	v.SetDefault("openalex.timeout", 30*time.Second)
	v.SetDefault("openalex.user_agent", "pubstats")
	v.SetDefault("openalex.max_retries", 5)
	v.SetDefault("openalex.per_page", 100)
	v.SetDefault("openalex.author_id", "")
	v.SetDefault("openalex.email", "")

	v.SetDefault("featured.patterns", featured.DefaultPatterns)
	v.SetDefault("categories.default", classify.DefaultArea)
	v.SetDefault("scoring.fields.title", classify.DefaultFieldWeights.Title)
	v.SetDefault("scoring.fields.abstract", classify.DefaultFieldWeights.Abstract)
	v.SetDefault("scoring.fields.keywords", classify.DefaultFieldWeights.Keywords)
	v.SetDefault("scoring.abstract_limit", classify.DefaultAbstractLimit)
	v.SetDefault("export.output_dir", "assets/data/charts")
}

// Load registers defaults and environment overrides on v, then decodes
// it into a Config. The ADS key falls back to $ADS_API_KEY.
func Load(v *viper.Viper) (types.Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.ADS.APIKey == "" {
		cfg.ADS.APIKey = os.Getenv("ADS_API_KEY")
	}
	cfg.Owner.Names = trimAll(cfg.Owner.Names)

	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// ApplySecrets fills credentials that are still empty from s. Values
// already set by config or environment are kept.
func ApplySecrets(cfg *types.Config, s secrets.Secrets) {
	cfg.ADS.APIKey = s.Get(SecretADSKey, cfg.ADS.APIKey)
	cfg.OpenAlex.Email = s.Get(SecretOpenAlexEmail, cfg.OpenAlex.Email)
}

// Validate rejects settings the pipeline cannot run with.
func Validate(cfg types.Config) error {
	if len(cfg.Owner.Names) == 0 {
		return fmt.Errorf("owner.names: at least one name is required")
	}
	for i, rule := range cfg.Categories.Keywords {
		if strings.TrimSpace(rule.Keyword) == "" || strings.TrimSpace(rule.Area) == "" {
			return fmt.Errorf("categories.keywords[%d]: keyword and area are required", i)
		}
	}
	for i, kw := range cfg.Scoring.Keywords {
		if strings.TrimSpace(kw.Keyword) == "" || strings.TrimSpace(kw.Area) == "" {
			return fmt.Errorf("scoring.keywords[%d]: keyword and area are required", i)
		}
		if kw.Weight <= 0 {
			return fmt.Errorf("scoring.keywords[%d]: weight must be positive", i)
		}
	}
	for i, p := range cfg.Scoring.Priorities {
		if strings.TrimSpace(p.Area) == "" || p.Multiplier < 0 {
			return fmt.Errorf("scoring.priorities[%d]: area is required and multiplier must not be negative", i)
		}
	}
	f := cfg.Scoring.Fields
	if f.Title < 0 || f.Abstract < 0 || f.Keywords < 0 {
		return fmt.Errorf("scoring.fields: weights must not be negative")
	}
	for tag := range cfg.ADS.Libraries {
		if !isLibraryTag(tag) {
			return fmt.Errorf("ads.libraries: unknown tag %q", tag)
		}
	}
	if cfg.ADS.RequestsPerSecond < 0 {
		return fmt.Errorf("ads.requests_per_second must not be negative")
	}
	return nil
}

// AggregateOptions maps the owner and category settings onto the
// aggregator's options. An empty keyword list keeps the built-in table.
func AggregateOptions(cfg types.Config) aggregate.Options {
	opts := aggregate.Options{
		OwnerNames:  cfg.Owner.Names,
		DefaultArea: cfg.Categories.Default,
	}
	if len(cfg.Categories.Keywords) > 0 {
		opts.Keywords = cfg.Categories.Keywords
	}
	return opts
}

func isLibraryTag(tag string) bool {
	switch tag {
	case types.TagAll, types.TagPrimary, types.TagStudent, types.TagSignificant:
		return true
	}
	return false
}

func trimAll(names []string) []string {
	out := names[:0:0]
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the chart report consumed by the site renderer.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubstats/internal/aggregate"
)

// File names written under the output directory.
const (
	JSONFile = "stats.json"
	YAMLFile = "stats.yaml"
)

// Report holds every derived series the charts need.
type Report struct {
	Summary                    aggregate.Summary        `json:"summary" yaml:"summary"`
	Counts                     map[string]int           `json:"counts" yaml:"counts"`
	PapersByYear               aggregate.CategorySeries `json:"papersByYear" yaml:"papersByYear"`
	CitationsByPublicationYear aggregate.CategorySeries `json:"citationsByPublicationYear" yaml:"citationsByPublicationYear"`
	AreaRings                  []aggregate.AreaRing     `json:"areaRings" yaml:"areaRings"`
	GeneratedAt                string                   `json:"generatedAt" yaml:"generatedAt"`
}

// Build derives a Report from an aggregation result.
func Build(r *aggregate.Result, generated time.Time) Report {
	counts := make(map[string]int)
	for cat, n := range r.Count() {
		counts[string(cat)] = n
	}
	return Report{
		Summary:                    aggregate.Summarize(r.All),
		Counts:                     counts,
		PapersByYear:               aggregate.PapersByYear(r),
		CitationsByPublicationYear: aggregate.CitationsByPublicationYear(r),
		AreaRings:                  aggregate.AreaRings(r),
		GeneratedAt:                generated.UTC().Format(time.RFC3339),
	}
}

// Write stores the report as stats.json and stats.yaml in dir, creating
// dir if needed. It returns the paths written.
func Write(dir string, report Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	yamlData, err := yaml.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{JSONFile, append(jsonData, '\n')},
		{YAMLFile, yamlData},
	}
	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

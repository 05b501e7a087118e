// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubstats/internal/featured"
)

var featureCmd = &cobra.Command{
	Use:   "feature [pattern...]",
	Short: "Flag featured publications by title pattern",
	Long: `Feature marks the first publication whose title contains each
pattern (case-insensitively) as featured. Patterns come from the
arguments, or from featured.patterns when none are given.

--clear removes every existing flag first.`,
	RunE: runFeature,
}

func init() {
	featureCmd.Flags().Bool("clear", false, "remove existing featured flags before flagging")

	rootCmd.AddCommand(featureCmd)
}

func runFeature(cmd *cobra.Command, args []string) error {
	doc, err := loadLocal(cmd.Context())
	if err != nil {
		return err
	}

	pubs := doc.Publications
	changed := false
	if reset, _ := cmd.Flags().GetBool("clear"); reset {
		var n int
		pubs, n = featured.Clear(pubs)
		fmt.Printf("Cleared %d featured flag(s)\n", n)
		changed = n > 0
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Featured.Patterns
	}
	pubs, report := featured.Flag(pubs, patterns)
	for _, m := range report.Matched {
		fmt.Printf("Featured: %s\n", m.Title)
	}
	for _, p := range report.Missing {
		fmt.Printf("Not found: %s\n", p)
	}

	if len(report.Matched) == 0 && !changed {
		return fmt.Errorf("no publications were flagged")
	}
	doc.Publications = pubs
	return saveLocal(doc, "featured")
}

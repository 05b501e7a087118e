// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubstats/internal/classify"
	"github.com/pdiddy/pubstats/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute research-area probabilities for every publication",
	Long: `Score matches each publication's title, abstract and keywords
against the weighted keyword table and writes the normalized
categoryProbabilities and the top researchArea back to the publications
file. The table, field weights and area priorities come from the scoring
section of the config; the built-in table is used when none is given.

With --dry-run nothing is written and the relabeled papers are listed.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().Bool("dry-run", false, "report what would change without writing")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	doc, err := loadLocal(cmd.Context())
	if err != nil {
		return err
	}

	scorer := classify.NewScorer(cfg.Scoring, cfg.Categories.Default)
	scored, report := scorer.ScoreAll(doc.Publications)
	logger.Debug("scored publications", "scored", report.Scored, "relabeled", report.Relabeled)
	printScoreReport(os.Stdout, report)

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		printRelabeled(os.Stdout, doc.Publications, scored)
		return nil
	}
	doc.Publications = scored
	return saveLocal(doc, "scoring")
}

func printScoreReport(w io.Writer, r classify.ScoreReport) {
	fmt.Fprintf(w, "Scored %d publication(s), %d relabeled\n", r.Scored, r.Relabeled)
	if r.Scored == 0 {
		return
	}
	pct := func(n int) float64 { return 100 * float64(n) / float64(r.Scored) }
	fmt.Fprintf(w, "  High confidence (>=50%%):   %3d (%.1f%%)\n", r.High, pct(r.High))
	fmt.Fprintf(w, "  Medium confidence (30-50%%): %3d (%.1f%%)\n", r.Medium, pct(r.Medium))
	fmt.Fprintf(w, "  Low confidence (<30%%):     %3d (%.1f%%)\n", r.Low, pct(r.Low))
	fmt.Fprintf(w, "  Multiple areas (2+ >20%%):  %3d (%.1f%%)\n", r.MultiArea, pct(r.MultiArea))
}

// printRelabeled lists publications whose researchArea would change.
func printRelabeled(w io.Writer, before, after []types.Publication) {
	for i := range before {
		old, now := before[i].ResearchArea, after[i].ResearchArea
		if old == now {
			continue
		}
		if old == "" {
			old = "(none)"
		}
		fmt.Fprintf(w, "%s\n  %s -> %s (%.2f)\n", strings.TrimSpace(before[i].Title), old, now,
			after[i].CategoryProbabilities[now])
	}
}

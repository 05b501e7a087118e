// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubstats/internal/classify"
	"github.com/pdiddy/pubstats/internal/export"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Categorize publications and print summary statistics",
	Long: `Stats loads the publications and mentee roster, partitions the
publications by authorship and research area, and prints the counts,
citation metrics and per-year series.

With --export the chart report is written as stats.json and stats.yaml
under the export directory.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().Bool("json", false, "print the full report as JSON")
	statsCmd.Flags().Bool("export", false, "write stats.json and stats.yaml to the export directory")
	statsCmd.Flags().String("out", "", "export directory (overrides export.output_dir)")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s := newSession()
	if err := s.Load(cmd.Context()); err != nil {
		return err
	}
	report := s.Stats()

	if doExport, _ := cmd.Flags().GetBool("export"); doExport {
		dir, _ := cmd.Flags().GetString("out")
		if dir == "" {
			dir = cfg.Export.OutputDir
		}
		paths, err := export.Write(dir, report)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(os.Stderr, "Exported %s\n", p)
		}
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printStats(os.Stdout, report)
	if doc := s.Document(); doc != nil && doc.LastUpdated != "" {
		fmt.Printf("\nData last updated %s\n", doc.LastUpdated)
	}
	return nil
}

func printStats(w io.Writer, r export.Report) {
	fmt.Fprintf(w, "Papers: %d  Citations: %d  h-index: %d  i10-index: %d\n\n",
		r.Summary.TotalPapers, r.Summary.TotalCitations, r.Summary.HIndex, r.Summary.I10Index)

	fmt.Fprintf(w, "%-24s  %s\n", "Category", "Papers")
	fmt.Fprintln(w, strings.Repeat("-", 32))
	for _, cat := range classify.Categories {
		fmt.Fprintf(w, "%-24s  %d\n", cat, r.Counts[string(cat)])
	}

	fmt.Fprintf(w, "\n%-6s  %7s  %7s  %7s  %7s  %7s  %9s\n",
		"Year", "Primary", "Student", "Signif.", "Other", "Total", "Citations")
	fmt.Fprintln(w, strings.Repeat("-", 62))
	for _, year := range r.PapersByYear.Years {
		counts, _ := r.PapersByYear.At(year)
		cites, _ := r.CitationsByPublicationYear.At(year)
		fmt.Fprintf(w, "%-6d", year)
		for _, cat := range classify.Categories {
			fmt.Fprintf(w, "  %7d", counts.Get(cat))
		}
		fmt.Fprintf(w, "  %7d  %9d\n", counts.Total, cites.Total)
	}

	fmt.Fprintf(w, "\n%-28s  %8s  %12s\n", "Research area", "All time", "Last 5 years")
	fmt.Fprintln(w, strings.Repeat("-", 52))
	for _, ring := range r.AreaRings {
		fmt.Fprintf(w, "%-28s  %8.1f  %12.1f\n", ring.Area, ring.AllTime, ring.LastFiveYears)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/internal/openalex"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Import works from OpenAlex into the publications file",
	Long: `Fetch queries OpenAlex for every work by the configured author and
merges the results into publications_data.json. Existing entries are
matched by DOI or title; their citation counts are refreshed and missing
identifiers filled in. Curated fields such as authorship tags and
featured flags are never overwritten. New works are appended.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("author", "", "OpenAlex author ID (overrides openalex.author_id)")
	fetchCmd.Flags().Bool("dry-run", false, "report the merge without writing the publications file")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	author, _ := cmd.Flags().GetString("author")
	if author == "" {
		author = cfg.OpenAlex.AuthorID
	}
	if author == "" {
		return fmt.Errorf("no OpenAlex author: set openalex.author_id or pass --author")
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	doc, err := loadLocal(ctx)
	if err != nil {
		return err
	}

	hc := httputil.NewClient(cfg.OpenAlex.Timeout, 10, cfg.OpenAlex.MaxRetries, logger)
	hc.UserAgent = cfg.OpenAlex.UserAgent
	works, err := openalex.NewClient(cfg.OpenAlex, hc, logger).AuthorWorks(ctx, author)
	if err != nil {
		return err
	}

	merged, summary := openalex.Merge(doc.Publications, works)
	fmt.Printf("Fetched %d works: %d updated, %d added, %d unchanged\n",
		len(works), summary.Updated, summary.Added, summary.Unchanged)

	if dryRun || summary.Updated+summary.Added == 0 {
		return nil
	}
	doc.Publications = merged
	return saveLocal(doc, "OpenAlex")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubstats/internal/ads"
	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/internal/libcache"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Tag publications with authorship categories from ADS libraries",
	Long: `Tag reads the configured ADS libraries (all, primary, student,
significant) and sets each publication's authorshipCategories from its
library membership. Library contents are cached in SQLite; the cache is
reused until it expires or --refresh is given.

Papers missing from the "all" library are listed for manual review.`,
	RunE: runTag,
}

func init() {
	tagCmd.Flags().Bool("refresh", false, "refetch libraries even if the cache is fresh")
	tagCmd.Flags().Bool("dry-run", false, "report the tagging without writing the publications file")
	tagCmd.Flags().StringArray("override", nil, "manual tags as BIBCODE=tag[,tag] (repeatable)")

	rootCmd.AddCommand(tagCmd)
}

func runTag(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	refresh, _ := cmd.Flags().GetBool("refresh")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	rawOverrides, _ := cmd.Flags().GetStringArray("override")

	overrides, err := parseOverrides(rawOverrides)
	if err != nil {
		return err
	}

	doc, err := loadLocal(ctx)
	if err != nil {
		return err
	}

	store, err := libcache.Open(cfg.ADS.CachePath)
	if err != nil {
		return err
	}
	defer store.Close()

	libs, err := libraries(ctx, store, refresh)
	if err != nil {
		return err
	}

	tagged, summary := ads.Tag(doc.Publications, libs, overrides)
	fmt.Printf("Tagged %d of %d publications (%d in no specific library, %d unlisted)\n",
		summary.Tagged, summary.Total(), summary.AllOnly, summary.Unlisted)
	for _, title := range summary.UnlistedTitles {
		fmt.Printf("  unlisted: %s\n", title)
	}

	if dryRun {
		return nil
	}
	doc.Publications = tagged
	return saveLocal(doc, "ADS")
}

// libraries returns library membership from the cache when it is fresh,
// otherwise from ADS, refreshing the cache.
func libraries(ctx context.Context, store *libcache.Store, refresh bool) (ads.Libraries, error) {
	tags := make([]string, 0, len(cfg.ADS.Libraries))
	for tag := range cfg.ADS.Libraries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	if !refresh {
		fresh, err := store.Fresh(ctx, tags, cfg.ADS.CacheTTL)
		if err != nil {
			return nil, err
		}
		if fresh {
			lists, err := store.Load(ctx)
			if err != nil {
				return nil, err
			}
			logger.Info("using cached ADS libraries", "path", cfg.ADS.CachePath)
			return ads.NewLibraries(lists), nil
		}
	}

	hc := httputil.NewClient(cfg.ADS.Timeout, cfg.ADS.RequestsPerSecond, cfg.ADS.MaxRetries, logger)
	hc.UserAgent = cfg.ADS.UserAgent
	client, err := ads.NewClient(cfg.ADS, hc, logger)
	if err != nil {
		return nil, err
	}
	libs, err := client.FetchLibraries(ctx, cfg.ADS.Libraries)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, cfg.ADS.Libraries, libs.Lists()); err != nil {
		return nil, fmt.Errorf("caching libraries: %w", err)
	}
	return libs, nil
}

// parseOverrides parses BIBCODE=tag[,tag] values.
func parseOverrides(values []string) (map[string][]string, error) {
	out := make(map[string][]string, len(values))
	for _, v := range values {
		code, tags, ok := strings.Cut(v, "=")
		code = strings.TrimSpace(code)
		if !ok || code == "" || strings.TrimSpace(tags) == "" {
			return nil, fmt.Errorf("invalid override %q: want BIBCODE=tag[,tag]", v)
		}
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				out[code] = append(out[code], t)
			}
		}
	}
	return out, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ads

import "github.com/pdiddy/pubstats/pkg/types"

// specificTags are checked in this order; a paper's tags follow it.
var specificTags = []string{types.TagPrimary, types.TagStudent, types.TagSignificant}

// TagSummary counts the outcome of a tagging run.
type TagSummary struct {
	// Tagged papers got at least one specific tag.
	Tagged int
	// AllOnly papers are in the all library but no specific one.
	AllOnly int
	// Unlisted papers are missing from the all library.
	Unlisted int
	// UnlistedTitles names the unlisted papers for manual review.
	UnlistedTitles []string
}

// Total returns the number of papers processed.
func (s TagSummary) Total() int {
	return s.Tagged + s.AllOnly + s.Unlisted
}

// Tag returns a copy of pubs with AuthorshipCategories set from library
// membership. Papers missing from the all library, and papers in it but
// in no specific library, are tagged ["all"]. Manual overrides, keyed by
// bibcode or id, are merged into the library tags.
func Tag(pubs []types.Publication, libs Libraries, overrides map[string][]string) ([]types.Publication, TagSummary) {
	out := make([]types.Publication, len(pubs))
	var summary TagSummary

	for i, p := range pubs {
		p = p.Clone()
		ids := p.Identifiers()

		var tags []string
		if libs.Contains(types.TagAll, ids) {
			for _, tag := range specificTags {
				if libs.Contains(tag, ids) {
					tags = append(tags, tag)
				}
			}
		} else {
			summary.UnlistedTitles = append(summary.UnlistedTitles, p.Title)
		}
		tags = mergeOverride(tags, ids, overrides)

		inAll := libs.Contains(types.TagAll, ids)
		switch {
		case !inAll:
			summary.Unlisted++
		case len(tags) == 0:
			summary.AllOnly++
		default:
			summary.Tagged++
		}

		if len(tags) == 0 {
			tags = []string{types.TagAll}
		}
		p.AuthorshipCategories = tags
		out[i] = p
	}

	return out, summary
}

func mergeOverride(tags, ids []string, overrides map[string][]string) []string {
	for _, id := range ids {
		extra, ok := overrides[id]
		if !ok {
			continue
		}
		for _, t := range extra {
			if !contains(tags, t) {
				tags = append(tags, t)
			}
		}
		break
	}
	return tags
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

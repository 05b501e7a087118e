// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package openalex imports an author's works from the OpenAlex API and
// merges them into the portfolio's publication list.
package openalex

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/pkg/types"
)

// worksBase is the OpenAlex Works endpoint. Declared as a var so tests
// can substitute an httptest server.
var worksBase = "https://api.openalex.org/works"

const (
	defaultPerPage = 100
	maxPerPage     = 200
	// maxPages bounds cursor paging for a single author.
	maxPages = 50
)

// Client queries OpenAlex for an author's works.
type Client struct {
	http    *httputil.Client
	email   string
	perPage int
	logger  *slog.Logger
}

// NewClient builds a Client from cfg. A nil hc gets a client paced at
// 10 requests per second, the OpenAlex polite-pool limit.
func NewClient(cfg types.OpenAlexConfig, hc *httputil.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if hc == nil {
		hc = httputil.NewClient(cfg.Timeout, 10, cfg.MaxRetries, logger)
		hc.UserAgent = cfg.UserAgent
	}
	perPage := cfg.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return &Client{http: hc, email: cfg.Email, perPage: perPage, logger: logger}
}

// AuthorWorks returns every work attributed to authorID, following the
// response cursor until it runs out.
func (c *Client) AuthorWorks(ctx context.Context, authorID string) ([]types.Publication, error) {
	authorID = strings.TrimPrefix(strings.TrimSpace(authorID), "https://openalex.org/")
	if authorID == "" {
		return nil, fmt.Errorf("empty OpenAlex author ID")
	}

	var pubs []types.Publication
	cursor := "*"
	for page := 0; cursor != "" && page < maxPages; page++ {
		params := url.Values{
			"filter":   {"author.id:" + authorID},
			"per_page": {strconv.Itoa(c.perPage)},
			"cursor":   {cursor},
		}
		if c.email != "" {
			params.Set("mailto", c.email)
		}

		var resp worksResponse
		if err := c.http.GetJSON(ctx, worksBase+"?"+params.Encode(), nil, &resp); err != nil {
			return nil, fmt.Errorf("OpenAlex works for %s: %w", authorID, err)
		}
		for _, w := range resp.Results {
			if strings.TrimSpace(w.Title) == "" {
				continue
			}
			pubs = append(pubs, w.publication())
		}
		c.logger.Debug("openalex page", "author", authorID, "page", page, "works", len(resp.Results))

		if len(resp.Results) == 0 {
			break
		}
		cursor = resp.Meta.NextCursor
	}

	c.logger.Info("fetched openalex works", "author", authorID, "works", len(pubs))
	return pubs, nil
}

func (w work) publication() types.Publication {
	p := types.Publication{
		Title:     strings.TrimSpace(w.Title),
		Citations: w.CitedByCount,
		Abstract:  reconstructAbstract(w.AbstractInvertedIndex),
		DOI:       strings.TrimPrefix(w.DOI, "https://doi.org/"),
		OpenAlex:  strings.TrimPrefix(w.ID, "https://openalex.org/"),
	}
	if w.PublicationYear > 0 {
		p.Year = types.IntPtr(w.PublicationYear)
	}
	for _, a := range w.Authorships {
		if a.Author.DisplayName != "" {
			p.Authors = append(p.Authors, a.Author.DisplayName)
		}
	}
	if w.PrimaryLocation.Source != nil {
		p.Journal = w.PrimaryLocation.Source.DisplayName
	}
	if arxiv, ok := w.IDs["arxiv"].(string); ok {
		p.ArxivID = strings.TrimPrefix(arxiv, "https://arxiv.org/abs/")
	}
	return p
}

// reconstructAbstract converts OpenAlex's abstract_inverted_index back to
// plain text. The inverted index maps each word to a list of positions
// where that word appears.
func reconstructAbstract(invertedIndex map[string][]int) string {
	if len(invertedIndex) == 0 {
		return ""
	}

	type posWord struct {
		pos  int
		word string
	}
	var pairs []posWord
	for word, positions := range invertedIndex {
		for _, pos := range positions {
			pairs = append(pairs, posWord{pos: pos, word: word})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].pos < pairs[j].pos
	})

	words := make([]string, len(pairs))
	for i, p := range pairs {
		words[i] = p.word
	}
	return strings.Join(words, " ")
}

// OpenAlex API JSON structures.
type worksResponse struct {
	Meta    worksMeta `json:"meta"`
	Results []work    `json:"results"`
}

type worksMeta struct {
	Count      int    `json:"count"`
	NextCursor string `json:"next_cursor"`
}

type work struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	DOI                   string           `json:"doi"`
	PublicationYear       int              `json:"publication_year"`
	CitedByCount          int              `json:"cited_by_count"`
	Authorships           []authorship     `json:"authorships"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
	PrimaryLocation       location         `json:"primary_location"`
	IDs                   map[string]any   `json:"ids"`
}

type authorship struct {
	Author struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"author"`
}

type location struct {
	Source *struct {
		DisplayName string `json:"display_name"`
	} `json:"source"`
}

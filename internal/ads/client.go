// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ads reads curated authorship libraries from the NASA ADS
// bibliographic service and tags publications with the libraries they
// belong to.
package ads

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/pkg/types"
)

// DefaultBaseURL is the ADS API root.
const DefaultBaseURL = "https://api.adsabs.harvard.edu/v1"

// pageSize is the number of documents requested per library page.
const pageSize = 200

// maxConcurrentLibraries bounds parallel library fetches.
const maxConcurrentLibraries = 4

// Client reads ADS libraries.
type Client struct {
	http    *httputil.Client
	baseURL string
	token   string
	logger  *slog.Logger
}

// NewClient builds a Client from cfg. A nil hc gets a paced client built
// from cfg's timeout and rate settings.
func NewClient(cfg types.ADSConfig, hc *httputil.Client, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ADS API key required: set ads.api_key, ADS_API_KEY, or .secrets/ads-api-key")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if hc == nil {
		perSecond := cfg.RequestsPerSecond
		if perSecond <= 0 {
			perSecond = 5
		}
		hc = httputil.NewClient(cfg.Timeout, perSecond, cfg.MaxRetries, logger)
		hc.UserAgent = cfg.UserAgent
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(base, "/"),
		token:   cfg.APIKey,
		logger:  logger,
	}, nil
}

// libraryPage is the subset of a biblib response pubstats reads. Older
// deployments return bibcodes under solr.docs instead of documents.
type libraryPage struct {
	Documents []string `json:"documents"`
	Solr      struct {
		Docs []struct {
			Bibcode string `json:"bibcode"`
		} `json:"docs"`
	} `json:"solr"`
}

func (p libraryPage) bibcodes() []string {
	if len(p.Documents) > 0 {
		return p.Documents
	}
	var out []string
	for _, d := range p.Solr.Docs {
		if d.Bibcode != "" {
			out = append(out, d.Bibcode)
		}
	}
	return out
}

// Library returns every bibcode in the library with the given ID. It pages
// through the library until a page comes back short.
func (c *Client) Library(ctx context.Context, id string) ([]string, error) {
	header := http.Header{"Authorization": {"Bearer " + c.token}}
	seen := make(map[string]bool)
	var bibcodes []string

	for start := 0; ; {
		params := url.Values{
			"start": {strconv.Itoa(start)},
			"rows":  {strconv.Itoa(pageSize)},
		}
		reqURL := c.baseURL + "/biblib/libraries/" + url.PathEscape(id) + "?" + params.Encode()

		var page libraryPage
		if err := c.http.GetJSON(ctx, reqURL, header, &page); err != nil {
			return nil, fmt.Errorf("fetching library %s: %w", id, err)
		}

		batch := page.bibcodes()
		for _, b := range batch {
			if b != "" && !seen[b] {
				seen[b] = true
				bibcodes = append(bibcodes, b)
			}
		}
		c.logger.Debug("library page", "library", id, "start", start, "documents", len(batch))

		if len(batch) < pageSize {
			break
		}
		start += len(batch)
	}

	return bibcodes, nil
}

// Libraries maps an authorship tag to the set of bibcodes in its library.
type Libraries map[string]map[string]bool

// NewLibraries builds Libraries from bibcode lists.
func NewLibraries(lists map[string][]string) Libraries {
	libs := make(Libraries, len(lists))
	for tag, codes := range lists {
		set := make(map[string]bool, len(codes))
		for _, c := range codes {
			set[c] = true
		}
		libs[tag] = set
	}
	return libs
}

// Lists returns the bibcodes of each library, sorted.
func (l Libraries) Lists() map[string][]string {
	out := make(map[string][]string, len(l))
	for tag, set := range l {
		codes := make([]string, 0, len(set))
		for c := range set {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		out[tag] = codes
	}
	return out
}

// Contains reports whether any of ids is in the library for tag.
func (l Libraries) Contains(tag string, ids []string) bool {
	set := l[tag]
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}

// FetchLibraries reads every configured library concurrently. libs maps
// authorship tag to library ID. The client's limiter still paces the
// combined requests. The first failure cancels the remaining fetches.
func (c *Client) FetchLibraries(ctx context.Context, libs map[string]string) (Libraries, error) {
	tags := make([]string, 0, len(libs))
	for tag := range libs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	sets := make([]map[string]bool, len(tags))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLibraries)
	for i, tag := range tags {
		i, tag := i, tag
		g.Go(func() error {
			codes, err := c.Library(gctx, libs[tag])
			if err != nil {
				return fmt.Errorf("library %q: %w", tag, err)
			}
			c.logger.Info("fetched library", "tag", tag, "papers", len(codes))
			set := make(map[string]bool, len(codes))
			for _, code := range codes {
				set[code] = true
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(Libraries, len(tags))
	for i, tag := range tags {
		out[tag] = sets[i]
	}
	return out, nil
}

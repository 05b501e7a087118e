// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads the portfolio's publication and mentee documents
// from local files or from the deployed site, with a static fallback.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/pkg/types"
)

// Document names under a site's data directory.
const (
	PublicationsFile = "publications_data.json"
	MenteesFile      = "mentees.json"
)

// Source supplies the two documents the aggregator consumes.
type Source interface {
	Publications(ctx context.Context) (*types.PublicationsDocument, error)
	Mentees(ctx context.Context) (*types.MenteeDocument, error)
}

// FileSource reads the documents from disk. An empty MenteesPath yields an
// empty roster.
type FileSource struct {
	PublicationsPath string
	MenteesPath      string
}

// Publications reads and decodes PublicationsPath.
func (s FileSource) Publications(_ context.Context) (*types.PublicationsDocument, error) {
	var doc types.PublicationsDocument
	if err := readJSON(s.PublicationsPath, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Mentees reads and decodes MenteesPath.
func (s FileSource) Mentees(_ context.Context) (*types.MenteeDocument, error) {
	if s.MenteesPath == "" {
		return &types.MenteeDocument{}, nil
	}
	var doc types.MenteeDocument
	if err := readJSON(s.MenteesPath, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// WritePublications writes doc to path as indented JSON, creating parent
// directories. HTML-sensitive characters are left unescaped so titles with
// "&" and "<" survive round trips unchanged.
func WritePublications(path string, doc *types.PublicationsDocument) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// HTTPSource fetches the documents from a deployed site, e.g.
// https://example.org/assets/data.
type HTTPSource struct {
	BaseURL string
	Client  *httputil.Client
}

func (s HTTPSource) url(name string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + name
}

// Publications fetches publications_data.json.
func (s HTTPSource) Publications(ctx context.Context) (*types.PublicationsDocument, error) {
	var doc types.PublicationsDocument
	if err := s.Client.GetJSON(ctx, s.url(PublicationsFile), nil, &doc); err != nil {
		return nil, fmt.Errorf("fetching publications: %w", err)
	}
	return &doc, nil
}

// Mentees fetches mentees.json.
func (s HTTPSource) Mentees(ctx context.Context) (*types.MenteeDocument, error) {
	var doc types.MenteeDocument
	if err := s.Client.GetJSON(ctx, s.url(MenteesFile), nil, &doc); err != nil {
		return nil, fmt.Errorf("fetching mentees: %w", err)
	}
	return &doc, nil
}

// FallbackSource serves Primary and falls back to Fallback on any error,
// the way the site falls back to its static content when a fetch fails.
type FallbackSource struct {
	Primary  Source
	Fallback Source
	Logger   *slog.Logger
}

func (s FallbackSource) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

// Publications tries Primary, then Fallback.
func (s FallbackSource) Publications(ctx context.Context) (*types.PublicationsDocument, error) {
	doc, err := s.Primary.Publications(ctx)
	if err == nil {
		return doc, nil
	}
	s.logger().Warn("publications unavailable, using fallback", "error", err)
	return s.Fallback.Publications(ctx)
}

// Mentees tries Primary, then Fallback.
func (s FallbackSource) Mentees(ctx context.Context) (*types.MenteeDocument, error) {
	doc, err := s.Primary.Mentees(ctx)
	if err == nil {
		return doc, nil
	}
	s.logger().Warn("mentees unavailable, using fallback", "error", err)
	return s.Fallback.Mentees(ctx)
}

// New builds the source described by cfg: local files, fronted by the
// remote site when RemoteBaseURL is set.
func New(cfg types.DataConfig, client *httputil.Client, logger *slog.Logger) Source {
	local := FileSource{PublicationsPath: cfg.PublicationsPath, MenteesPath: cfg.MenteesPath}
	if cfg.RemoteBaseURL == "" {
		return local
	}
	if client == nil {
		client = &httputil.Client{HTTP: http.DefaultClient, Logger: logger}
	}
	return FallbackSource{
		Primary:  HTTPSource{BaseURL: cfg.RemoteBaseURL, Client: client},
		Fallback: local,
		Logger:   logger,
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package portfolio holds the state of one portfolio view: the loaded
// documents, the memoized aggregation and the "load more" cursors of the
// publication lists. A Session has a single owner and is not safe for
// concurrent use.
package portfolio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pdiddy/pubstats/internal/aggregate"
	"github.com/pdiddy/pubstats/internal/export"
	"github.com/pdiddy/pubstats/internal/source"
	"github.com/pdiddy/pubstats/pkg/types"
)

// List names a paginated publication list.
type List string

const (
	ListAll         List = "all"
	ListPrimary     List = "primary"
	ListStudent     List = "student"
	ListSignificant List = "significant"
	ListOther       List = "other"
	ListFeatured    List = "featured"
)

// Lists enumerates every paginated list.
var Lists = []List{ListAll, ListPrimary, ListStudent, ListSignificant, ListOther, ListFeatured}

// ParseList validates a list name.
func ParseList(name string) (List, error) {
	for _, l := range Lists {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown list %q: use all, primary, student, significant, other, or featured", name)
}

// Session owns the loaded publications and mentee roster for one view.
type Session struct {
	src    source.Source
	opts   aggregate.Options
	logger *slog.Logger

	doc    *types.PublicationsDocument
	roster []types.Mentee
	result *aggregate.Result
	cursor map[List]int
}

// NewSession returns an empty session reading from src.
func NewSession(src source.Source, opts aggregate.Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{src: src, opts: opts, logger: logger, cursor: make(map[List]int)}
}

// Load fetches both documents and discards any previous result and
// pagination state. A failure to load mentees is not fatal: the session
// continues with an empty roster and the name heuristic matches no
// students.
func (s *Session) Load(ctx context.Context) error {
	doc, err := s.src.Publications(ctx)
	if err != nil {
		return fmt.Errorf("loading publications: %w", err)
	}

	var roster []types.Mentee
	mentees, err := s.src.Mentees(ctx)
	if err != nil {
		s.logger.Warn("mentees unavailable, continuing without roster", "error", err)
	} else {
		roster = mentees.Roster()
	}

	s.doc = doc
	s.roster = roster
	s.result = nil
	s.ResetPages()

	s.logger.Debug("session loaded", "publications", len(doc.Publications), "mentees", len(roster))
	return nil
}

// Loaded reports whether Load has succeeded.
func (s *Session) Loaded() bool { return s.doc != nil }

// Document returns the loaded publications document, or nil.
func (s *Session) Document() *types.PublicationsDocument { return s.doc }

// Publications returns the loaded publication list.
func (s *Session) Publications() []types.Publication {
	if s.doc == nil {
		return nil
	}
	return s.doc.Publications
}

// Roster returns the flattened mentee roster.
func (s *Session) Roster() []types.Mentee { return s.roster }

// Result returns the aggregation of the loaded data, computing it on first
// use. Before Load it aggregates an empty list.
func (s *Session) Result() *aggregate.Result {
	if s.result == nil {
		s.result = aggregate.Categorize(s.Publications(), s.roster, s.opts)
	}
	return s.result
}

// Recompute discards the memoized result and rebuilds it from scratch.
func (s *Session) Recompute() *aggregate.Result {
	s.result = nil
	return s.Result()
}

// Featured returns the featured publications in input order.
func (s *Session) Featured() []types.Publication {
	var out []types.Publication
	for _, p := range s.Publications() {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Items returns the full contents of list.
func (s *Session) Items(list List) []types.Publication {
	r := s.Result()
	switch list {
	case ListAll:
		return r.All
	case ListPrimary:
		return r.Primary
	case ListStudent:
		return r.Student
	case ListSignificant:
		return r.NonStudentSignificant
	case ListOther:
		return r.Other
	case ListFeatured:
		return s.Featured()
	}
	return nil
}

// NextPage returns up to n more items of list and advances its cursor.
// more reports whether items remain after this page. A non-positive n
// returns everything that is left.
func (s *Session) NextPage(list List, n int) (page []types.Publication, more bool) {
	items := s.Items(list)
	start := s.cursor[list]
	if start >= len(items) {
		return nil, false
	}
	end := len(items)
	if n > 0 && n < end-start {
		end = start + n
	}
	s.cursor[list] = end
	return items[start:end], end < len(items)
}

// ResetPages rewinds every list cursor.
func (s *Session) ResetPages() {
	s.cursor = make(map[List]int)
}

// Stats derives the dashboard report from the current result.
func (s *Session) Stats() export.Report {
	return export.Build(s.Result(), time.Now())
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package libcache persists ADS library membership in SQLite so repeated
// tagging runs do not refetch every library.
package libcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath is the cache location when none is configured.
const DefaultPath = ".cache/ads_library_cache.db"

// Store manages the library cache database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the cache database at path and its schema.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS libraries (
			tag TEXT PRIMARY KEY,
			library_id TEXT NOT NULL,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS library_members (
			tag TEXT NOT NULL REFERENCES libraries(tag) ON DELETE CASCADE,
			bibcode TEXT NOT NULL,
			PRIMARY KEY (tag, bibcode)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_members_bibcode ON library_members(bibcode)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save replaces the cached membership of every library in lists. ids maps
// tag to ADS library ID and is recorded for reference.
func (s *Store) Save(ctx context.Context, ids map[string]string, lists map[string][]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	fetched := s.now().UTC().Format(time.RFC3339Nano)

	for tag, codes := range lists {
		if _, err := tx.ExecContext(ctx, `DELETE FROM library_members WHERE tag = ?`, tag); err != nil {
			return fmt.Errorf("clearing library %s: %w", tag, err)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO libraries (tag, library_id, fetched_at) VALUES (?, ?, ?)
			 ON CONFLICT(tag) DO UPDATE SET library_id=excluded.library_id, fetched_at=excluded.fetched_at`,
			tag, ids[tag], fetched,
		)
		if err != nil {
			return fmt.Errorf("upserting library %s: %w", tag, err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT OR IGNORE INTO library_members (tag, bibcode) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("preparing insert: %w", err)
		}
		for _, code := range codes {
			if _, err := stmt.ExecContext(ctx, tag, code); err != nil {
				stmt.Close()
				return fmt.Errorf("inserting %s into %s: %w", code, tag, err)
			}
		}
		stmt.Close()
	}

	return tx.Commit()
}

// Load returns the cached bibcodes of every library, sorted. An empty
// cache returns an empty map.
func (s *Store) Load(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string)

	tags, err := s.db.QueryContext(ctx, `SELECT tag FROM libraries`)
	if err != nil {
		return nil, fmt.Errorf("querying libraries: %w", err)
	}
	for tags.Next() {
		var tag string
		if err := tags.Scan(&tag); err != nil {
			tags.Close()
			return nil, fmt.Errorf("scanning library: %w", err)
		}
		out[tag] = []string{}
	}
	if err := tags.Close(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT tag, bibcode FROM library_members ORDER BY tag, bibcode`)
	if err != nil {
		return nil, fmt.Errorf("querying members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag, code string
		if err := rows.Scan(&tag, &code); err != nil {
			return nil, fmt.Errorf("scanning member: %w", err)
		}
		out[tag] = append(out[tag], code)
	}
	return out, rows.Err()
}

// Age returns the time since the oldest library was fetched. ok is false
// when the cache is empty.
func (s *Store) Age(ctx context.Context) (age time.Duration, ok bool, err error) {
	var oldest sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT MIN(fetched_at) FROM libraries`).Scan(&oldest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("querying cache age: %w", err)
	}
	if !oldest.Valid {
		return 0, false, nil
	}
	t, err := time.Parse(time.RFC3339Nano, oldest.String)
	if err != nil {
		return 0, false, fmt.Errorf("parsing fetch time %q: %w", oldest.String, err)
	}
	return s.now().Sub(t), true, nil
}

// Fresh reports whether the cache holds every tag in want and is younger
// than ttl. A non-positive ttl never expires.
func (s *Store) Fresh(ctx context.Context, want []string, ttl time.Duration) (bool, error) {
	lists, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	for _, tag := range want {
		if _, ok := lists[tag]; !ok {
			return false, nil
		}
	}
	age, ok, err := s.Age(ctx)
	if err != nil || !ok {
		return false, err
	}
	return ttl <= 0 || age < ttl, nil
}

// Tags returns the cached library tags, sorted.
func (s *Store) Tags(ctx context.Context) ([]string, error) {
	lists, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(lists))
	for t := range lists {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, nil
}

// Clear removes every cached library.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()
	for _, stmt := range []string{`DELETE FROM library_members`, `DELETE FROM libraries`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}
	return tx.Commit()
}

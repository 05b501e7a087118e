// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ads

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubstats/internal/httputil"
	"github.com/pdiddy/pubstats/pkg/types"
)

// --- client ---

// libraryServer serves biblib pages out of fixed libraries.
func libraryServer(t *testing.T, libs map[string][]string, useSolr bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/biblib/libraries/")
		codes, ok := libs[id]
		if !ok {
			http.Error(w, "no such library", http.StatusNotFound)
			return
		}
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		rows, _ := strconv.Atoi(r.URL.Query().Get("rows"))
		end := start + rows
		if start > len(codes) {
			start = len(codes)
		}
		if end > len(codes) {
			end = len(codes)
		}
		page := codes[start:end]

		if useSolr {
			docs := make([]map[string]string, len(page))
			for i, c := range page {
				docs[i] = map[string]string{"bibcode": c}
			}
			json.NewEncoder(w).Encode(map[string]any{"solr": map[string]any{"docs": docs}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"documents": page})
	}))
}

func testClient(t *testing.T, ts *httptest.Server) *Client {
	t.Helper()
	c, err := NewClient(types.ADSConfig{BaseURL: ts.URL, APIKey: "test-token"},
		&httputil.Client{HTTP: ts.Client()}, nil)
	require.NoError(t, err)
	return c
}

func bibcodes(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("2020ApJ...%04dS", i)
	}
	return out
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(types.ADSConfig{}, nil, nil)
	assert.ErrorContains(t, err, "API key")
}

func TestLibraryPagination(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		useSolr bool
	}{
		{"empty library", 0, false},
		{"single short page", 12, false},
		{"exactly one full page", pageSize, false},
		{"several pages", 2*pageSize + 17, false},
		{"solr response shape", 250, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := bibcodes(tt.n)
			ts := libraryServer(t, map[string][]string{"lib1": codes}, tt.useSolr)
			defer ts.Close()

			got, err := testClient(t, ts).Library(context.Background(), "lib1")
			require.NoError(t, err)
			assert.Len(t, got, tt.n)
			if tt.n > 0 {
				assert.Equal(t, codes, got)
			}
		})
	}
}

func TestLibraryErrors(t *testing.T) {
	ts := libraryServer(t, map[string][]string{}, false)
	defer ts.Close()

	_, err := testClient(t, ts).Library(context.Background(), "missing")
	var se *httputil.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestFetchLibraries(t *testing.T) {
	ts := libraryServer(t, map[string][]string{
		"id-all":     {"A", "B", "C"},
		"id-primary": {"A"},
	}, false)
	defer ts.Close()

	libs, err := testClient(t, ts).FetchLibraries(context.Background(), map[string]string{
		types.TagAll:     "id-all",
		types.TagPrimary: "id-primary",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		types.TagAll:     {"A", "B", "C"},
		types.TagPrimary: {"A"},
	}, libs.Lists())

	_, err = testClient(t, ts).FetchLibraries(context.Background(), map[string]string{"student": "nope"})
	assert.ErrorContains(t, err, `library "student"`)
}

// --- tagging ---

func TestTag(t *testing.T) {
	libs := NewLibraries(map[string][]string{
		types.TagAll:         {"P1", "S1", "G1", "X1", "M1", "U1"},
		types.TagPrimary:     {"P1", "M1"},
		types.TagStudent:     {"S1", "M1"},
		types.TagSignificant: {"G1", "M1"},
	})
	pubs := []types.Publication{
		{Title: "primary", Bibcode: "P1"},
		{Title: "student via id", ID: "S1"},
		{Title: "significant via url", ADSURL: "https://ui.adsabs.harvard.edu/abs/G1/abstract"},
		{Title: "all only", Bibcode: "X1", AuthorshipCategories: []string{"student"}},
		{Title: "many", Bibcode: "M1"},
		{Title: "unlisted", Bibcode: "Z9"},
		{Title: "no identifiers"},
		{Title: "override", Bibcode: "U1"},
	}
	overrides := map[string][]string{"U1": {"significant"}}

	got, summary := Tag(pubs, libs, overrides)

	want := [][]string{
		{"primary"},
		{"student"},
		{"significant"},
		{"all"},
		{"primary", "student", "significant"},
		{"all"},
		{"all"},
		{"significant"},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i].AuthorshipCategories, got[i].Title)
	}

	assert.Equal(t, 5, summary.Tagged)
	assert.Equal(t, 1, summary.AllOnly)
	assert.Equal(t, 2, summary.Unlisted)
	assert.Equal(t, []string{"unlisted", "no identifiers"}, summary.UnlistedTitles)
	assert.Equal(t, len(pubs), summary.Total())

	assert.Equal(t, []string{"student"}, pubs[3].AuthorshipCategories, "input must not be mutated")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package portfolio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubstats/internal/aggregate"
	"github.com/pdiddy/pubstats/pkg/types"
)

// stubSource serves fixed documents and counts calls.
type stubSource struct {
	pubs       *types.PublicationsDocument
	mentees    *types.MenteeDocument
	pubErr     error
	menteeErr  error
	pubCalls   int
	menteeCall int
}

func (s *stubSource) Publications(context.Context) (*types.PublicationsDocument, error) {
	s.pubCalls++
	return s.pubs, s.pubErr
}

func (s *stubSource) Mentees(context.Context) (*types.MenteeDocument, error) {
	s.menteeCall++
	return s.mentees, s.menteeErr
}

func numbered(n int) []types.Publication {
	pubs := make([]types.Publication, n)
	for i := range pubs {
		pubs[i] = types.Publication{
			Title:   fmt.Sprintf("paper %d", i),
			Year:    types.IntPtr(2015 + i%10),
			Authors: []string{"J. Speagle"},
		}
	}
	return pubs
}

func newStub() *stubSource {
	pubs := numbered(5)
	pubs[1].Authors = []string{"C. Zucker", "A", "J. Speagle"}
	pubs[2].Featured = true
	pubs[3].AuthorshipCategories = []string{"significant"}
	pubs[4].Authors = []string{"Somebody Else"}
	pubs[4].Featured = true
	return &stubSource{
		pubs: &types.PublicationsDocument{Publications: pubs},
		mentees: &types.MenteeDocument{Mentees: map[string]types.MenteeStage{
			"graduate": {Current: []types.Mentee{{Name: "Catherine Zucker"}}},
		}},
	}
}

func TestSessionLoadAndResult(t *testing.T) {
	src := newStub()
	s := NewSession(src, aggregate.Options{CurrentYear: 2025}, nil)

	assert.False(t, s.Loaded())
	assert.Empty(t, s.Result().All, "result before Load is empty")

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.Loaded())

	r := s.Result()
	assert.Len(t, r.All, 5)
	assert.Len(t, r.Primary, 2)
	assert.Len(t, r.Student, 1)
	assert.Len(t, r.NonStudentSignificant, 1)
	assert.Len(t, r.Other, 1)
	assert.Same(t, r, s.Result(), "result is memoized")

	assert.NotSame(t, r, s.Recompute())
}

func TestSessionReloadDiscardsState(t *testing.T) {
	src := newStub()
	s := NewSession(src, aggregate.Options{}, nil)
	require.NoError(t, s.Load(context.Background()))
	first := s.Result()
	s.NextPage(ListAll, 2)

	src.pubs = &types.PublicationsDocument{Publications: numbered(2)}
	require.NoError(t, s.Load(context.Background()))

	assert.NotSame(t, first, s.Result())
	assert.Len(t, s.Result().All, 2)
	page, _ := s.NextPage(ListAll, 10)
	assert.Len(t, page, 2, "cursor rewound on reload")
}

func TestSessionLoadErrors(t *testing.T) {
	src := newStub()
	src.pubErr = errors.New("offline")
	s := NewSession(src, aggregate.Options{}, nil)
	err := s.Load(context.Background())
	assert.ErrorContains(t, err, "offline")
	assert.False(t, s.Loaded())

	src = newStub()
	src.menteeErr = errors.New("no mentees")
	s = NewSession(src, aggregate.Options{}, nil)
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Roster())
	assert.Empty(t, s.Result().Student, "no roster means no heuristic students")
}

func TestSessionNextPage(t *testing.T) {
	src := newStub()
	src.pubs.Publications = numbered(7)
	s := NewSession(src, aggregate.Options{}, nil)
	require.NoError(t, s.Load(context.Background()))

	page, more := s.NextPage(ListAll, 3)
	assert.Len(t, page, 3)
	assert.True(t, more)
	assert.Equal(t, "paper 0", page[0].Title)

	page, more = s.NextPage(ListAll, 3)
	assert.Len(t, page, 3)
	assert.True(t, more)
	assert.Equal(t, "paper 3", page[0].Title)

	page, more = s.NextPage(ListAll, 3)
	assert.Len(t, page, 1)
	assert.False(t, more)

	page, more = s.NextPage(ListAll, 3)
	assert.Empty(t, page)
	assert.False(t, more)

	// Cursors are per list.
	page, _ = s.NextPage(ListPrimary, 0)
	assert.Len(t, page, 7)

	s.ResetPages()
	page, _ = s.NextPage(ListAll, 1)
	assert.Equal(t, "paper 0", page[0].Title)
}

func TestSessionNextPageHugeSize(t *testing.T) {
	src := newStub()
	src.pubs.Publications = numbered(4)
	s := NewSession(src, aggregate.Options{}, nil)
	require.NoError(t, s.Load(context.Background()))

	page, more := s.NextPage(ListAll, 1)
	require.Len(t, page, 1)
	assert.True(t, more)

	page, more = s.NextPage(ListAll, math.MaxInt)
	assert.Len(t, page, 3)
	assert.False(t, more)
	assert.Equal(t, "paper 1", page[0].Title)
}

func TestSessionDocument(t *testing.T) {
	src := newStub()
	src.pubs.LastUpdated = "2025-06-01"
	s := NewSession(src, aggregate.Options{}, nil)
	assert.Nil(t, s.Document())

	require.NoError(t, s.Load(context.Background()))
	require.NotNil(t, s.Document())
	assert.Equal(t, "2025-06-01", s.Document().LastUpdated)
}

func TestSessionFeatured(t *testing.T) {
	s := NewSession(newStub(), aggregate.Options{}, nil)
	require.NoError(t, s.Load(context.Background()))

	featured := s.Items(ListFeatured)
	require.Len(t, featured, 2)
	assert.Equal(t, "paper 2", featured[0].Title)
	assert.Equal(t, "paper 4", featured[1].Title)
}

func TestSessionStats(t *testing.T) {
	s := NewSession(newStub(), aggregate.Options{CurrentYear: 2025}, nil)
	require.NoError(t, s.Load(context.Background()))

	st := s.Stats()
	assert.Equal(t, 5, st.Summary.TotalPapers)
	assert.Equal(t, map[string]int{"primary": 2, "student": 1, "nonStudentSignificant": 1, "other": 1}, st.Counts)
	assert.Equal(t, []int{2015, 2016, 2017, 2018, 2019}, st.PapersByYear.Years)
	assert.Len(t, st.AreaRings, 4)
}

func TestParseList(t *testing.T) {
	for _, l := range Lists {
		got, err := ParseList(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	_, err := ParseList("nonsense")
	assert.Error(t, err)
}

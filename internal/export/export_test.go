// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubstats/internal/aggregate"
	"github.com/pdiddy/pubstats/pkg/types"
)

func sampleResult() *aggregate.Result {
	pubs := []types.Publication{
		{Title: "a", Year: types.IntPtr(2020), Citations: 12, Authors: []string{"J. Speagle"}},
		{Title: "b", Year: types.IntPtr(2022), Citations: 3, AuthorshipCategories: []string{types.TagStudent}},
		{Title: "c", Citations: 1},
	}
	return aggregate.Categorize(pubs, nil, aggregate.Options{CurrentYear: 2025})
}

func TestBuild(t *testing.T) {
	generated := time.Date(2025, 6, 1, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	r := Build(sampleResult(), generated)

	assert.Equal(t, "2025-06-01T14:30:00Z", r.GeneratedAt)
	assert.Equal(t, 3, r.Summary.TotalPapers)
	assert.Equal(t, 16, r.Summary.TotalCitations)
	assert.Equal(t, map[string]int{"primary": 1, "student": 1, "nonStudentSignificant": 0, "other": 1}, r.Counts)
	assert.Equal(t, []int{2020, 2021, 2022}, r.PapersByYear.Years)
	assert.Len(t, r.AreaRings, 4)
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	report := Build(sampleResult(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	paths, err := Write(dir, report)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, JSONFile), filepath.Join(dir, YAMLFile)}, paths)

	data, err := os.ReadFile(filepath.Join(dir, JSONFile))
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Contains(t, fromJSON, "papersByYear")
	assert.Contains(t, fromJSON, "areaRings")
	assert.Equal(t, "2025-01-01T00:00:00Z", fromJSON["generatedAt"])

	data, err = os.ReadFile(filepath.Join(dir, YAMLFile))
	require.NoError(t, err)
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, report.PapersByYear, fromYAML.PapersByYear)
	assert.Equal(t, report.Summary.HIndex, fromYAML.Summary.HIndex)
}

func TestWriteFailsOnFileInPlaceOfDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	_, err := Write(blocker, Report{})
	assert.Error(t, err)
}

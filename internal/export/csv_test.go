package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-indeed-automation/internal/models"
)

func TestCSVWritesHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	jobs := []models.PersistedJob{
		{
			ID:          1,
			Title:       "Go Developer",
			Company:     "ACME",
			JobLink:     "https://de.indeed.com/viewjob?jk=abc",
			Location:    "Berlin",
			DateOfPost:  "2024-03-12",
			SearchQuery: "https://de.indeed.com/jobs?q=go",
			JobType:     "fulltime",
		},
	}

	path, err := CSV(jobs, dir, "Berlin", "go")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "export_Berlin_go_jobs_"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{"1", "Go Developer", "ACME", "https://de.indeed.com/viewjob?jk=abc", "Berlin", "2024-03-12", "https://de.indeed.com/jobs?q=go", "fulltime"}, rows[1])
}

func TestSnapshotJSONSkipsEmptyRuns(t *testing.T) {
	path, err := SnapshotJSON(nil, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSnapshotJSONWritesListings(t *testing.T) {
	dir := t.TempDir()
	posted := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	listings := []models.JobListing{
		{Title: "Go Developer", Company: "ACME", Location: "Berlin", JobLink: "link", PostedOn: &posted},
	}

	path, err := SnapshotJSON(listings, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Go Developer")
}

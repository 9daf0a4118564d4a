package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-indeed-automation/internal/models"
)

// csvHeader mirrors the schema subset carried by exported snapshots.
var csvHeader = []string{
	"id", "title", "company", "job_link", "location", "date_of_post", "search_query", "job_type",
}

// CSV writes the given jobs to a timestamped file in dir and returns its
// path. The location and title filters are baked into the file name so
// consecutive exports never overwrite each other.
func CSV(jobs []models.PersistedJob, dir, location, title string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("csv: create export dir: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")
	path := filepath.Join(dir, fmt.Sprintf("export_%s_%s_jobs_%s.csv", location, title, timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("csv: write header: %w", err)
	}

	for _, j := range jobs {
		row := []string{
			strconv.FormatInt(j.ID, 10),
			j.Title,
			j.Company,
			j.JobLink,
			j.Location,
			j.DateOfPost,
			j.SearchQuery,
			j.JobType,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv: flush: %w", err)
	}
	return path, nil
}

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-indeed-automation/internal/models"
)

// SnapshotJSON dumps the run's accumulated listings to a per-day JSON file
// and returns its path. Listings that failed to persist are still included
// here, so a run survives a flaky store.
func SnapshotJSON(listings []models.JobListing, dir string) (string, error) {
	if len(listings) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("snapshot: create dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("job-data-%s.json", time.Now().Format("2006-01-02")))

	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("snapshot: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("snapshot: write %q: %w", path, err)
	}
	return path, nil
}

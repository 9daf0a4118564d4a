// Maintenance queries backing the view / delete / clear / export commands.

package database

import (
	"context"
	"fmt"
	"time"

	"go-indeed-automation/internal/models"
)

// List returns all jobs whose location and title contain the given filters.
// Empty filters match everything.
func (r *Repository) List(ctx context.Context, location, title string) ([]models.PersistedJob, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, title_search, company, job_link, job_type,
		       location, location_search, search_query, date_of_post, created_on
		FROM indeed_jobs
		WHERE location LIKE ? AND title LIKE ?
		ORDER BY id`,
		"%"+location+"%", "%"+title+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.PersistedJob
	for rows.Next() {
		var job models.PersistedJob
		var createdOn string
		if err := rows.Scan(&job.ID, &job.Title, &job.TitleSearch, &job.Company,
			&job.JobLink, &job.JobType, &job.Location, &job.LocationSearch,
			&job.SearchQuery, &job.DateOfPost, &createdOn); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		job.CreatedOn, _ = time.Parse(time.RFC3339, createdOn)
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Delete removes all jobs matching the location and title filters and
// returns the number of deleted rows.
func (r *Repository) Delete(ctx context.Context, location, title string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM indeed_jobs
		WHERE location LIKE ? AND title LIKE ?`,
		"%"+location+"%", "%"+title+"%",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete jobs: %w", err)
	}
	return res.RowsAffected()
}

// Clear empties the indeed_jobs table.
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM indeed_jobs`); err != nil {
		return fmt.Errorf("failed to clear table: %w", err)
	}
	return nil
}

// Count returns the number of persisted jobs.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM indeed_jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-indeed-automation/internal/models"
	"go-indeed-automation/internal/search"
)

// FindByNaturalKey looks up a persisted job by (title, company, date_of_post).
// Returns nil when no such row exists.
func (r *Repository) FindByNaturalKey(ctx context.Context, title, company, dateOfPost string) (*models.PersistedJob, error) {
	var job models.PersistedJob
	var createdOn string

	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, title_search, company, job_link, job_type,
		       location, location_search, search_query, date_of_post, created_on
		FROM indeed_jobs
		WHERE title = ? AND company = ? AND date_of_post = ?`,
		title, company, dateOfPost,
	).Scan(&job.ID, &job.Title, &job.TitleSearch, &job.Company, &job.JobLink,
		&job.JobType, &job.Location, &job.LocationSearch, &job.SearchQuery,
		&job.DateOfPost, &createdOn)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}

	job.CreatedOn, _ = time.Parse(time.RFC3339, createdOn)
	return &job, nil
}

// Persist decides insert-vs-skip for one extracted listing against persisted
// state, keyed on (title, company, posted_on). A listing without a real
// title is never inserted. Rows are written once and never mutated.
func (r *Repository) Persist(ctx context.Context, listing models.JobListing, params models.SearchParams, searchQuery string) (models.Outcome, error) {
	if !listing.HasTitle() {
		return models.OutcomeSkippedDuplicate, nil
	}

	existing, err := r.FindByNaturalKey(ctx, listing.Title, listing.Company, listing.DateOfPost())
	if err != nil {
		return "", err
	}
	if existing != nil {
		return models.OutcomeSkippedDuplicate, nil
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO indeed_jobs
			(title, title_search, company, job_link, job_type,
			 location, location_search, search_query, date_of_post, created_on)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		listing.Title,
		search.Normalize(params.Designation),
		listing.Company,
		listing.JobLink,
		string(params.JobType),
		listing.Location,
		search.Normalize(params.Location),
		searchQuery,
		listing.DateOfPost(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert job: %w", err)
	}

	return models.OutcomeInserted, nil
}

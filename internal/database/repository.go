package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Repository owns the connection to the local indeed_jobs store. One
// repository is held for the lifetime of a scraper session; the design
// assumes at most one scraping session at a time.
type Repository struct {
	db *sql.DB
}

// Open connects to the sqlite database at path, creating the schema when
// needed. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	// sqlite wants a single writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) createSchema() error {
	// The unique index on the natural key closes the lookup-then-insert
	// race window that a plain check-then-insert would leave open.
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS indeed_jobs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			title           TEXT NOT NULL,
			title_search    TEXT NOT NULL DEFAULT '',
			company         TEXT NOT NULL DEFAULT '',
			job_link        TEXT NOT NULL DEFAULT '',
			job_type        TEXT NOT NULL DEFAULT '',
			location        TEXT NOT NULL DEFAULT '',
			location_search TEXT NOT NULL DEFAULT '',
			search_query    TEXT NOT NULL DEFAULT '',
			date_of_post    TEXT NOT NULL DEFAULT '',
			created_on      TEXT NOT NULL DEFAULT ''
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_indeed_jobs_natural_key
			ON indeed_jobs (title, company, date_of_post);
	`)
	return err
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

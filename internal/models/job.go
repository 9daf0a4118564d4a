package models

import (
	"time"
)

// Sentinel marks a field that could not be extracted from a job card.
const Sentinel = "N/A"

type JobType string

const (
	JobTypeFulltime    JobType = "fulltime"
	JobTypePermanent   JobType = "permanent"
	JobTypeParttime    JobType = "parttime"
	JobTypeSubcontract JobType = "subcontract"
)

// JobTypeFromChoice maps the numeric menu choice (1-4) to a job type.
// Anything else falls back to fulltime.
func JobTypeFromChoice(choice int) JobType {
	switch choice {
	case 1:
		return JobTypeFulltime
	case 2:
		return JobTypePermanent
	case 3:
		return JobTypeParttime
	case 4:
		return JobTypeSubcontract
	default:
		return JobTypeFulltime
	}
}

// JobListing is one extracted job card. It lives in process memory only;
// the sink turns it into a PersistedJob or skips it.
type JobListing struct {
	Title       string
	Company     string
	Location    string
	JobLink     string
	RawDateText string
	// PostedOn is nil when the raw date text could not be normalized.
	// Such listings are never persisted.
	PostedOn *time.Time
}

// HasTitle reports whether the listing carries a real title. A listing
// without one is not worth persisting.
func (j JobListing) HasTitle() bool {
	return j.Title != "" && j.Title != Sentinel
}

// DateOfPost is the canonical YYYY-MM-DD form of PostedOn, or "" if nil.
func (j JobListing) DateOfPost() string {
	if j.PostedOn == nil {
		return ""
	}
	return j.PostedOn.Format("2006-01-02")
}

// PersistedJob is a row of the indeed_jobs table. Rows are written once at
// first insert and never mutated afterwards.
type PersistedJob struct {
	ID             int64
	Title          string
	TitleSearch    string
	Company        string
	JobLink        string
	JobType        string
	Location       string
	LocationSearch string
	SearchQuery    string
	DateOfPost     string
	CreatedOn      time.Time
}

type Outcome string

const (
	OutcomeInserted         Outcome = "INSERTED"
	OutcomeSkippedDuplicate Outcome = "SKIPPED_DUPLICATE"
)

// SearchParams describes one scraping run.
type SearchParams struct {
	Designation string
	Location    string
	NumPages    int
	JobType     JobType
	Locale      string
	// FilterByType toggles the job-type filter clause in the search URL.
	FilterByType bool
}

// Language returns the lang request parameter derived from the locale.
func (p SearchParams) Language() string {
	if p.Locale == "in" {
		return "in"
	}
	return "de"
}

// RunSummary is returned to the caller after one scrape invocation.
type RunSummary struct {
	PagesFetched      int
	CardsSeen         int
	DuplicatesSkipped int
	DatesUnparseable  int
	Inserted          int
	SkippedDuplicates int
	PersistErrors     int
}

package dedup

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// LinkTracker suppresses re-processing of job links repeated across
// paginated result pages. The board reorders listings near page boundaries
// as new jobs come in, so overlapping pages are expected.
//
// The set is scoped to a single scraping run and is never persisted.
type LinkTracker struct {
	seen mapset.Set[string]
}

func NewLinkTracker() *LinkTracker {
	return &LinkTracker{
		seen: mapset.NewSet[string](),
	}
}

// Seen reports whether the link was already marked during this run.
func (t *LinkTracker) Seen(link string) bool {
	return t.seen.Contains(link)
}

// Mark records the link as processed.
func (t *LinkTracker) Mark(link string) {
	t.seen.Add(link)
}

// Len returns the number of distinct links marked so far.
func (t *LinkTracker) Len() int {
	return t.seen.Cardinality()
}

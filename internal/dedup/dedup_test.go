package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkThenSeen(t *testing.T) {
	tracker := NewLinkTracker()

	assert.False(t, tracker.Seen("https://de.indeed.com/viewjob?jk=abc"))
	tracker.Mark("https://de.indeed.com/viewjob?jk=abc")
	assert.True(t, tracker.Seen("https://de.indeed.com/viewjob?jk=abc"))
	assert.Equal(t, 1, tracker.Len())
}

func TestMarkIsIdempotent(t *testing.T) {
	tracker := NewLinkTracker()
	tracker.Mark("link")
	tracker.Mark("link")
	assert.Equal(t, 1, tracker.Len())
}

// A link seen on one page must be skipped when the next page repeats it.
func TestSeenAcrossPages(t *testing.T) {
	tracker := NewLinkTracker()

	page1 := []string{"a", "b", "c"}
	for _, link := range page1 {
		assert.False(t, tracker.Seen(link))
		tracker.Mark(link)
	}

	page2 := []string{"c", "d"}
	assert.True(t, tracker.Seen(page2[0]))
	assert.False(t, tracker.Seen(page2[1]))
}

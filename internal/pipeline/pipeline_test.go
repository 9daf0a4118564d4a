package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-indeed-automation/internal/database"
	"go-indeed-automation/internal/models"
	"go-indeed-automation/internal/scraper"
)

const (
	selTitle    = "h2.jobTitle span"
	selCompany  = `[data-testid="company-name"]`
	selLocation = `[data-testid="text-location"]`
	selDate     = "span.date"
)

var errMissing = errors.New("element not found")

type stubCard struct {
	texts map[string]string
	href  string
}

func (c *stubCard) Text(selector string) (string, error) {
	if v, ok := c.texts[selector]; ok {
		return v, nil
	}
	return "", errMissing
}

func (c *stubCard) ParentAnchorHref(selector string) (string, error) {
	if _, ok := c.texts[selTitle]; ok && selector == selTitle {
		return c.href, nil
	}
	return "", errMissing
}

func card(title, company, link, date string) scraper.Card {
	return &stubCard{
		texts: map[string]string{
			selTitle:    title,
			selCompany:  company,
			selLocation: "Berlin",
			selDate:     date,
		},
		href: link,
	}
}

// stubFetcher serves fixed pages and records which pages were requested.
type stubFetcher struct {
	pages     [][]scraper.Card
	requested []int
	failAt    int // page number that errors, -1 for none
}

func (f *stubFetcher) FetchPage(ctx context.Context, pageNum int) ([]scraper.Card, error) {
	f.requested = append(f.requested, pageNum)
	if f.failAt >= 0 && pageNum == f.failAt {
		return nil, errors.New("driver gone")
	}
	if pageNum >= len(f.pages) {
		return nil, nil
	}
	return f.pages[pageNum], nil
}

type stubSink struct {
	persisted []models.JobListing
	outcomes  []models.Outcome
	err       error
}

func (s *stubSink) Persist(ctx context.Context, listing models.JobListing, params models.SearchParams, searchQuery string) (models.Outcome, error) {
	if s.err != nil {
		return "", s.err
	}
	s.persisted = append(s.persisted, listing)
	out := models.OutcomeInserted
	if len(s.outcomes) > 0 {
		out = s.outcomes[0]
		s.outcomes = s.outcomes[1:]
	}
	return out, nil
}

func params(pages int) models.SearchParams {
	return models.SearchParams{
		Designation: "developer",
		Location:    "Berlin",
		NumPages:    pages,
		JobType:     models.JobTypeFulltime,
		Locale:      "de",
	}
}

func fullPage(prefix string) []scraper.Card {
	cards := make([]scraper.Card, 0, earlyStopThreshold)
	for i := 0; i < earlyStopThreshold; i++ {
		cards = append(cards, card("Dev "+prefix+string(rune('A'+i)), "ACME", "link-"+prefix+string(rune('A'+i)), "Today"))
	}
	return cards
}

func TestRunEarlyStopsOnShortPage(t *testing.T) {
	fetcher := &stubFetcher{
		pages: [][]scraper.Card{
			{card("Dev A", "ACME", "l1", "Today"), card("Dev B", "ACME", "l2", "Today")},
			fullPage("p2"),
		},
		failAt: -1,
	}
	sink := &stubSink{}

	summary, collected, err := Run(context.Background(), params(3), "", fetcher, sink)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, fetcher.requested, "short first page must stop pagination")
	assert.Equal(t, 1, summary.PagesFetched)
	assert.Len(t, collected, 2)
}

func TestRunRequestsNextPageAfterFullPage(t *testing.T) {
	fetcher := &stubFetcher{
		pages:  [][]scraper.Card{fullPage("a"), {card("Dev X", "Other", "lx", "Today")}},
		failAt: -1,
	}
	sink := &stubSink{}

	summary, _, err := Run(context.Background(), params(5), "", fetcher, sink)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, fetcher.requested)
	assert.Equal(t, 2, summary.PagesFetched)
	assert.Equal(t, earlyStopThreshold+1, summary.CardsSeen)
}

func TestRunDropsUnparseableDates(t *testing.T) {
	fetcher := &stubFetcher{
		pages: [][]scraper.Card{{
			card("Dev A", "ACME", "l1", "Aktiv vor 10 Monaten"),
			card("Dev B", "ACME", "l2", "Vor 3 Tagen"),
		}},
		failAt: -1,
	}
	sink := &stubSink{}

	summary, collected, err := Run(context.Background(), params(1), "", fetcher, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DatesUnparseable)
	require.Len(t, collected, 1)
	assert.Equal(t, "Dev B", collected[0].Title)

	// the sink must never see a listing without a normalized date
	require.Len(t, sink.persisted, 1)
	assert.NotNil(t, sink.persisted[0].PostedOn)
}

func TestRunSkipsLinksSeenOnEarlierPages(t *testing.T) {
	page1 := fullPage("a")
	repeat := card("Dev aA", "ACME", "link-aA", "Today") // same link as page 1
	fetcher := &stubFetcher{
		pages:  [][]scraper.Card{page1, {repeat, card("Dev New", "ACME", "link-new", "Today")}},
		failAt: -1,
	}
	sink := &stubSink{}

	summary, _, err := Run(context.Background(), params(2), "", fetcher, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.DuplicatesSkipped)
	assert.Len(t, sink.persisted, earlyStopThreshold+1)
}

func TestRunFetchErrorKeepsPriorPages(t *testing.T) {
	fetcher := &stubFetcher{
		pages:  [][]scraper.Card{fullPage("a")},
		failAt: 1,
	}
	sink := &stubSink{}

	summary, collected, err := Run(context.Background(), params(3), "", fetcher, sink)
	require.Error(t, err)
	assert.Equal(t, 1, summary.PagesFetched)
	assert.Len(t, collected, earlyStopThreshold, "records from prior pages survive the abort")
}

func TestRunPersistErrorDoesNotAbort(t *testing.T) {
	fetcher := &stubFetcher{
		pages: [][]scraper.Card{{
			card("Dev A", "ACME", "l1", "Today"),
			card("Dev B", "ACME", "l2", "Today"),
		}},
		failAt: -1,
	}
	sink := &stubSink{err: errors.New("store unavailable")}

	summary, collected, err := Run(context.Background(), params(1), "", fetcher, sink)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.PersistErrors)
	assert.Len(t, collected, 2, "unpersisted records stay in the accumulator")
}

// Three cards against a real store: one with no title element (sentinel
// chain, skipped by the sink), one fresh listing (inserted), one sharing the
// second's natural key under a different link (skipped).
func TestRunEndToEndWithStore(t *testing.T) {
	repo, err := database.Open(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	noTitle := &stubCard{
		texts: map[string]string{
			selCompany:  "ACME",
			selLocation: "Berlin",
			selDate:     "Today",
		},
	}
	fetcher := &stubFetcher{
		pages: [][]scraper.Card{{
			noTitle,
			card("Go Developer", "ACME", "link-1", "Today"),
			card("Go Developer", "ACME", "link-1?token=xyz", "Today"),
		}},
		failAt: -1,
	}

	summary, collected, err := Run(context.Background(), params(1), "https://de.indeed.com/jobs?q=go", fetcher, repo)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 2, summary.SkippedDuplicates)
	assert.Len(t, collected, 3)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

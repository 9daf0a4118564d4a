package pipeline

import (
	"context"
	"fmt"
	"log"

	"go-indeed-automation/internal/dates"
	"go-indeed-automation/internal/dedup"
	"go-indeed-automation/internal/models"
	"go-indeed-automation/internal/scraper"
)

// earlyStopThreshold is the minimum card count of a full result page. A page
// yielding fewer cards is taken as the end of the result set. This is a
// heuristic, not an exact end-of-results signal.
const earlyStopThreshold = 15

// Sink decides insert-vs-skip for one extracted listing.
type Sink interface {
	Persist(ctx context.Context, listing models.JobListing, params models.SearchParams, searchQuery string) (models.Outcome, error)
}

// Run scrapes up to params.NumPages result pages, one page at a time, in
// order. Per card: extract, dedup by job link, normalize the posting date,
// drop listings whose date cannot be normalized, then hand the rest to the
// sink. Listings emitted before a fatal fetch error are kept and returned
// alongside the error.
//
// Persistence errors are logged per record and do not abort the run; the
// affected listing stays in the returned accumulator for the export path.
func Run(ctx context.Context, params models.SearchParams, searchQuery string, fetcher scraper.Fetcher, sink Sink) (models.RunSummary, []models.JobListing, error) {
	tracker := dedup.NewLinkTracker()

	var summary models.RunSummary
	var collected []models.JobListing

	for page := 0; page < params.NumPages; page++ {
		cards, err := fetcher.FetchPage(ctx, page)
		if err != nil {
			// fatal for the remaining pages, prior results survive
			return summary, collected, fmt.Errorf("page %d fetch failed: %w", page+1, err)
		}
		summary.PagesFetched++
		log.Printf("📄 Page %d - %d job cards found", page+1, len(cards))

		for _, card := range cards {
			summary.CardsSeen++

			listing := scraper.ExtractJob(card)
			if tracker.Seen(listing.JobLink) {
				summary.DuplicatesSkipped++
				continue
			}
			tracker.Mark(listing.JobLink)

			posted, ok := dates.Normalize(listing.RawDateText)
			if !ok {
				// unrecognized phrasing is dropped, never defaulted to today
				summary.DatesUnparseable++
				continue
			}
			listing.PostedOn = &posted

			collected = append(collected, listing)

			outcome, err := sink.Persist(ctx, listing, params, searchQuery)
			if err != nil {
				summary.PersistErrors++
				log.Printf("⚠️ Failed to persist %q at %q: %v", listing.Title, listing.Company, err)
				continue
			}
			if outcome == models.OutcomeInserted {
				summary.Inserted++
			} else {
				summary.SkippedDuplicates++
			}
		}

		if len(cards) < earlyStopThreshold {
			log.Printf("🛑 Page %d returned %d cards (< %d), assuming end of results", page+1, len(cards), earlyStopThreshold)
			break
		}
	}

	return summary, collected, nil
}

// Contracts between the page-fetch layer and the extraction pipeline.
// Keeps the pipeline testable without a live browser.

package scraper

import (
	"context"
)

// Card is one rendered job listing on a fetched result page. Queries wait
// for the element up to the fetcher's field timeout and return an error
// if it never appears.
type Card interface {
	// Text returns the text content of the first element matching selector.
	Text(selector string) (string, error)

	// ParentAnchorHref returns the href of the anchor wrapping the first
	// element matching selector.
	ParentAnchorHref(selector string) (string, error)
}

// Fetcher loads one result page and returns its job cards. Page numbers
// start at 0 and are requested in ascending order.
type Fetcher interface {
	FetchPage(ctx context.Context, pageNum int) ([]Card, error)
}

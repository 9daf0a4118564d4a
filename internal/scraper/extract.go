package scraper

import (
	"strings"

	"go-indeed-automation/internal/models"
)

// Selectors for the fields of one job card.
const (
	selTitle    = "h2.jobTitle span"
	selCompany  = `[data-testid="company-name"]`
	selLocation = `[data-testid="text-location"]`
	selDate     = "span.date"
)

// datePrefixes strips the board's framing words from the raw date text
// ("Posted 3 days ago", "Employer Active today").
var datePrefixes = strings.NewReplacer("Employer", "", "Posted", "")

// ExtractJob reads all fields of one card. It never fails: each field is
// queried independently and falls back to the sentinel when the element is
// missing or the bounded wait runs out. The job link is taken from the
// parent anchor of the title element, so a card without a locatable title
// element always yields a sentinel link as well.
func ExtractJob(card Card) models.JobListing {
	listing := models.JobListing{
		Title:    models.Sentinel,
		Company:  models.Sentinel,
		Location: models.Sentinel,
		JobLink:  models.Sentinel,
	}

	if link, err := card.ParentAnchorHref(selTitle); err == nil {
		listing.JobLink = link
	}
	if title, err := card.Text(selTitle); err == nil {
		listing.Title = strings.TrimSpace(title)
	}
	if company, err := card.Text(selCompany); err == nil {
		listing.Company = strings.TrimSpace(company)
	}
	if location, err := card.Text(selLocation); err == nil {
		listing.Location = strings.TrimSpace(location)
	}
	if raw, err := card.Text(selDate); err == nil {
		listing.RawDateText = strings.TrimSpace(datePrefixes.Replace(raw))
	}

	return listing
}

package indeed

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-indeed-automation/internal/models"
	"go-indeed-automation/internal/scraper"
)

const (
	// the board shows 10 results per page; start is the result offset
	resultsPerPage = 10
	cardSelector   = "div.job_seen_beacon"

	// bounded wait for each field query inside a card
	fieldTimeoutMs = 10000

	pageLoadTimeoutMs = 30000
)

// BuildSearchURL constructs the result-page URL for one search and page
// number. The job-type filter clause is appended only when the search asks
// for it.
func BuildSearchURL(params models.SearchParams, pageNum int) string {
	u := fmt.Sprintf("https://%s.indeed.com/jobs?q=%s&l=%s&start=%d&fromage=14&sort=date&lang=%s",
		params.Locale,
		url.QueryEscape(params.Designation),
		url.QueryEscape(params.Location),
		pageNum*resultsPerPage,
		params.Language(),
	)
	if params.FilterByType {
		u += fmt.Sprintf("&sc=0kf%%3Ajt(%s)%%3B", params.JobType)
	}
	return u
}

// Fetcher loads Indeed result pages through a playwright page and hands the
// job cards to the pipeline. One page at a time, a fixed delay after each
// navigation so the board finishes rendering.
type Fetcher struct {
	page   playwright.Page
	params models.SearchParams
	delay  time.Duration
}

func NewFetcher(page playwright.Page, params models.SearchParams, delay time.Duration) *Fetcher {
	return &Fetcher{
		page:   page,
		params: params,
		delay:  delay,
	}
}

func (f *Fetcher) FetchPage(ctx context.Context, pageNum int) ([]scraper.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	searchURL := BuildSearchURL(f.params, pageNum)
	log.Printf("🔍 %s", searchURL)

	if _, err := f.page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(pageLoadTimeoutMs),
	}); err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", pageNum+1, err)
	}

	time.Sleep(f.delay)

	locators, err := f.page.Locator(cardSelector).All()
	if err != nil {
		return nil, fmt.Errorf("failed to find job cards: %w", err)
	}

	baseURL := fmt.Sprintf("https://%s.indeed.com", f.params.Locale)
	cards := make([]scraper.Card, 0, len(locators))
	for _, l := range locators {
		cards = append(cards, &card{root: l, baseURL: baseURL})
	}
	return cards, nil
}

// card wraps one rendered listing element. Field queries wait up to the
// field timeout for the element to appear.
type card struct {
	root    playwright.Locator
	baseURL string
}

func (c *card) Text(selector string) (string, error) {
	text, err := c.root.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(fieldTimeoutMs),
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *card) ParentAnchorHref(selector string) (string, error) {
	anchor := c.root.Locator(selector).First().Locator("xpath=parent::a")
	href, err := anchor.GetAttribute("href", playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(fieldTimeoutMs),
	})
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(href, "/") {
		href = c.baseURL + href
	}
	return href, nil
}

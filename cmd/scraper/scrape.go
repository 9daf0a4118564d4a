package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"go-indeed-automation/internal/browser"
	"go-indeed-automation/internal/config"
	"go-indeed-automation/internal/database"
	"go-indeed-automation/internal/export"
	"go-indeed-automation/internal/models"
	"go-indeed-automation/internal/pipeline"
	"go-indeed-automation/internal/reporter"
	"go-indeed-automation/internal/scraper/indeed"
)

func scrapeCmd(cfg *config.Config) *cobra.Command {
	var (
		designation string
		location    string
		pages       int
		jobType     int
		locale      string
		noFilter    bool
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one scraping pass and persist new listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := models.SearchParams{
				Designation:  designation,
				Location:     location,
				NumPages:     pages,
				JobType:      models.JobTypeFromChoice(jobType),
				Locale:       locale,
				FilterByType: !noFilter,
			}
			return runScrape(cfg, params)
		},
	}

	cmd.Flags().StringVar(&designation, "title", cfg.Designation, "job designation to search for")
	cmd.Flags().StringVar(&location, "location", cfg.Location, "location to search in")
	cmd.Flags().IntVar(&pages, "pages", cfg.Pages, "number of result pages to scrape")
	cmd.Flags().IntVar(&jobType, "job-type", cfg.JobTypeChoice, "1: fulltime, 2: permanent, 3: parttime, 4: subcontract")
	cmd.Flags().StringVar(&locale, "locale", cfg.Locale, "indeed locale, e.g. de or in")
	cmd.Flags().BoolVar(&noFilter, "no-type-filter", !cfg.FilterByType, "omit the job-type filter from the search")

	return cmd
}

func runScrape(cfg *config.Config, params models.SearchParams) error {
	log.Printf("🔧 Search: %q @ %q, %d pages, type=%s, locale=%s",
		params.Designation, params.Location, params.NumPages, params.JobType, params.Locale)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	repo, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer repo.Close()

	mgr, err := browser.NewManager(cfg.Headless)
	if err != nil {
		return err
	}
	// the browser is released on every exit path
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		return err
	}
	log.Println("✅ Browser initialized successfully!")

	fetcher := indeed.NewFetcher(page, params, time.Duration(cfg.PageDelaySeconds)*time.Second)
	searchQuery := indeed.BuildSearchURL(params, 0)

	summary, listings, runErr := pipeline.Run(ctx, params, searchQuery, fetcher, repo)
	if runErr != nil {
		log.Printf("❌ Run aborted: %v", runErr)
	}

	log.Printf("📦 Pages: %d, cards: %d, inserted: %d, duplicates: %d, repeated links: %d, unparseable dates: %d, persist errors: %d",
		summary.PagesFetched, summary.CardsSeen, summary.Inserted, summary.SkippedDuplicates,
		summary.DuplicatesSkipped, summary.DatesUnparseable, summary.PersistErrors)

	if path, err := export.SnapshotJSON(listings, cfg.SnapshotDir); err != nil {
		log.Printf("⚠️ Failed to write snapshot: %v", err)
	} else if path != "" {
		log.Printf("📁 Results saved to %s", path)
	}

	notify(cfg, params, summary, runErr)

	return runErr
}

func notify(cfg *config.Config, params models.SearchParams, summary models.RunSummary, runErr error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return
	}
	bot, err := reporter.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Printf("⚠️ Failed to init Telegram reporter: %v", err)
		return
	}
	if runErr != nil {
		if err := bot.SendError(runErr); err != nil {
			log.Printf("⚠️ Failed to send error to Telegram: %v", err)
		}
	}
	if err := bot.SendSummary(params, summary); err != nil {
		log.Printf("⚠️ Failed to send summary to Telegram: %v", err)
	}
}

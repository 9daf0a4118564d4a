package main

import (
	"log"

	"github.com/spf13/cobra"

	"go-indeed-automation/internal/config"
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "indeed-scraper",
		Short: "Scrape Indeed job listings into a local database",
	}

	rootCmd.AddCommand(scrapeCmd(cfg))
	rootCmd.AddCommand(viewCmd(cfg))
	rootCmd.AddCommand(exportCmd(cfg))
	rootCmd.AddCommand(deleteCmd(cfg))
	rootCmd.AddCommand(clearCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

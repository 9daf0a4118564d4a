// Database maintenance commands: view, export, delete, clear.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-indeed-automation/internal/config"
	"go-indeed-automation/internal/database"
	"go-indeed-automation/internal/export"
)

func viewCmd(cfg *config.Config) *cobra.Command {
	var location, title string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print stored jobs matching the location/title filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := database.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer repo.Close()

			jobs, err := repo.List(context.Background(), location, title)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				log.Println("No matching data found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTitle\tCompany\tLocation\tDate of Post\tJob Link")
			for _, j := range jobs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					j.ID, j.Title, j.Company, j.Location, j.DateOfPost, j.JobLink)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location filter (substring match)")
	cmd.Flags().StringVar(&title, "title", "", "title filter (substring match)")
	return cmd
}

func exportCmd(cfg *config.Config) *cobra.Command {
	var location, title string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching jobs to a timestamped CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := database.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer repo.Close()

			jobs, err := repo.List(context.Background(), location, title)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				log.Println("No matching data found for export.")
				return nil
			}

			path, err := export.CSV(jobs, cfg.ExportDir, location, title)
			if err != nil {
				return err
			}
			log.Printf("📁 Data exported to %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location filter (substring match)")
	cmd.Flags().StringVar(&title, "title", "", "title filter (substring match)")
	return cmd
}

func deleteCmd(cfg *config.Config) *cobra.Command {
	var location, title string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete stored jobs matching the location/title filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := database.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer repo.Close()

			deleted, err := repo.Delete(context.Background(), location, title)
			if err != nil {
				return err
			}
			log.Printf("🗑️ Deleted %d jobs.", deleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location filter (substring match)")
	cmd.Flags().StringVar(&title, "title", "", "title filter (substring match)")
	return cmd
}

func clearCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := database.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.Clear(context.Background()); err != nil {
				return err
			}
			log.Println("🗑️ Table indeed_jobs cleared successfully.")
			return nil
		},
	}
}

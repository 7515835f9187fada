package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/database"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show catalog database status and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dbPath, err := cfg.DatabasePath()
			if err != nil {
				return err
			}
			info, err := os.Stat(dbPath)
			if err != nil {
				return fmt.Errorf("no catalog database at %s (run 'volcano import' first)", dbPath)
			}

			db, err := database.OpenPath(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			stats, err := db.Stats()
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			ui.Section("Catalog Database")
			fmt.Printf("Path:     %s\n", dbPath)
			fmt.Printf("Size:     %s\n", formatBytes(info.Size()))
			fmt.Printf("Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))

			ui.Section("Volcanoes")
			fmt.Printf("Total:     %d\n", stats.TotalVolcanoes)
			fmt.Printf("Countries: %d\n", stats.Countries)
			fmt.Printf("Dated:     %s\n", ui.Active(strconv.Itoa(stats.Dated)))
			fmt.Printf("Undated:   %s\n", ui.Dormant(strconv.Itoa(stats.Undated)))
			if stats.EarliestYear != nil && stats.LatestYear != nil {
				fmt.Printf("Span:      %s to %s\n",
					ui.FormatYear(*stats.EarliestYear), ui.FormatYear(*stats.LatestYear))
			}
			return nil
		},
	}
}

func formatBytes(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/eruption"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

func newTableCmd() *cobra.Command {
	var (
		startYear int
		endYear   int
		undated   bool
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the volcano catalog",
		Long: `Print the loaded catalog as a table, optionally filtered to an
eruption year window.

Examples:
  volcano table
  volcano table --start 1900 --end 2023
  volcano table --undated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			col, err := loadCollection(cfg)
			if err != nil {
				return err
			}

			records := col.Records
			if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
				records = col.FilterByRange(startYear, endYear)
			}

			table := ui.NewTable("NAME", "COUNTRY", "TYPE", "LAST ERUPTION", "YEAR", "LAT", "LON")
			shown := 0
			for _, rec := range records {
				if undated && rec.EruptionYear != nil {
					continue
				}
				year := "-"
				if rec.EruptionYear != nil {
					year = ui.FormatYear(*rec.EruptionYear)
				}
				table.AddRow(
					rec.Name,
					rec.Country,
					rec.Type,
					rec.LastEruption,
					year,
					strconv.FormatFloat(rec.Latitude, 'f', 3, 64),
					strconv.FormatFloat(rec.Longitude, 'f', 3, 64),
				)
				shown++
			}
			table.Render()

			fmt.Printf("\n%d of %d volcanoes", shown, col.Len())
			if col.Skipped > 0 {
				fmt.Printf(" %s", ui.Dim(fmt.Sprintf("(%d malformed rows skipped)", col.Skipped)))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&startYear, "start", eruption.MinYear, "window start year")
	cmd.Flags().IntVar(&endYear, "end", eruption.MaxYear, "window end year")
	cmd.Flags().BoolVar(&undated, "undated", false, "only volcanoes without a parseable eruption year")

	return cmd
}

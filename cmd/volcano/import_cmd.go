package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/database"
	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/logging"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

func newImportCmd() *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "import [csv-path]",
		Short: "Import a CSV dataset into the catalog database",
		Long: `Parse a volcano CSV and upsert its rows into the catalog database,
so other commands can run without the CSV present. Re-importing the same
dataset updates existing entries in place.

Examples:
  volcano import volcanoes.csv
  volcano import --clear volcanoes.csv   # drop the old catalog first`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := datasetPath(cfg)
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no CSV path given (pass one, or set dataset.path in the config)")
			}

			logger := newLogger(cfg)
			defer logger.Close()

			col, err := dataset.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}
			if col.Skipped > 0 {
				ui.WarningMsg("skipped %d malformed rows", col.Skipped)
			}

			dbPath, err := cfg.DatabasePath()
			if err != nil {
				return err
			}
			db, err := database.OpenPath(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if clear {
				if err := db.Clear(); err != nil {
					return fmt.Errorf("failed to clear catalog: %w", err)
				}
			}

			imported, err := importRecords(db, col)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			logger.Info("import", "catalog imported",
				logging.F("source", path),
				logging.F("records", imported))

			ui.SuccessMsg("Imported %d volcanoes into %s", imported, dbPath)
			if undated := col.Undated(); undated > 0 {
				ui.InfoMsg("%d volcanoes have no parseable eruption year and stay dormant", undated)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove existing catalog entries first")

	return cmd
}

// importRecords upserts the collection, with a progress bar when attached to
// a terminal and a single transaction otherwise.
func importRecords(db *database.CatalogDB, col *dataset.Collection) (int, error) {
	if !ui.IsTerminal() {
		return db.ImportCollection(col)
	}

	bar := ui.NewProgressBar(col.Len(), "Importing")
	imported := 0
	for _, rec := range col.Records {
		if err := db.UpsertVolcano(rec); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", rec.Name, err)
		}
		imported++
		bar.Increment()
	}
	fmt.Println()
	return imported, nil
}

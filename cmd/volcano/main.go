package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/config"
	"github.com/delorianv/volcano-eruptions/internal/database"
	"github.com/delorianv/volcano-eruptions/internal/dataset"
	"github.com/delorianv/volcano-eruptions/internal/logging"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

var (
	version  = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	cfgFile  string
	dataPath string
	verbose  bool
	noColor  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volcano",
		Short: "Animated timeline of volcanic eruptions",
		Long: `Volcano replays a catalog of volcanic eruptions as an animated
timeline: each volcano flares up around its last eruption year and fades
back to dormant.

The catalog is a CSV with Volcano_Name, Country, Latitude, Longitude,
Volcano_Type and Last_Eruption columns. Eruption years are extracted from
the free-text Last_Eruption field.

Examples:
  volcano play --dataset volcanoes.csv
  volcano play --start 1900 --end 2023 --speed 80
  volcano import volcanoes.csv
  volcano serve --watch`,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				ui.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/volcano/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "dataset", "d", "", "volcano CSV path (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		ui.ErrorMsg("%v", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("volcano %s\n", version)
		},
	}
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *logging.Logger {
	lcfg := cfg.Logging
	if verbose {
		lcfg.Level = "debug"
	}
	logger, err := logging.New(lcfg)
	if err != nil {
		return logging.Nop()
	}
	return logger
}

// datasetPath resolves the CSV location: the --dataset flag wins over the
// config file.
func datasetPath(cfg *config.Config) string {
	if dataPath != "" {
		return dataPath
	}
	return cfg.Dataset.Path
}

// loadCollection loads the CSV when a path is configured, otherwise falls
// back to the imported catalog database.
func loadCollection(cfg *config.Config) (*dataset.Collection, error) {
	if path := datasetPath(cfg); path != "" {
		col, err := dataset.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset: %w", err)
		}
		return col, nil
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("no dataset configured (use --dataset, or 'volcano import' first)")
	}

	db, err := database.OpenPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	col, err := db.Collection()
	if err != nil {
		return nil, err
	}
	if col.Len() == 0 {
		return nil, fmt.Errorf("catalog database is empty (run 'volcano import' first)")
	}
	return col, nil
}

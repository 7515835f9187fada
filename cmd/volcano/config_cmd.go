package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/delorianv/volcano-eruptions/internal/config"
	"github.com/delorianv/volcano-eruptions/internal/paths"
	"github.com/delorianv/volcano-eruptions/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage volcano configuration",
		Long: `Commands for managing the volcano configuration file.

The config file is stored at: ~/.config/volcano/config.toml

Examples:
  volcano config init    # Create default config file
  volcano config show    # Display current configuration
  volcano config path    # Show config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func configExists() bool {
	path, err := paths.ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configExists() && !force {
				path, _ := paths.ConfigPath()
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if dataPath != "" {
				cfg.Dataset.Path = dataPath
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := paths.ConfigPath()
			ui.SuccessMsg("Created config file: %s", path)
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Set dataset.path to your volcano CSV")
			fmt.Println("  2. Run 'volcano play' to watch the timeline")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfgFile != "" {
				fmt.Printf("Config file: %s\n", cfgFile)
			} else if path, err := paths.ConfigPath(); err == nil {
				if configExists() {
					fmt.Printf("Config file: %s\n", path)
				} else {
					fmt.Printf("Config file: %s (not created, showing defaults)\n", path)
				}
			}

			ui.Section("Dataset")
			fmt.Printf("Path:     %s\n", orUnset(cfg.Dataset.Path))
			fmt.Printf("Database: %s\n", orUnset(cfg.Dataset.Database))

			ui.Section("Simulation")
			fmt.Printf("Range: %s to %s\n",
				ui.FormatYear(cfg.Simulation.StartYear), ui.FormatYear(cfg.Simulation.EndYear))
			fmt.Printf("Speed: %d frames/sec\n", cfg.Simulation.Speed)

			ui.Section("Server")
			fmt.Printf("Addr: %s\n", cfg.Server.Addr)

			ui.Section("Logging")
			fmt.Printf("Level: %s\n", cfg.Logging.Level)
			fmt.Printf("File:  %s\n", orUnset(cfg.Logging.File))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func orUnset(s string) string {
	if s == "" {
		return ui.Dim("(unset)")
	}
	return s
}

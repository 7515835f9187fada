// Package config loads and persists the volcano TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/delorianv/volcano-eruptions/internal/eruption"
	"github.com/delorianv/volcano-eruptions/internal/logging"
	"github.com/delorianv/volcano-eruptions/internal/paths"
)

// Config is the full application configuration.
type Config struct {
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Server     ServerConfig     `mapstructure:"server"`
	Logging    logging.Config   `mapstructure:"logging"`
}

// DatasetConfig locates the source catalog.
type DatasetConfig struct {
	// Path to the volcano CSV. Empty means commands require an explicit
	// --dataset flag.
	Path string `mapstructure:"path"`
	// Database overrides the catalog database location.
	Database string `mapstructure:"database"`
}

// SimulationConfig carries animation defaults. Fade windows are fixed model
// parameters, not configuration; only the sweep range and speed are tunable.
type SimulationConfig struct {
	StartYear int `mapstructure:"start_year"`
	EndYear   int `mapstructure:"end_year"`
	Speed     int `mapstructure:"speed"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:     "",
			Database: "",
		},
		Simulation: SimulationConfig{
			StartYear: eruption.MinYear,
			EndYear:   eruption.MaxYear,
			Speed:     50,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Validate checks the simulation settings against the model bounds.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.StartYear > s.EndYear {
		return fmt.Errorf("simulation start_year %d after end_year %d", s.StartYear, s.EndYear)
	}
	if s.StartYear < eruption.MinYear || s.EndYear > eruption.MaxYear {
		return fmt.Errorf("simulation range [%d, %d] outside [%d, %d]",
			s.StartYear, s.EndYear, eruption.MinYear, eruption.MaxYear)
	}
	if s.Speed < eruption.MinSpeed || s.Speed > eruption.MaxSpeed {
		return fmt.Errorf("simulation speed %d outside [%d, %d]", s.Speed, eruption.MinSpeed, eruption.MaxSpeed)
	}
	return nil
}

// DatabasePath resolves the catalog database location, preferring the
// configured override.
func (c *Config) DatabasePath() (string, error) {
	if c.Dataset.Database != "" {
		return c.Dataset.Database, nil
	}
	return paths.DatabasePath()
}

// Load reads configuration from the config file, falling back to defaults
// when no file exists.
func Load() (*Config, error) {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to get config path: %w", err)
	}
	return LoadFile(configPath)
}

// LoadFile reads configuration from an explicit path.
func LoadFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default config path.
func (c *Config) Save() error {
	configPath, err := paths.ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	return os.WriteFile(configPath, []byte(c.ToTOML()), 0644)
}

// ToTOML renders the configuration as a commented TOML document.
func (c *Config) ToTOML() string {
	return fmt.Sprintf(`# Volcano Eruptions Configuration
# Generated by: volcano config init

[dataset]
# Source CSV with Volcano_Name, Country, Latitude, Longitude,
# Volcano_Type and Last_Eruption columns
path = "%s"

# Catalog database location (empty = default under the config dir)
database = "%s"

[simulation]
# Simulated year sweep, bounded to [%d, %d]
start_year = %d
end_year = %d

# Frames per second, 1-100
speed = %d

[server]
addr = "%s"

[logging]
level = "%s"
file = "%s"
max_size_mb = %d
max_backups = %d
`,
		c.Dataset.Path,
		c.Dataset.Database,
		eruption.MinYear, eruption.MaxYear,
		c.Simulation.StartYear,
		c.Simulation.EndYear,
		c.Simulation.Speed,
		c.Server.Addr,
		c.Logging.Level,
		c.Logging.File,
		c.Logging.MaxSizeMB,
		c.Logging.MaxBackups,
	)
}

// Package config provides configuration management for sportdb.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
//
// # Environment Variables
//
// Use SPORTDB_ prefix with underscores for nesting:
//
//	SPORTDB_DATABASE_FILE=catalog.sqlite
//	SPORTDB_LOG_LEVEL=info
//	SPORTDB_IMPORT_PROGRESS_EVERY=1000
package config

import (
	"runtime"
)

// Config represents the complete sportdb configuration.
type Config struct {
	// Database contains settings for the SQLite catalog database.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Feeds contains the location of the feed-set description file.
	Feeds FeedsConfig `mapstructure:"feeds" yaml:"feeds"`

	// Import contains settings specific to the load command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for feed fetches.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains settings for the catalog SQLite database.
type DatabaseConfig struct {
	// File is the name of the live catalog database file inside DataDir.
	File string `mapstructure:"file" yaml:"file"`

	// DataDir is the directory holding the live database, the import
	// database and fetched feed files. Empty means CacheDir(HomeDir).
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// FeedsConfig points at the feeds.yaml file describing the catalog feed
// and the four metadata feeds.
type FeedsConfig struct {
	// File is the path to the feed-set description (feeds.yaml).
	File string `mapstructure:"file" yaml:"file"`
}

// ImportConfig contains settings specific to the load command.
type ImportConfig struct {
	// ProgressEvery is the number of catalog rows between progress
	// notifications during bulk import.
	ProgressEvery int `mapstructure:"progress_every" yaml:"progress_every"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			File: "catalog.sqlite",
		},
		Feeds: FeedsConfig{
			File: "feeds.yaml",
		},
		Import: ImportConfig{
			ProgressEvery: 1000,
		},
		Log: LogConfig{
			Format:      "text",
			Level:       "info",
			Destination: "stderr",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

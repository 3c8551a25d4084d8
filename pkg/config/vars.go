package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "sportdb"

	// ImportFilePrefix is the file name prefix used for the temporary
	// import database a load builds before the hot swap.
	ImportFilePrefix = "import-"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/sportdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files: fetched feeds and
// database files. Returns ~/.cache/sportdb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/sportdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/sportdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// FeedsFilePath returns the full path to the feeds.yaml file.
// Returns ~/.config/sportdb/feeds.yaml by default.
func FeedsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "feeds.yaml")
}

// DataDir resolves the directory holding database and feed files for the
// given config: an explicit Database.DataDir wins, otherwise the cache
// directory under HomeDir is used.
func (c *Config) DataDir() string {
	if c.Database.DataDir != "" {
		return c.Database.DataDir
	}
	return CacheDir(c.HomeDir)
}

// DatabasePath returns the full path of the live catalog database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir(), c.Database.File)
}

// FeedsPath resolves the location of the feed-set description file.
// Relative paths are taken from the config directory.
func (c *Config) FeedsPath() string {
	if filepath.IsAbs(c.Feeds.File) {
		return c.Feeds.File
	}
	return filepath.Join(ConfigDir(c.HomeDir), c.Feeds.File)
}

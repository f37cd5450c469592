// Package config loads the application configuration from a TOML file,
// trying a small set of candidate paths so the binary works both from
// the repo root and from cmd subdirectories.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig holds the basic application settings.
type MainConfig struct {
	AppName string `toml:"appName"` // application name, used in log output
	Host    string `toml:"host"`    // listen address, e.g. "0.0.0.0"
	Port    int    `toml:"port"`    // listen port
	Mode    string `toml:"mode"`    // "dev" or "release"
}

// MysqlConfig holds the MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// LogConfig holds the zap/lumberjack settings.
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // log directory
	FileName   string `toml:"fileName"`   // log file name
	MaxSize    int    `toml:"maxSize"`    // max size of one log file (MB)
	MaxBackups int    `toml:"maxBackups"` // max number of rotated files to keep
	MaxAge     int    `toml:"maxAge"`     // max age of rotated files (days)
	Level      string `toml:"level"`      // debug, info, warn, error
}

// Config aggregates all sections of the TOML file.
type Config struct {
	MainConfig  `toml:"mainConfig"`
	MysqlConfig `toml:"mysqlConfig"`
	LogConfig   `toml:"logConfig"`
}

var config *Config

// LoadConfig tries the candidate paths in order and stops at the first
// file that parses. A local override file wins over the default.
func LoadConfig() error {
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig returns the configuration singleton, loading it on first
// use. A missing file leaves the zero values in place, which is enough
// for tests.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig()
	}
	return config
}

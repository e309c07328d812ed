// Package config reads trailog settings from the environment, after
// loading an optional .env file from the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Backend selects where the workout snapshot is persisted.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendFile   Backend = "file"
)

// DefaultMapZoom matches the zoom level the map is recentered at.
const DefaultMapZoom = 13

const (
	minMapZoom = 1
	maxMapZoom = 19
)

// Config holds all trailog configuration.
type Config struct {
	Backend      Backend
	DBPath       string
	SnapshotPath string
	LogUseCases  bool
	MapZoom      int
}

// Default returns the configuration used when nothing is set. Paths live
// under home/.trailog.
func Default(home string) Config {
	dir := filepath.Join(home, ".trailog")
	return Config{
		Backend:      BackendSQLite,
		DBPath:       filepath.Join(dir, "trailog.db"),
		SnapshotPath: filepath.Join(dir, "workouts.json"),
		LogUseCases:  false,
		MapZoom:      DefaultMapZoom,
	}
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults for any unset values.
func Load() (Config, error) {
	// Try to load .env file (ignore error if not found)
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return FromEnv(Default(home), os.Getenv)
}

// FromEnv applies environment overrides on top of cfg.
func FromEnv(cfg Config, getenv func(string) string) (Config, error) {
	if v := getenv("TRAILOG_BACKEND"); v != "" {
		switch b := Backend(strings.ToLower(strings.TrimSpace(v))); b {
		case BackendSQLite, BackendFile:
			cfg.Backend = b
		default:
			return Config{}, fmt.Errorf("TRAILOG_BACKEND: unknown backend %q (want sqlite or file)", v)
		}
	}
	if v := getenv("TRAILOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("TRAILOG_SNAPSHOT_FILE"); v != "" {
		cfg.SnapshotPath = v
	}
	if v := getenv("TRAILOG_LOG_USE_CASES"); v != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("TRAILOG_LOG_USE_CASES: invalid boolean %q", v)
		}
		cfg.LogUseCases = on
	}
	if v := getenv("TRAILOG_MAP_ZOOM"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < minMapZoom || n > maxMapZoom {
			return Config{}, fmt.Errorf("TRAILOG_MAP_ZOOM: want an integer from %d to %d (got %q)", minMapZoom, maxMapZoom, v)
		}
		cfg.MapZoom = n
	}
	return cfg, nil
}

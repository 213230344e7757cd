// Package config loads the application configuration from environment
// variables. Entrypoints load .env via godotenv before calling Load.
package config

import (
	"os"
	"strconv"

	"gridsift/domain/grid"
	"gridsift/internal/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Extract ExtractConfig
	Server  ServerConfig
}

// ExtractConfig holds extraction pipeline settings. The scan bounds
// are cost controls with documented defaults; they are tunable here
// without code changes.
type ExtractConfig struct {
	HeaderBounds   grid.ScanBounds
	MetadataBounds grid.ScanBounds
	SnapshotBounds grid.ScanBounds
	PhoneRegion    string
	PhoneE164      bool
	OutputRoot     string
	BatchWorkers   int
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	extract, err := loadExtractConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load extraction configuration")
	}
	return &Config{
		Extract: *extract,
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
	}, nil
}

func loadExtractConfig() (*ExtractConfig, error) {
	headerBounds, err := loadBounds("HEADER_SCAN", grid.DefaultHeaderBounds())
	if err != nil {
		return nil, err
	}
	metadataBounds, err := loadBounds("METADATA_SCAN", grid.DefaultMetadataBounds())
	if err != nil {
		return nil, err
	}
	snapshotBounds, err := loadBounds("SNAPSHOT", grid.DefaultSnapshotBounds())
	if err != nil {
		return nil, err
	}
	workers, err := getEnvIntOrDefault("BATCH_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	return &ExtractConfig{
		HeaderBounds:   headerBounds,
		MetadataBounds: metadataBounds,
		SnapshotBounds: snapshotBounds,
		PhoneRegion:    getEnvOrDefault("PHONE_REGION", "CA"),
		PhoneE164:      getEnvBoolOrDefault("PHONE_E164", true),
		OutputRoot:     getEnvOrDefault("OUTPUT_ROOT", "."),
		BatchWorkers:   workers,
	}, nil
}

func loadBounds(prefix string, defaults grid.ScanBounds) (grid.ScanBounds, error) {
	rows, err := getEnvIntOrDefault(prefix+"_ROWS", defaults.Rows)
	if err != nil {
		return grid.ScanBounds{}, err
	}
	cols, err := getEnvIntOrDefault(prefix+"_COLS", defaults.Cols)
	if err != nil {
		return grid.ScanBounds{}, err
	}
	if rows <= 0 || cols <= 0 {
		return grid.ScanBounds{}, errors.ConfigInvalid(prefix + " bounds must be positive")
	}
	return grid.ScanBounds{Rows: rows, Cols: cols}, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return n, nil
}

func getEnvBoolOrDefault(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

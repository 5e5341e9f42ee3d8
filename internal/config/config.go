// Package config loads application configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/schedule"
)

// Config holds the full application configuration.
type Config struct {
	Port   string
	DBPath string

	// Ingest
	DataDir              string
	VisitConfidence      float64 // numeric 0-100 threshold for place visits
	DropLowConfidence    bool    // boolean switch for LOW-confidence segments
	KeepExtractedBundles bool

	// Reporting
	StartPeriod   string // YYYY-MM-DD, inclusive
	EndPeriod     string // YYYY-MM-DD, inclusive
	MaxNameLength int
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                 getEnv("PORT", ":8080"),
		DBPath:               getEnv("DB_PATH", "./location_data.db"),
		DataDir:              getEnv("DATA_DIR", "./data"),
		VisitConfidence:      getEnvFloat("VISIT_CONFIDENCE_THRESHOLD", 50),
		DropLowConfidence:    getEnvBool("DROP_LOW_CONFIDENCE", true),
		KeepExtractedBundles: getEnvBool("KEEP_EXTRACTED_BUNDLES", false),
		StartPeriod:          getEnv("SCHEDULE_START", ""),
		EndPeriod:            getEnv("SCHEDULE_END", ""),
		MaxNameLength:        getEnvInt("NAME_MAX_LENGTH", schedule.DefaultMaxNameLength),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

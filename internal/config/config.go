// SPDX-License-Identifier: Apache-2.0

// Package config loads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Log     LogConfig
	Scoring ScoringConfig
	Paths   PathConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// ScoringConfig holds mention scorer settings
type ScoringConfig struct {
	Threshold   float64
	StrictNames bool
}

// PathConfig holds default file locations
type PathConfig struct {
	Report  string
	PlotDir string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Log: LogConfig{
			Level:  getEnv("EDEVAL_LOG_LEVEL", "info"),
			Format: getEnv("EDEVAL_LOG_FORMAT", "console"),
		},
		Scoring: ScoringConfig{
			Threshold:   getEnvAsFloat("EDEVAL_THRESHOLD", 0),
			StrictNames: getEnvAsBool("EDEVAL_STRICT_NAMES", false),
		},
		Paths: PathConfig{
			Report:  getEnv("EDEVAL_REPORT_PATH", "data/evaluation_result.csv"),
			PlotDir: getEnv("EDEVAL_PLOT_DIR", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

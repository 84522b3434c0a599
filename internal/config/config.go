package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
	Export   ExportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// AnalysisConfig holds engine settings
type AnalysisConfig struct {
	// Shards is the number of goroutines used for region evaluation;
	// 0 means one per CPU.
	Shards int
}

// ExportConfig holds table export settings
type ExportConfig struct {
	Dir string
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("NPTEST_PORT", "8080"),
		},
		Analysis: AnalysisConfig{
			Shards: getEnvInt("NPTEST_SHARDS", 0),
		},
		Export: ExportConfig{
			Dir: getEnv("NPTEST_EXPORT_DIR", "."),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

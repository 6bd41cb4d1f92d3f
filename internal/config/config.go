// Package config loads settings from a .env file or the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is everything the CLI wires from the environment.
type Config struct {
	ProjectID     string
	DatasetID     string
	ReceiptBucket string
	GeminiModel   string
	LogLevel      string
	Cashback      CashbackConfig
}

// CashbackConfig is the deployment-specific default-cashback heuristic: when
// a selected person's name matches NamePattern, DefaultPercent is applied.
type CashbackConfig struct {
	NamePattern    string
	DefaultPercent float64
}

// Load reads .env (optional) and the environment.
func Load() *Config {
	// .env is optional; environment variables alone work fine (Docker, CI).
	for _, envFile := range []string{".env", "../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	percent, _ := strconv.ParseFloat(getEnv("CASHBACK_DEFAULT_PERCENT", "0"), 64)

	return &Config{
		ProjectID:     getEnv("GCP_PROJECT", ""),
		DatasetID:     getEnv("BQ_DATASET", "quickadd"),
		ReceiptBucket: getEnv("RECEIPT_BUCKET", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Cashback: CashbackConfig{
			NamePattern:    getEnv("CASHBACK_NAME_PATTERN", ""),
			DefaultPercent: percent,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

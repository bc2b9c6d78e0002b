package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port          string
	TemplatesDir  string
	GenerateCVURL string
	DatabaseURL   string
	ChromePath    string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "3000"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "templates"),
		GenerateCVURL: os.Getenv("GENERATE_CV_URL"),
		DatabaseURL:   os.Getenv("CV_DATABASE_URL"),
		ChromePath:    os.Getenv("CHROME_PATH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds server settings sourced from the environment.
type Config struct {
	Port     string
	DBPath   string
	MediaDir string
	BaseURL  string
}

// Load reads configuration from an optional .env file and the environment.
// Missing values fall back to development defaults.
func Load() *Config {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:     getenv("PORT", "8080"),
		DBPath:   getenv("GALLERY_DB_PATH", "gallery.db"),
		MediaDir: getenv("GALLERY_MEDIA_DIR", "media"),
		BaseURL:  getenv("GALLERY_BASE_URL", "http://localhost:8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDSN          string
	StorageBaseURL string // object-storage root for produto/loja/banner imagery
	SiteBaseURL    string
	LogFile        string
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := Config{
		Port:           getenv("PORT", "8080"),
		DBDSN:          getenv("DB_DSN", "turatti.db"),
		StorageBaseURL: os.Getenv("STORAGE_BASE_URL"),
		SiteBaseURL:    getenv("SITE_BASE_URL", "http://localhost:8080"),
		LogFile:        os.Getenv("LOG_FILE"),
	}
	if cfg.StorageBaseURL == "" {
		log.Printf("[config] STORAGE_BASE_URL not set; images resolve to the inline placeholder")
	}
	log.Printf("[config] PORT=%s DB_DSN=%s SITE_BASE_URL=%s", cfg.Port, cfg.DBDSN, cfg.SiteBaseURL)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"os"
	"time"
)

const (
	// CacheTTL is how long a fetched city list or place detail stays fresh.
	CacheTTL = time.Hour

	// PageSize is the number of results requested per Text Search page.
	PageSize = 20

	// MaxPages bounds how many Text Search pages one request may fetch.
	MaxPages = 3

	// MaxResults caps the number of restaurants returned per city.
	MaxResults = 50

	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultPort        = "8080"
)

// placeholderKey is the value shipped in .env.example; treat it as unset.
const placeholderKey = "your_api_key_here"

type Config struct {
	PlacesAPIKey string
	GeminiAPIKey string
	GeminiModel  string
	Port         string
}

// Load reads configuration from the environment. A missing places key is
// not fatal here: the route handlers answer 500 per request instead, so the
// server still boots in a partially configured environment.
func Load() *Config {
	cfg := &Config{
		PlacesAPIKey: os.Getenv("GOOGLE_PLACES_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		Port:         os.Getenv("PORT"),
	}

	if cfg.PlacesAPIKey == placeholderKey {
		cfg.PlacesAPIKey = ""
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultGeminiModel
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	return cfg
}

// HasPlacesKey reports whether the places credential is usable.
func (c *Config) HasPlacesKey() bool {
	return c.PlacesAPIKey != ""
}

package config

import (
	"os"
	"strings"
)

// Config holds all runtime configuration. It is loaded once in main and
// passed explicitly to the components that need it.
type Config struct {
	Addr    string
	BaseURL string
	Env     string

	// Google OAuth client used for admin sign-in and Drive uploads
	GoogleClientID     string
	GoogleClientSecret string

	// Secret used to sign the session cookie
	AuthSecret string

	// Comma-separated list of admin emails
	AllowedEmails string

	// Spreadsheet backing the catalog and home content
	SpreadsheetID string

	// Service account used for Sheets access
	ServiceAccountEmail      string
	ServiceAccountPrivateKey string

	// Optional Drive folder for uploaded images (root when empty)
	DriveFolderID string

	RedisURL string
}

// Load reads configuration from environment variables.
func Load() Config {
	port := getenv("PORT", "8080")
	// PORT from some platforms comes with a leading colon
	port = strings.TrimPrefix(port, ":")

	return Config{
		Addr:                     "0.0.0.0:" + port,
		BaseURL:                  getenv("BASE_URL", "http://localhost:"+port),
		Env:                      getenv("ENV", "development"),
		GoogleClientID:           os.Getenv("AUTH_GOOGLE_ID"),
		GoogleClientSecret:       os.Getenv("AUTH_GOOGLE_SECRET"),
		AuthSecret:               os.Getenv("AUTH_SECRET"),
		AllowedEmails:            os.Getenv("ALLOWED_EMAILS"),
		SpreadsheetID:            os.Getenv("SPREADSHEET_ID"),
		ServiceAccountEmail:      os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		ServiceAccountPrivateKey: os.Getenv("GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY"),
		DriveFolderID:            os.Getenv("GOOGLE_DRIVE_FOLDER_ID"),
		RedisURL:                 getenv("REDIS_URL", "redis://localhost:6379/0"),
	}
}

// Production reports whether the app runs with production settings
// (secure cookies, no .env loading).
func (c Config) Production() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"catalogo-pro/app"
	"catalogo-pro/config"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	cfg := config.Load()
	if !cfg.Production() {
		// Use Overload to ensure .env values override system environment variables
		if err := godotenv.Overload(".env"); err != nil {
			log.Printf("Warning: .env file not found, using system environment variables")
		} else {
			log.Printf("Loaded environment variables from .env")
			cfg = config.Load()
		}
	}

	// Initialize application
	sessionStore, err := app.Initialize(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer sessionStore.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	log.Printf("Server starting on %s", cfg.Addr)
	log.Printf("Storefront: %s  Admin: %s/admin", cfg.BaseURL, cfg.BaseURL)

	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

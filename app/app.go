package app

import (
	"context"
	"fmt"
	"log"

	"catalogo-pro/app/controller"
	"catalogo-pro/app/router"
	"catalogo-pro/auth"
	"catalogo-pro/config"
	"catalogo-pro/service"
	"catalogo-pro/session"
)

// Initialize wires the application together. The returned session store
// must be closed on shutdown.
func Initialize(cfg config.Config) (*session.Store, error) {
	ctx := context.Background()

	// Sheets client (service account)
	sheetsService, err := service.NewSheetsService(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Catch a re-ordered catalog sheet before it corrupts writes. A read
	// failure only warns: the sheet may be temporarily unreachable.
	if err := sheetsService.ValidateSchema(ctx); err != nil {
		log.Printf("⚠️  Catalog schema validation: %v", err)
	}

	// Drive client acts per-request with the admin's OAuth token
	driveService := service.NewDriveService(cfg.DriveFolderID)

	// Sessions in Redis
	sessionStore, err := session.NewStore(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	oauthCfg := auth.NewOAuthConfig(cfg)
	sessions := session.NewManager(sessionStore, oauthCfg)

	allowlist := auth.NewAllowlist(cfg.AllowedEmails)
	if allowlist.Empty() {
		log.Printf("⚠️  ALLOWED_EMAILS is empty: nobody can access the admin panel")
	}
	gate := auth.NewGate(allowlist, sessions, cfg.AuthSecret)

	exportService := service.NewExportService(sheetsService, cfg.BaseURL)

	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(sheetsService, driveService, sessions, cfg.AuthSecret),
		Home:    controller.NewHomeController(sheetsService, sessions, cfg.AuthSecret),
		Upload:  controller.NewUploadController(driveService, sessions, cfg.AuthSecret),
		Auth:    controller.NewAuthController(oauthCfg, allowlist, sessions, cfg.AuthSecret, cfg.Production()),
		Page:    controller.NewPageController(sheetsService, exportService, gate),
	}

	router.SetupRoutes(controllers, gate)

	return sessionStore, nil
}

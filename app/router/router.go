package router

import (
	"net/http"

	"catalogo-pro/app/controller"
	"catalogo-pro/auth"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Home    *controller.HomeController
	Upload  *controller.UploadController
	Auth    *controller.AuthController
	Page    *controller.PageController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers, gate *auth.Gate) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// JSON API. Mutating verbs check the session inside the controllers,
	// since these paths are not covered by the admin page gate.
	http.HandleFunc("/api/catalog", controllers.Catalog.Handle)
	http.HandleFunc("/api/home", controllers.Home.Handle)
	http.HandleFunc("/api/upload", controllers.Upload.Upload)

	// OAuth sign-in flow
	http.HandleFunc("/auth/signin", controllers.Auth.SignIn)
	http.HandleFunc("/auth/callback", controllers.Auth.Callback)
	http.HandleFunc("/auth/signout", controllers.Auth.SignOut)

	// Admin pages, behind the allow-list gate
	http.HandleFunc("/admin", gate.RequireAdmin(controllers.Page.Admin))
	http.HandleFunc("/admin/catalog/export", gate.RequireAdmin(controllers.Page.ExportCatalog))

	// Internal render route for the PDF export; token-gated instead of
	// session-gated so headless Chrome can reach it
	http.HandleFunc("/admin/catalog/render", controllers.Page.RenderCatalog)

	// Static assets (default banners, icons)
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public storefront
	http.HandleFunc("/", controllers.Page.Home)
}

package controller

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"catalogo-pro/auth"
	"catalogo-pro/models"
	"catalogo-pro/service"
	"catalogo-pro/utils"
)

// PageController serves the server-rendered pages: the public storefront,
// the admin panel and the catalog export.
type PageController struct {
	sheets service.SheetsServiceInterface
	export *service.ExportService
	gate   *auth.Gate
}

// NewPageController creates a new PageController.
func NewPageController(sheets service.SheetsServiceInterface, export *service.ExportService, gate *auth.Gate) *PageController {
	return &PageController{
		sheets: sheets,
		export: export,
		gate:   gate,
	}
}

func renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	templatePath := filepath.Join("templates", name)
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"formatPrice": utils.FormatPrice,
	}).ParseFiles(templatePath)
	if err != nil {
		log.Printf("❌ Failed to parse template %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template error doesn't emit half a page
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("❌ Failed to execute template %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("❌ Error writing HTML response: %v", err)
	}
}

// Home handles GET /: the public storefront. Home content degrades to
// defaults on upstream failure; a catalog read failure renders an empty
// grid rather than an error page.
func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content := c.sheets.GetHomeContent(r.Context())

	items, err := c.sheets.ListItems(r.Context())
	if err != nil {
		log.Printf("⚠️  Storefront: could not fetch catalog: %v", err)
		items = []models.CatalogItem{}
	}

	renderTemplate(w, "home.html", struct {
		Content models.HomeContent
		Items   []models.CatalogItem
	}{
		Content: content,
		Items:   items,
	})
}

// Admin handles GET /admin (behind the admin gate).
func (c *PageController) Admin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	_, data, err := c.gate.Session(r)
	if err != nil {
		http.Redirect(w, r, "/auth/signin", http.StatusFound)
		return
	}

	renderTemplate(w, "admin.html", struct {
		Email string
	}{
		Email: data.Email,
	})
}

// ExportCatalog handles GET /admin/catalog/export?format=html|pdf
// (behind the admin gate).
func (c *PageController) ExportCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "html":
		html, err := c.export.RenderCatalogHTML(r.Context())
		if err != nil {
			log.Printf("❌ ExportCatalog: %v", err)
			http.Error(w, "Failed to render catalog", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(html)); err != nil {
			log.Printf("❌ ExportCatalog: error writing response: %v", err)
		}

	case "pdf":
		pdf, err := c.export.GeneratePDF(r.Context())
		if err != nil {
			log.Printf("❌ ExportCatalog PDF: %v", err)
			http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="catalogo.pdf"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			log.Printf("❌ ExportCatalog PDF: error writing response: %v", err)
		}

	default:
		http.Error(w, fmt.Sprintf("Invalid format %q. Valid formats: html, pdf", format), http.StatusBadRequest)
	}
}

// RenderCatalog handles GET /admin/catalog/render. It is the page the
// headless browser prints to PDF; instead of a session it requires the
// per-process render token, which never leaves the server.
func (c *PageController) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("token") != c.export.RenderToken() {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	html, err := c.export.RenderCatalogHTML(r.Context())
	if err != nil {
		log.Printf("❌ RenderCatalog: %v", err)
		http.Error(w, "Failed to render catalog", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("❌ RenderCatalog: error writing response: %v", err)
	}
}

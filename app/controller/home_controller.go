package controller

import (
	"log"
	"net/http"

	"catalogo-pro/models"
	"catalogo-pro/service"
	"catalogo-pro/session"
)

// HomeController handles /api/home: the editable storefront content.
type HomeController struct {
	sheets       service.SheetsServiceInterface
	sessions     session.ManagerInterface
	cookieSecret string
}

// NewHomeController creates a new HomeController.
func NewHomeController(sheets service.SheetsServiceInterface, sessions session.ManagerInterface, cookieSecret string) *HomeController {
	return &HomeController{
		sheets:       sheets,
		sessions:     sessions,
		cookieSecret: cookieSecret,
	}
}

// Handle routes /api/home by HTTP method.
func (c *HomeController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPut:
		c.put(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get handles GET /api/home. Never fails: malformed or unreachable
// content degrades to the hardcoded defaults.
func (c *HomeController) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.sheets.GetHomeContent(r.Context()))
}

// put handles PUT /api/home
func (c *HomeController) put(w http.ResponseWriter, r *http.Request) {
	sessionID := session.IDFromRequest(r, c.cookieSecret)
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return
	}
	if _, err := c.sessions.Get(r.Context(), sessionID); err != nil {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return
	}

	var payload models.HomeContent
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	if err := c.sheets.UpdateHomeContent(r.Context(), payload); err != nil {
		log.Printf("❌ UpdateHomeContent: %v", err)
		writeError(w, http.StatusInternalServerError, "Error al actualizar el contenido del inicio")
		return
	}

	writeMessage(w, "Contenido del inicio actualizado correctamente")
}

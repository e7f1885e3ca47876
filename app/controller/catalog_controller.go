package controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"catalogo-pro/models"
	"catalogo-pro/service"
	"catalogo-pro/session"
	"catalogo-pro/utils"
)

// CatalogController handles /api/catalog. Reads are public; every
// mutating verb requires a session, checked here independently of the
// page middleware since API routes are not covered by it.
type CatalogController struct {
	sheets       service.SheetsServiceInterface
	drive        service.DriveServiceInterface
	sessions     session.ManagerInterface
	cookieSecret string
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(
	sheets service.SheetsServiceInterface,
	drive service.DriveServiceInterface,
	sessions session.ManagerInterface,
	cookieSecret string,
) *CatalogController {
	return &CatalogController{
		sheets:       sheets,
		drive:        drive,
		sessions:     sessions,
		cookieSecret: cookieSecret,
	}
}

// requireSession resolves the request session or writes a 401.
func (c *CatalogController) requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := session.IDFromRequest(r, c.cookieSecret)
	if sessionID == "" {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return "", false
	}
	if _, err := c.sessions.Get(r.Context(), sessionID); err != nil {
		writeError(w, http.StatusUnauthorized, "No autorizado")
		return "", false
	}
	return sessionID, true
}

// Handle routes /api/catalog by HTTP method.
func (c *CatalogController) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.add(w, r)
	case http.MethodPut:
		c.update(w, r)
	case http.MethodDelete:
		c.delete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// list handles GET /api/catalog
func (c *CatalogController) list(w http.ResponseWriter, r *http.Request) {
	items, err := c.sheets.ListItems(r.Context())
	if err != nil {
		log.Printf("❌ ListItems: %v", err)
		writeError(w, http.StatusInternalServerError, "Error al obtener los datos")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// add handles POST /api/catalog
func (c *CatalogController) add(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.requireSession(w, r); !ok {
		return
	}

	var item models.CatalogItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	// IDs are client-generated timestamps; default one when absent
	if item.ID == "" {
		item.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	if err := c.sheets.AppendItem(r.Context(), item); err != nil {
		log.Printf("❌ AppendItem: %v", err)
		writeError(w, http.StatusInternalServerError, "Error al agregar el ítem")
		return
	}

	writeMessage(w, "Ítem agregado correctamente")
}

// update handles PUT /api/catalog
func (c *CatalogController) update(w http.ResponseWriter, r *http.Request) {
	if _, ok := c.requireSession(w, r); !ok {
		return
	}

	var item models.CatalogItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la petición no válido")
		return
	}

	// Row 1 is the header; anything below 2 can't be an item row
	if item.RowIndex < 2 {
		writeError(w, http.StatusBadRequest, "rowIndex no válido")
		return
	}

	if err := c.sheets.UpdateItem(r.Context(), item.RowIndex, item); err != nil {
		log.Printf("❌ UpdateItem row=%d: %v", item.RowIndex, err)
		writeError(w, http.StatusInternalServerError, "Error al actualizar el ítem")
		return
	}

	writeMessage(w, "Ítem actualizado correctamente")
}

// delete handles DELETE /api/catalog?rowIndex=N. The spreadsheet row is
// deleted first; the associated Drive image is then removed best-effort
// and never fails the request.
func (c *CatalogController) delete(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := c.requireSession(w, r)
	if !ok {
		return
	}

	rowIndex, err := strconv.Atoi(r.URL.Query().Get("rowIndex"))
	if err != nil || rowIndex < 2 {
		writeError(w, http.StatusBadRequest, "rowIndex no válido")
		return
	}

	// Look the item up before the delete to capture its image file ID
	var fileID string
	items, err := c.sheets.ListItems(r.Context())
	if err != nil {
		log.Printf("⚠️  Could not fetch items before delete: %v", err)
	} else {
		for _, item := range items {
			if item.RowIndex == rowIndex {
				fileID = utils.ExtractDriveFileID(item.Image)
				break
			}
		}
	}

	if err := c.sheets.DeleteItem(r.Context(), rowIndex); err != nil {
		log.Printf("❌ DeleteItem row=%d: %v", rowIndex, err)
		writeError(w, http.StatusInternalServerError, "Error al eliminar el ítem")
		return
	}

	// Cascade: remove the stored image. Failures are logged inside
	// Remove and swallowed; the row deletion already succeeded.
	if fileID != "" {
		accessToken, err := c.sessions.AccessToken(r.Context(), sessionID)
		if err != nil {
			log.Printf("⚠️  No access token for Drive cascade delete: %v", err)
		} else {
			c.drive.Remove(r.Context(), fileID, accessToken)
		}
	}

	writeMessage(w, "Ítem eliminado correctamente")
}

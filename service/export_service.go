package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"catalogo-pro/models"
	"catalogo-pro/utils"
)

// itemsPerExportPage is how many products fit on one A4 export page.
const itemsPerExportPage = 9

// ExportService renders the catalog to a printable HTML layout and, via
// headless Chrome, to PDF.
type ExportService struct {
	sheets  SheetsServiceInterface
	baseURL string

	// renderToken gates the internal render route so only the headless
	// browser driven by this process can reach it without a session.
	renderToken string
}

// NewExportService creates an ExportService.
func NewExportService(sheets SheetsServiceInterface, baseURL string) *ExportService {
	return &ExportService{
		sheets:      sheets,
		baseURL:     baseURL,
		renderToken: uuid.NewString(),
	}
}

// RenderToken returns the token the render route must be called with.
func (s *ExportService) RenderToken() string {
	return s.renderToken
}

// RenderCatalogHTML renders the full catalog as paginated print HTML.
func (s *ExportService) RenderCatalogHTML(ctx context.Context) (string, error) {
	items, err := s.sheets.ListItems(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch items for export: %w", err)
	}

	content := s.sheets.GetHomeContent(ctx)
	pages := paginateItems(items)

	templateData := struct {
		Brand    string
		Title    string
		Subtitle string
		Pages    [][]models.CatalogItem
		Date     string
	}{
		Brand:    content.Sections.NavBrand,
		Title:    content.Sections.CatalogTitle,
		Subtitle: content.Sections.CatalogSubtitle,
		Pages:    pages,
		Date:     time.Now().Format("02/01/2006"),
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.New("catalog.html").Funcs(template.FuncMap{
		"formatPrice": utils.FormatPrice,
	}).ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF prints the catalog render route to PDF using chromedp.
func (s *ExportService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required for running in containers
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/catalog/render?token=%s", s.baseURL, s.renderToken)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for the remote Drive thumbnails to load
		chromedp.Evaluate(`
			(function() {
				return Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
					return new Promise((resolve) => {
						if (img.complete) { resolve(); return; }
						const timeout = setTimeout(() => resolve(), 5000);
						img.onload = () => { clearTimeout(timeout); resolve(); };
						img.onerror = () => { clearTimeout(timeout); resolve(); };
					});
				}));
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69". Page breaks come from the CSS.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// paginateItems splits items into export pages.
func paginateItems(items []models.CatalogItem) [][]models.CatalogItem {
	var pages [][]models.CatalogItem
	for start := 0; start < len(items); start += itemsPerExportPage {
		end := start + itemsPerExportPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end])
	}
	return pages
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"catalogo-pro/config"
	"catalogo-pro/models"
)

const (
	catalogSheetTitle = "Catalogo"
	catalogRange      = "Catalogo!A:F"

	homeSheetTitle    = "Inicio"
	homeCarouselRange = "Inicio!A1:B4"
	homeFeaturesRange = "Inicio!A6:D10"
	homeStatsRange    = "Inicio!A12:C15"
	homeKeyValueRange = "Inicio!A17:B35"

	// defaultWhatsAppAction is used when an item has no action URL.
	defaultWhatsAppAction = "https://wa.me/522225230942"
)

// catalogColumns is the fixed column schema of the "Catalogo" sheet
// (columns A-F). The header row is validated against it on every read.
var catalogColumns = []string{"id", "name", "description", "price", "image", "action"}

// SheetsService maps rows of the backing spreadsheet to catalog items and
// home content. All mutations are last-writer-wins: the spreadsheet has no
// row locking, and deleting a row shifts the rowIndex of every later row.
type SheetsService struct {
	client        *sheets.Service
	spreadsheetID string
}

// NewSheetsService creates the Sheets client from service account
// credentials. The private key may arrive with escaped newlines (common
// when set through an env var) and is restored before use.
func NewSheetsService(ctx context.Context, cfg config.Config) (*SheetsService, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID environment variable is not set")
	}
	if cfg.ServiceAccountEmail == "" || cfg.ServiceAccountPrivateKey == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY must be set")
	}

	privateKey := strings.TrimSpace(strings.ReplaceAll(cfg.ServiceAccountPrivateKey, `\n`, "\n"))

	credentials, err := json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": cfg.ServiceAccountEmail,
		"private_key":  privateKey,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build service account credentials: %w", err)
	}

	client, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetsService{
		client:        client,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

// ValidateSchema reads the catalog header row and checks it against the
// fixed column schema. Called at startup so a re-ordered sheet is caught
// before it silently corrupts writes.
func (s *SheetsService) ValidateSchema(ctx context.Context) error {
	resp, err := s.client.Spreadsheets.Values.Get(s.spreadsheetID, "Catalogo!A1:F1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read catalog header: %w", err)
	}
	if len(resp.Values) == 0 {
		// An empty sheet is fine; the header appears with the first write
		return nil
	}
	return validateCatalogHeader(resp.Values[0])
}

// ListItems reads the whole catalog range. The first row is the header;
// every later row becomes one item with RowIndex = position+2. Image URLs
// are normalized to the Drive thumbnail format and missing actions get the
// default WhatsApp link.
func (s *SheetsService) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	resp, err := s.client.Spreadsheets.Values.Get(s.spreadsheetID, catalogRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog range: %w", err)
	}
	return parseCatalogRows(resp.Values)
}

// AppendItem writes one row at the end of the catalog range. No
// uniqueness check is done on the item ID.
func (s *SheetsService) AppendItem(ctx context.Context, item models.CatalogItem) error {
	values := &sheets.ValueRange{Values: [][]interface{}{catalogRowValues(item)}}
	_, err := s.client.Spreadsheets.Values.Append(s.spreadsheetID, catalogRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append catalog item: %w", err)
	}
	return nil
}

// UpdateItem overwrites exactly the row at rowIndex with the 6-field
// shape. There is no optimistic-concurrency check: last writer wins.
func (s *SheetsService) UpdateItem(ctx context.Context, rowIndex int, item models.CatalogItem) error {
	rowRange := fmt.Sprintf("Catalogo!A%d:F%d", rowIndex, rowIndex)
	values := &sheets.ValueRange{Values: [][]interface{}{catalogRowValues(item)}}
	_, err := s.client.Spreadsheets.Values.Update(s.spreadsheetID, rowRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update catalog row %d: %w", rowIndex, err)
	}
	return nil
}

// DeleteItem removes the row at rowIndex structurally. Every item with a
// larger rowIndex shifts down by one, so cached rowIndex values from
// earlier reads are invalid afterwards.
func (s *SheetsService) DeleteItem(ctx context.Context, rowIndex int) error {
	spreadsheet, err := s.client.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to resolve sheet id: %w", err)
	}

	var sheetID int64 = -1
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == catalogSheetTitle {
			sheetID = sheet.Properties.SheetId
			break
		}
	}
	if sheetID == -1 && len(spreadsheet.Sheets) > 0 {
		sheetID = spreadsheet.Sheets[0].Properties.SheetId
	}
	if sheetID == -1 {
		return fmt.Errorf("spreadsheet has no sheets")
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: int64(rowIndex - 1), // 1-based to 0-based
						EndIndex:   int64(rowIndex),     // exclusive
					},
				},
			},
		},
	}

	if _, err := s.client.Spreadsheets.BatchUpdate(s.spreadsheetID, request).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete catalog row %d: %w", rowIndex, err)
	}
	return nil
}

// GetHomeContent reads the four fixed home-content ranges in one batched
// call. Each block falls back to its defaults independently, so partial
// corruption in one range does not invalidate the others. A remote read
// error also yields the defaults: the storefront always renders.
func (s *SheetsService) GetHomeContent(ctx context.Context) models.HomeContent {
	content := models.DefaultHomeContent()

	resp, err := s.client.Spreadsheets.Values.BatchGet(s.spreadsheetID).
		Ranges(homeCarouselRange, homeFeaturesRange, homeStatsRange, homeKeyValueRange).
		Context(ctx).Do()
	if err != nil {
		log.Printf("⚠️  Failed to read home content, serving defaults: %v", err)
		return content
	}

	blocks := make([][][]interface{}, 4)
	for i, valueRange := range resp.ValueRanges {
		if i >= len(blocks) {
			break
		}
		blocks[i] = valueRange.Values
	}

	if carousel := parseCarousel(blocks[0]); carousel != nil {
		content.Carousel = carousel
	}
	if features := parseFeatures(blocks[1]); features != nil {
		content.Features = features
	}
	if stats := parseStats(blocks[2]); stats != nil {
		content.Stats = stats
	}
	applyHomeKeyValues(&content, parseHomeKeyValues(blocks[3]))

	return content
}

// UpdateHomeContent overwrites the four fixed ranges with the payload.
// Counts are clamped to the block maximums; the key/value block always
// writes every key in the fixed order.
func (s *SheetsService) UpdateHomeContent(ctx context.Context, payload models.HomeContent) error {
	if err := s.updateRange(ctx, homeCarouselRange, carouselValues(payload.Carousel)); err != nil {
		return err
	}
	if err := s.updateRange(ctx, homeFeaturesRange, featureValues(payload.Features)); err != nil {
		return err
	}
	if err := s.updateRange(ctx, homeStatsRange, statValues(payload.Stats)); err != nil {
		return err
	}
	return s.updateRange(ctx, homeKeyValueRange, homeKeyValueRows(payload))
}

func (s *SheetsService) updateRange(ctx context.Context, cellRange string, values [][]interface{}) error {
	body := &sheets.ValueRange{Values: values}
	_, err := s.client.Spreadsheets.Values.Update(s.spreadsheetID, cellRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", cellRange, err)
	}
	return nil
}

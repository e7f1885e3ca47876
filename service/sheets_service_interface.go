package service

import (
	"context"

	"catalogo-pro/models"
)

// SheetsServiceInterface defines the contract for the spreadsheet-backed
// catalog and home content store.
//
// Row-shift hazard: rowIndex values are positional. DeleteItem shifts
// every later row down by one, so callers must refetch the list before
// issuing any further mutation that references a rowIndex.
type SheetsServiceInterface interface {
	ListItems(ctx context.Context) ([]models.CatalogItem, error)
	AppendItem(ctx context.Context, item models.CatalogItem) error
	UpdateItem(ctx context.Context, rowIndex int, item models.CatalogItem) error
	DeleteItem(ctx context.Context, rowIndex int) error
	GetHomeContent(ctx context.Context) models.HomeContent
	UpdateHomeContent(ctx context.Context, payload models.HomeContent) error
}

// Ensure SheetsService implements SheetsServiceInterface
var _ SheetsServiceInterface = (*SheetsService)(nil)

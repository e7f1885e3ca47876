package models

// CatalogItem is one product row of the "Catalogo" sheet.
//
// RowIndex is the 1-based position of the row in the sheet (row 1 is the
// header, so the first item has RowIndex 2). It doubles as the mutation key
// for updates and deletes. It is NOT stable: deleting a row shifts every
// later row down by one, so callers must refetch the list before issuing
// another mutation.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price is kept as the raw cell text so sheet formatting passes through
	Price    string `json:"price"`
	Image    string `json:"image"`
	Action   string `json:"action"`
	RowIndex int    `json:"rowIndex,omitempty"`
}

// DriveFile is the result of uploading an image to Google Drive.
type DriveFile struct {
	ID        string `json:"fileId"`
	PublicURL string `json:"url"`
}

package models

// WorkbookData represents a loaded workbook: every sheet name plus the
// dataset of the first sheet.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists the sheets in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Data is the content of the first sheet.
	Data *Dataset `json:"data"`
}

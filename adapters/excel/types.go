package excel

// RawRow represents a row of raw spreadsheet data as string key-value pairs
type RawRow map[string]string

// Data represents one loaded sheet before coercion and validation.
type Data struct {
	Headers   []string // column headers, row one of the sheet
	Rows      []RawRow // data rows, row two onward
	SheetName string   // the sheet actually read
	UpdatedAt string   // "Data de Atualização" from the Metadados sheet, if present
}

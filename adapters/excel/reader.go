package excel

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"painel/domain/core"
	"painel/domain/schema"
)

// metadataSheet is the optional second sheet carrying the update
// timestamp written alongside the data.
const metadataSheet = "Metadados"

// Reader resolves and reads per-module spreadsheets from a fixed data
// directory. Files follow the dados_<module>.xlsx convention declared
// on each descriptor; a .csv file with the same base name is accepted
// as an alternative.
type Reader struct {
	dataDir string
}

// NewReader creates a reader rooted at the given data directory.
func NewReader(dataDir string) *Reader {
	return &Reader{dataDir: dataDir}
}

// Load reads the spreadsheet for a module descriptor into raw rows.
// Failure conditions are all non-fatal to the load chain:
// core.ErrFileMissing, core.ErrParse and core.ErrEmptyData each route
// the caller to synthetic fallback.
func (r *Reader) Load(desc schema.Descriptor) (*Data, error) {
	path, err := r.resolvePath(desc)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var data *Data
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		data, err = r.readCSV(path)
	} else {
		data, err = r.readWorkbook(path, desc.SheetName)
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[Reader] %s read in %.2fms (%d columns, %d rows)",
		filepath.Base(path), float64(time.Since(start).Nanoseconds())/1e6,
		len(data.Headers), len(data.Rows))
	return data, nil
}

// resolvePath locates the module's file, preferring the declared .xlsx
// name and falling back to a .csv sibling.
func (r *Reader) resolvePath(desc schema.Descriptor) (string, error) {
	path := filepath.Join(r.dataDir, desc.FileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	base := strings.TrimSuffix(desc.FileName, filepath.Ext(desc.FileName))
	csvPath := filepath.Join(r.dataDir, base+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return csvPath, nil
	}

	return "", core.NewFileMissingError(path)
}

// readWorkbook reads the module's primary sheet from an xlsx workbook.
func (r *Reader) readWorkbook(path, sheetName string) (*Data, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, sheetName)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}

	data, err := processRows(rows, path)
	if err != nil {
		return nil, err
	}
	data.SheetName = sheet
	data.UpdatedAt = readUpdatedAt(f)
	return data, nil
}

// readCSV reads a comma-separated alternative to the workbook. CSV
// files carry no metadata sheet, so UpdatedAt stays empty.
func (r *Reader) readCSV(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, core.NewParseError(path, err)
	}

	// encoding/csv silently drops empty lines, so the blank-row
	// contract has to be enforced on the raw bytes first.
	if row, ok := interiorBlankLine(raw); ok {
		return nil, core.NewParseError(path, blankRowError{row: row})
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError(path, err)
	}

	return processRows(rows, path)
}

// interiorBlankLine reports the 1-based line number of the first blank
// line inside the data region. Trailing blank lines are tolerated, the
// same as trailing blank sheet rows.
func interiorBlankLine(raw []byte) (int, bool) {
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	for i := 0; i < end; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			return i + 1, true
		}
	}
	return 0, false
}

// processRows converts raw string rows into Data. The header row is
// always row one and data begins at row two. Blank rows mid-data are a
// structural error, not something to skip.
func processRows(rows [][]string, path string) (*Data, error) {
	rows = trimTrailingBlank(rows)

	if len(rows) < 2 {
		return nil, core.NewEmptyDataError(path)
	}

	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, h := range headerRow {
		headers[i] = strings.TrimSpace(h)
	}

	var dataRows []RawRow
	for i := 1; i < len(rows); i++ {
		if rowIsBlank(rows[i]) {
			return nil, core.NewParseError(path, blankRowError{row: i + 1})
		}
		row := make(RawRow, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				row[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, row)
	}

	return &Data{Headers: headers, Rows: dataRows}, nil
}

// pickSheet returns the descriptor's sheet when the workbook has it,
// otherwise the first sheet.
func pickSheet(f *excelize.File, want string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", errNoSheets
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return sheets[0], nil
}

// readUpdatedAt pulls "Data de Atualização" out of the metadata sheet.
// A missing or malformed metadata sheet is not an error; the timestamp
// is informational only.
func readUpdatedAt(f *excelize.File) string {
	rows, err := f.GetRows(metadataSheet)
	if err != nil {
		return ""
	}
	for _, row := range rows {
		if len(row) >= 2 && strings.TrimSpace(row[0]) == "Data de Atualização" {
			return strings.TrimSpace(row[1])
		}
	}
	return ""
}

// trimTrailingBlank drops fully blank rows at the end of the sheet.
// Spreadsheet editors routinely leave them behind and they carry no
// structural meaning, unlike blanks between data rows.
func trimTrailingBlank(rows [][]string) [][]string {
	end := len(rows)
	for end > 0 && rowIsBlank(rows[end-1]) {
		end--
	}
	return rows[:end]
}

func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

type blankRowError struct {
	row int
}

func (e blankRowError) Error() string {
	return fmt.Sprintf("blank row %d inside data range", e.row)
}

var errNoSheets = errors.New("workbook has no sheets")

package excel

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"painel/domain/core"
	"painel/domain/schema"
	"painel/domain/table"
)

// WriterConfig carries the write-safety flags. Writes default to
// blocked: the data directory usually holds the institution's real
// spreadsheets and must not be touched by accident.
type WriterConfig struct {
	ReadOnly       bool // blocks every write
	AllowCreate    bool // permits creating files that do not exist yet
	AllowOverwrite bool // permits replacing existing files
}

// Writer saves tables as module spreadsheets, with a metadata sheet
// recording when and how much was written.
type Writer struct {
	dataDir string
	config  WriterConfig
}

// NewWriter creates a writer rooted at the data directory.
func NewWriter(dataDir string, config WriterConfig) *Writer {
	return &Writer{dataDir: dataDir, config: config}
}

// WriteTable saves a table to the module's conventional file name and
// sheet, returning the path written. Each safety flag is checked
// before any byte hits the disk.
func (w *Writer) WriteTable(desc schema.Descriptor, tbl *table.Table, updatedAt string) (string, error) {
	path := filepath.Join(w.dataDir, desc.FileName)

	if w.config.ReadOnly {
		return "", fmt.Errorf("%w: refusing to write %s", core.ErrReadOnlyMode, desc.FileName)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if !exists && !w.config.AllowCreate {
		return "", fmt.Errorf("%w: %s", core.ErrCreateDisabled, desc.FileName)
	}
	if exists && !w.config.AllowOverwrite {
		return "", fmt.Errorf("%w: %s already exists", core.ErrOverwriteDisabled, desc.FileName)
	}

	if err := os.MkdirAll(w.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", desc.SheetName); err != nil {
		return "", fmt.Errorf("rename data sheet: %w", err)
	}
	if err := writeDataSheet(f, desc.SheetName, tbl); err != nil {
		return "", err
	}
	if err := writeMetadataSheet(f, tbl, updatedAt); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	log.Printf("[Writer] saved %s (%d rows)", desc.FileName, tbl.Len())
	return path, nil
}

// writeDataSheet emits the header row followed by typed cell values so
// numeric columns round-trip as native spreadsheet numbers.
func writeDataSheet(f *excelize.File, sheet string, tbl *table.Table) error {
	for j, name := range tbl.Columns {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for i, row := range tbl.Rows {
		for j, name := range tbl.Columns {
			val, ok := row[name]
			if !ok || val.Missing {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(val)); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeMetadataSheet mirrors the metadata the institution's original
// spreadsheets carry: update stamp, record count and the year span of
// the data when an "ano" column exists.
func writeMetadataSheet(f *excelize.File, tbl *table.Table, updatedAt string) error {
	if _, err := f.NewSheet(metadataSheet); err != nil {
		return err
	}

	period := "N/A"
	if years := tbl.ColumnFloats("ano"); len(years) > 0 {
		lo, hi := years[0], years[0]
		for _, y := range years[1:] {
			if y < lo {
				lo = y
			}
			if y > hi {
				hi = y
			}
		}
		period = fmt.Sprintf("%d - %d", int(lo), int(hi))
	}

	rows := [][]interface{}{
		{"Informação", "Valor"},
		{"Data de Atualização", updatedAt},
		{"Total de Registros", tbl.Len()},
		{"Período dos Dados", period},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(metadataSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func cellValue(v table.Value) interface{} {
	switch v.Kind {
	case table.KindInteger:
		return v.Int
	case table.KindDecimal:
		return v.Dec
	default:
		return v.Text
	}
}

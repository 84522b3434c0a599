package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"nptest/domain/hypothesis"
	"nptest/ports"

	"github.com/xuri/excelize/v2"
)

var _ ports.TableWriterPort = (*TableWriter)(nil)

// tableHeader matches the textual table the engine's consumers print:
// one line per region, in enumeration order.
var tableHeader = []string{"region", "size", "power", "dominated?", "LRT?"}

// TableWriter exports a rejection-region table to Excel or CSV files.
// The target format is picked from the path extension.
type TableWriter struct{}

// NewTableWriter creates a table writer.
func NewTableWriter() *TableWriter {
	return &TableWriter{}
}

// WriteTable writes the rows, preserving their order, to the given path.
// ".csv" writes a CSV file; anything else writes an xlsx workbook.
func (w *TableWriter) WriteTable(path string, rows []hypothesis.AnalysisRow) error {
	ext := strings.ToLower(filepath.Ext(path))
	log.Printf("[TableWriter] Writing %d region rows to %s", len(rows), path)

	if ext == ".csv" {
		return w.writeCSV(path, rows)
	}
	return w.writeExcel(path, rows)
}

func (w *TableWriter) writeExcel(path string, rows []hypothesis.AnalysisRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, name := range tableHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Region.String(),
			row.Stats.Size,
			row.Stats.Power,
			row.Dominated,
			row.LRT,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to build cell for row %d: %w", i, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *TableWriter) writeCSV(path string, rows []hypothesis.AnalysisRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(tableHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Region.String(),
			strconv.FormatFloat(row.Stats.Size, 'g', -1, 64),
			strconv.FormatFloat(row.Stats.Power, 'g', -1, 64),
			strconv.FormatBool(row.Dominated),
			strconv.FormatBool(row.LRT),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

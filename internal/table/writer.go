package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/BioBenchWorks/nanoqc-cli/internal/utils"
)

// Write exports the table to path, choosing the format from the
// extension: .xlsx for a spreadsheet, anything else as UTF-8 CSV/TSV.
// runID, when non-empty, is embedded in XLSX document properties so an
// exported artifact can be traced back to its run.
func Write(t *Table, path, runID string) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteXLSX(t, path, runID)
	}
	return WriteCSV(t, path)
}

// WriteCSV writes the table as UTF-8 CSV (tab-separated for .tsv
// paths). Go's csv writer is byte-transparent, so non-ASCII header and
// cell text (µ, Arabic labels) round-trips losslessly.
func WriteCSV(t *Table, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = sniffDelimiter(path)

	if err := w.Write(t.Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

const resultsSheet = "Results"

// WriteXLSX streams the table into a single-sheet workbook.
func WriteXLSX(t *Table, path, runID string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if runID != "" {
		if err := f.SetDocProps(&excelize.DocProperties{
			Creator:    "nanoqc",
			Identifier: runID,
		}); err != nil {
			return fmt.Errorf("set doc props: %w", err)
		}
	}

	sw, err := f.NewStreamWriter(resultsSheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", toCells(t.Headers)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, toCells(row)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func toCells(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an in-memory rectangular dataset: a header row plus data
// rows. Rows are padded to header width on ingest so downstream code
// can index safely.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// ReadOptions controls ingestion.
type ReadOptions struct {
	// Delimiter for CSV input. If 0, it is sniffed from the extension
	// (',' for .csv, '\t' for .tsv).
	Delimiter rune
	// SheetName selects an XLSX sheet; empty means the first sheet.
	SheetName string
}

// Read loads a CSV, TSV, or XLSX file into a Table, dispatching on the
// file extension. An empty file yields an empty table, not an error.
func Read(path string, opt ReadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path, opt.SheetName)
	case ".csv", ".tsv", ".txt", "":
		return readCSV(path, opt.Delimiter)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", filepath.Ext(path))
	}
}

func readCSV(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	t := &Table{Name: filepath.Base(path)}
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t.Headers = trimAll(header)

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		t.Rows = append(t.Rows, padRow(rec, len(t.Headers)))
	}
	return t, nil
}

func readXLSX(path, sheetName string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := sheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	t := &Table{Name: filepath.Base(path)}
	if len(rows) == 0 {
		return t, nil
	}
	t.Headers = trimAll(rows[0])
	for _, rec := range rows[1:] {
		t.Rows = append(t.Rows, padRow(rec, len(t.Headers)))
	}
	return t, nil
}

// sniffDelimiter picks the CSV delimiter from the filename; tab for
// .tsv, comma otherwise.
func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}

func trimAll(rec []string) []string {
	out := make([]string, len(rec))
	for i, v := range rec {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

func padRow(rec []string, width int) []string {
	if len(rec) >= width {
		return append([]string(nil), rec...)
	}
	out := make([]string, width)
	copy(out, rec)
	return out
}

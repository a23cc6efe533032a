package table

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/BioBenchWorks/nanoqc-cli/internal/assay"
)

// DerivedHeaders are appended after the original input columns, in
// fixed order, on every batch run.
var DerivedHeaders = []string{
	"Conc (ng/µl)",
	"260/280",
	"260/230",
	"Purity",
	"Purity Notes",
	"Volume Sample (µl)",
	"Volume Diluent (µl)",
	"Notes",
}

// ProcessOptions controls a batch run.
type ProcessOptions struct {
	Assay assay.Options
	// Strict turns unresolved mandatory columns (a260, sample_type)
	// into an error instead of a warning.
	Strict bool
	// OnRow, when set, is invoked after each processed row. Used for
	// progress display.
	OnRow func(index int)
}

// BatchResult is a processed batch: the augmented table, per-row
// results, the column mapping used, and run-level warnings.
type BatchResult struct {
	Table    *Table
	Results  []assay.Result
	Mapping  Mapping
	Warnings []string
}

// Process runs the engine over every row of the input table. Columns
// are reconciled once and the mapping is reused per row; each row's
// computation is independent and a bad row degrades only itself.
// The output preserves the input row order and all original columns,
// followed by the derived columns.
func Process(t *Table, p assay.Protocol, opt ProcessOptions) (*BatchResult, error) {
	if err := assay.ValidateProtocol(p); err != nil {
		return nil, err
	}

	mapping := Reconcile(t.Headers)
	br := &BatchResult{Mapping: mapping}

	if missing := mapping.MissingRequired(); len(missing) > 0 {
		if opt.Strict {
			return nil, mapping.RequireResolved()
		}
		for _, f := range missing {
			br.Warnings = append(br.Warnings, fmt.Sprintf("required column %q not found; affected fields degrade per row", f))
		}
	}
	if _, ok := mapping[FieldRatio260230]; !ok {
		br.Warnings = append(br.Warnings, "no 260/230 column found; treating the ratio as unsupplied")
	}
	slog.Debug("columns reconciled", "mapping", mapping.Describe(t.Headers), "rows", len(t.Rows))

	out := &Table{
		Name:    t.Name,
		Headers: append(append([]string(nil), t.Headers...), DerivedHeaders...),
	}
	br.Results = make([]assay.Result, 0, len(t.Rows))

	for i, row := range t.Rows {
		rd := rowReading(mapping, row, i)
		res, err := assay.Evaluate(rd, p, opt.Assay)
		if err != nil {
			// Protocol settings were validated up front, so Evaluate
			// cannot reject this row; surface anything unexpected.
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		br.Results = append(br.Results, res)
		out.Rows = append(out.Rows, appendDerived(row, &res))
		if opt.OnRow != nil {
			opt.OnRow(i)
		}
	}
	br.Table = out
	return br, nil
}

// rowReading builds a typed Reading from the mapped cells of one row.
// A blank sample id defaults to a synthetic 1-based row identifier.
func rowReading(m Mapping, row []string, index int) assay.Reading {
	id := m.cell(row, FieldSampleID)
	if id == "" {
		id = fmt.Sprintf("row_%d", index+1)
	}
	return assay.Reading{
		SampleID:    id,
		Type:        assay.ParseSampleType(m.cell(row, FieldSampleType)),
		A260:        assay.Coerce(m.cell(row, FieldA260)),
		A280:        assay.Coerce(m.cell(row, FieldA280)),
		A230:        assay.Coerce(m.cell(row, FieldA230)),
		Ratio260230: assay.Coerce(m.cell(row, FieldRatio260230)),
		Factor:      assay.Coerce(m.cell(row, FieldFactor)),
		DeviceConc:  assay.Coerce(m.cell(row, FieldNucleicAcid)),
	}
}

func appendDerived(row []string, res *assay.Result) []string {
	out := append(append([]string(nil), row...),
		FormatValue(res.Concentration),
		FormatValue(res.Ratio260280),
		FormatValue(res.Ratio260230),
		res.Verdict.String(),
		res.RationaleText(),
		FormatValue(res.VolumeSample),
		FormatValue(res.VolumeDiluent),
		res.NotesText(),
	)
	return out
}

// FormatValue renders a value for a table cell: two decimal places for
// numerics, an empty cell for missing or non-numeric values.
func FormatValue(v assay.Value) string {
	if !v.Valid() {
		return ""
	}
	return strconv.FormatFloat(v.Float, 'f', 2, 64)
}

package table

import (
	"fmt"
	"strings"

	"github.com/BioBenchWorks/nanoqc-cli/internal/assay"
)

// Field names a canonical column the engine understands.
type Field string

const (
	FieldSampleID    Field = "sample_id"
	FieldA260        Field = "a260"
	FieldA280        Field = "a280"
	FieldA230        Field = "a230"
	FieldNucleicAcid Field = "nucleic_acid" // device-reported concentration
	FieldSampleType  Field = "sample_type"
	FieldFactor      Field = "factor"
	FieldRatio260230 Field = "ratio_260_230"
)

// fieldOrder fixes the reporting order of canonical fields.
var fieldOrder = []Field{
	FieldSampleID, FieldA260, FieldA280, FieldA230,
	FieldNucleicAcid, FieldSampleType, FieldFactor, FieldRatio260230,
}

// requiredFields must resolve for a batch to produce meaningful output.
var requiredFields = []Field{FieldA260, FieldSampleType}

// variants registers the accepted lower-case header spellings per
// canonical field, matching what lab spreadsheets actually contain.
var variants = map[Field][]string{
	FieldSampleID:    {"sample_id", "sample id", "id", "sample", "sample_name", "sample name"},
	FieldA260:        {"a260", "a260 (abs)", "a260nm", "abs260"},
	FieldA280:        {"a280", "a280 (abs)", "a280nm", "abs280"},
	FieldA230:        {"a230", "a230 (abs)", "a230nm", "abs230"},
	FieldNucleicAcid: {"nucleic_acid", "nucleic acid", "nucleicacid", "conc", "concentration", "concentration (ng/µl)", "concentration (ng/ul)", "nucleic acid (ng/µl)"},
	FieldSampleType:  {"sample type", "type", "sample_type", "nucleic_type", "nucleic acid type"},
	FieldFactor:      {"factor", "conversion factor", "factor50", "cfactor"},
}

// ratio230Marker is the free-text scan for a pre-computed ratio column.
const ratio230Marker = "260/230"

// Mapping resolves canonical fields to header indexes. Absent fields
// are simply not present in the map; reconciliation reports absence,
// it never fails.
type Mapping map[Field]int

// Reconcile maps the table headers onto the canonical field set.
// Per field, precedence is: exact case-insensitive match against any
// registered variant, then the first header whose lower-case form
// contains a variant as a substring. Each field resolves independently
// and ties go to input column order.
func Reconcile(headers []string) Mapping {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	m := make(Mapping, len(fieldOrder))
	for _, field := range fieldOrder {
		if field == FieldRatio260230 {
			continue // handled by the free-text scan below
		}
		vs := variants[field]
		if idx, ok := matchExact(lower, vs); ok {
			m[field] = idx
			continue
		}
		if idx, ok := matchContains(lower, vs); ok {
			m[field] = idx
		}
	}

	for i, h := range lower {
		if strings.Contains(h, ratio230Marker) {
			m[FieldRatio260230] = i
			break
		}
	}
	return m
}

func matchExact(lower []string, vs []string) (int, bool) {
	for i, h := range lower {
		for _, v := range vs {
			if h == v {
				return i, true
			}
		}
	}
	return 0, false
}

func matchContains(lower []string, vs []string) (int, bool) {
	for i, h := range lower {
		for _, v := range vs {
			if strings.Contains(h, v) {
				return i, true
			}
		}
	}
	return 0, false
}

// MissingRequired lists mandatory fields that did not resolve.
func (m Mapping) MissingRequired() []Field {
	var missing []Field
	for _, f := range requiredFields {
		if _, ok := m[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// RequireResolved converts unresolved mandatory fields into an error
// for callers running in strict mode.
func (m Mapping) RequireResolved() error {
	missing := m.MissingRequired()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return fmt.Errorf("%w: %s", assay.ErrUnresolvedColumn, strings.Join(names, ", "))
}

// Describe renders the mapping for debug output in canonical field
// order, naming the matched header or "(not found)".
func (m Mapping) Describe(headers []string) map[string]string {
	out := make(map[string]string, len(fieldOrder))
	for _, f := range fieldOrder {
		if idx, ok := m[f]; ok && idx < len(headers) {
			out[string(f)] = headers[idx]
		} else {
			out[string(f)] = "(not found)"
		}
	}
	return out
}

// cell returns the raw cell for a mapped field, or "" when the field is
// unmapped or the row is short.
func (m Mapping) cell(row []string, f Field) string {
	idx, ok := m[f]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

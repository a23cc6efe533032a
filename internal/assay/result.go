package assay

import "strings"

// Result is the computed outcome for one sample. It is a pure function
// of (Reading, Protocol, Options): no hidden state, no ordering
// dependency across samples.
type Result struct {
	SampleID string
	Type     SampleType

	Concentration Value
	Ratio260280   Value
	Ratio260230   Value
	// Estimated230 marks that Ratio260230 came from the fallback
	// divisor rather than a measurement.
	Estimated230 bool
	FromDevice   bool

	Verdict Verdict
	// Rationale lists the purity rules that fired, in evaluation order.
	// Empty means the sample passed every applicable rule.
	Rationale []string

	VolumeSample  Value
	VolumeDiluent Value

	// Notes records field-level validity and fallback annotations in
	// processing order: coercion, ratios, concentration, dilution.
	Notes []string

	// Protocol echoes the settings this result was computed against.
	Protocol Protocol
}

// RationaleText joins the rationale for display; an empty rationale
// yields the canned within-bounds message.
func (r *Result) RationaleText() string {
	if len(r.Rationale) == 0 {
		return WithinBoundsMsg
	}
	return strings.Join(r.Rationale, "; ")
}

// NotesText joins the notes for table output.
func (r *Result) NotesText() string {
	return strings.Join(r.Notes, "; ")
}

// Evaluate runs the full per-sample pipeline: coercion notes, ratio and
// concentration derivation, purity classification, and dilution. Only
// protocol violations return an error; every field-level problem is
// recovered locally and recorded as a note.
func Evaluate(rd Reading, p Protocol, opt Options) (Result, error) {
	if err := ValidateProtocol(p); err != nil {
		return Result{}, err
	}

	res := Result{
		SampleID: rd.SampleID,
		Type:     rd.Type,
		Protocol: p,
	}

	res.Notes = append(res.Notes, coercionNotes(rd)...)

	ratios := Ratios(rd.A260, rd.A280, rd.Ratio260230, rd.A230, opt.Estimate230)
	res.Ratio260280 = ratios.R260280
	res.Ratio260230 = ratios.R260230
	res.Estimated230 = ratios.Estimated230
	res.Notes = append(res.Notes, ratios.Notes...)

	conc := Concentration(rd.A260, rd.DeviceConc, rd.Factor, opt.DefaultFactor)
	res.Concentration = conc.Conc
	res.FromDevice = conc.FromDevice
	// The factor provenance note is display-only detail; the aggregated
	// notes carry the device override and failure cases.
	if conc.FromDevice || !conc.Conc.Valid() {
		res.Notes = append(res.Notes, conc.Note)
	}

	dil, err := Dilution(conc.Conc, p)
	if err != nil {
		return Result{}, err
	}
	res.VolumeSample = dil.VolumeSample
	res.VolumeDiluent = dil.VolumeDiluent
	if dil.Note != "" {
		res.Notes = append(res.Notes, dil.Note)
	}

	res.Verdict, res.Rationale = AssessPurity(rd.Type, ratios.R260280, ratios.R260230)

	return res, nil
}

// coercionNotes reports per-field validity problems in a fixed field
// order so batch output is stable.
func coercionNotes(rd Reading) []string {
	var notes []string
	appendNote := func(field string, v Value) {
		switch v.Status {
		case StatusMissing:
			notes = append(notes, field+": value missing")
		case StatusNonNumeric:
			notes = append(notes, field+": value non-numeric")
		}
	}
	appendNote("A260", rd.A260)
	appendNote("A280", rd.A280)
	if rd.Ratio260230.Status == StatusNonNumeric {
		notes = append(notes, "260/230: value non-numeric")
	}
	if rd.DeviceConc.Status == StatusNonNumeric {
		notes = append(notes, "device concentration: value non-numeric")
	}
	if rd.Factor.Status == StatusNonNumeric {
		notes = append(notes, "factor: value non-numeric; default applied")
	}
	return notes
}

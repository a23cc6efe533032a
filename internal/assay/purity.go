package assay

// Verdict is the purity judgment for a sample.
type Verdict int

const (
	VerdictOK Verdict = iota
	VerdictWarning
)

func (v Verdict) String() string {
	if v == VerdictWarning {
		return "WARNING"
	}
	return "OK"
}

// WithinBoundsMsg is the canned rationale shown when no purity rule
// fires.
const WithinBoundsMsg = "sample purity within acceptable scientific bounds"

const (
	msgRatio280Unmeasurable = "cannot evaluate 260/280 ratio: insufficient data"
	msgRatio230Unmeasurable = "cannot evaluate 260/230 ratio: insufficient data"

	msgDNALow280     = "260/280 low (<1.7): possible protein residue or other contaminants affecting the measurement"
	msgDNALow230     = "260/230 low (<1.8): possible salt or carrier contamination affecting sample purity"
	msgRNALow280     = "260/280 low (<1.9): possible nucleic acid degradation or contamination"
	msgRNALow230     = "260/230 low (<1.8): possible contaminants such as salts or carrier substances"
	msgProteinHigh   = "260/280 high (>1.2): possible nucleic acid contamination in the protein sample"
	msgGenericLow280 = "260/280 low: possible contaminants or impurities in the sample"
	msgGenericLow230 = "260/230 low: possible contaminants such as salts or carrier substances"
)

// AssessPurity applies the sample-type-specific threshold table to the
// two ratios. The rationale preserves evaluation order: 260/280 rules
// fire before 260/230 rules. The verdict is a warning iff any rationale
// entries were produced.
//
// DNA and RNA additionally flag unmeasurable ratios; for Protein and
// unrecognized types an unmeasurable ratio is silently skipped, and
// Protein does not evaluate 260/230 at all (not a meaningful purity
// signal at that wavelength pair).
func AssessPurity(t SampleType, r280, r230 Value) (Verdict, []string) {
	var rationale []string

	switch t {
	case TypeDNA:
		if !r280.Valid() {
			rationale = append(rationale, msgRatio280Unmeasurable)
		} else if r280.Float < 1.7 {
			rationale = append(rationale, msgDNALow280)
		}
		if !r230.Valid() {
			rationale = append(rationale, msgRatio230Unmeasurable)
		} else if r230.Float < 1.8 {
			rationale = append(rationale, msgDNALow230)
		}
	case TypeRNA:
		if !r280.Valid() {
			rationale = append(rationale, msgRatio280Unmeasurable)
		} else if r280.Float < 1.9 {
			rationale = append(rationale, msgRNALow280)
		}
		if !r230.Valid() {
			rationale = append(rationale, msgRatio230Unmeasurable)
		} else if r230.Float < 1.8 {
			rationale = append(rationale, msgRNALow230)
		}
	case TypeProtein:
		if r280.Valid() && r280.Float > 1.2 {
			rationale = append(rationale, msgProteinHigh)
		}
	default:
		if r280.Valid() && r280.Float < 1.7 {
			rationale = append(rationale, msgGenericLow280)
		}
		if r230.Valid() && r230.Float < 1.8 {
			rationale = append(rationale, msgGenericLow230)
		}
	}

	if len(rationale) > 0 {
		return VerdictWarning, rationale
	}
	return VerdictOK, nil
}

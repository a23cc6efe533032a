package assay

// estimate230Divisor is the assumed divisor for the 260/230 fallback.
// The resulting ratio is an approximation and is always
// annotated as estimated, never presented as a measurement.
const estimate230Divisor = 0.5

const (
	noteA280MissingOrZero = "A280 missing or zero"
	noteRatio230Estimated = "260/230 not measured; estimated from A260 using assumed divisor 0.5"
	noteRatio230Missing   = "260/230 unavailable (no supplied ratio and no A230)"
)

// RatioResult carries the two purity ratios and any derivation notes.
type RatioResult struct {
	R260280 Value
	R260230 Value
	// Estimated230 marks that R260230 came from the fallback divisor
	// rather than a measurement.
	Estimated230 bool
	Notes        []string
}

// Ratios derives the 260/280 and 260/230 purity ratios.
//
// 260/280 is A260/A280 when both are valid and A280 is nonzero.
// For 260/230 a supplied ratio is authoritative; otherwise a valid
// nonzero A230 reading is used; otherwise, with estimate230 enabled and
// a valid A260, the ratio is estimated via the assumed 0.5 divisor.
func Ratios(a260, a280, suppliedRatio, a230 Value, estimate230 bool) RatioResult {
	var res RatioResult

	if a260.Valid() && a280.Valid() && a280.Float != 0 {
		res.R260280 = Num(a260.Float / a280.Float)
	} else {
		res.R260280 = Missing()
		res.Notes = append(res.Notes, noteA280MissingOrZero)
	}

	switch {
	case suppliedRatio.Valid():
		res.R260230 = suppliedRatio
	case a260.Valid() && a230.Valid() && a230.Float != 0:
		res.R260230 = Num(a260.Float / a230.Float)
	case estimate230 && a260.Valid():
		res.R260230 = Num(a260.Float / estimate230Divisor)
		res.Estimated230 = true
		res.Notes = append(res.Notes, noteRatio230Estimated)
	default:
		res.R260230 = Missing()
		res.Notes = append(res.Notes, noteRatio230Missing)
	}

	return res
}

package assay

import "fmt"

const (
	noteInvalidConc = "invalid or zero concentration; cannot compute dilution"
	noteTooDilute   = "sample too dilute to reach target; concentrate the sample or use more sample volume"
)

// DilutionResult holds the sample and diluent volumes needed to reach
// the protocol target, rounded to two decimal places. When both are
// numeric, VolumeSample + VolumeDiluent equals the final volume.
type DilutionResult struct {
	VolumeSample  Value
	VolumeDiluent Value
	Note          string
}

// ValidateProtocol rejects protocol settings the engine cannot work
// with. Violations are request-level errors, never silently clamped.
func ValidateProtocol(p Protocol) error {
	if p.FinalVol <= 0 {
		return fmt.Errorf("%w: final volume must be positive, got %g", ErrInvalidProtocolSetting, p.FinalVol)
	}
	if p.TargetConc < 0 {
		return fmt.Errorf("%w: target concentration must be non-negative, got %g", ErrInvalidProtocolSetting, p.TargetConc)
	}
	return nil
}

// Dilution computes v1 = (target * finalVol) / concentration and
// v2 = finalVol - v1. When v1 exceeds the final volume the sample
// cannot reach the target within that volume; the computed v1 is
// reported as-is with a warning note rather than clamped, so the user
// sees the true required volume.
func Dilution(conc Value, p Protocol) (DilutionResult, error) {
	if err := ValidateProtocol(p); err != nil {
		return DilutionResult{}, err
	}
	if !conc.Valid() || conc.Float <= 0 {
		return DilutionResult{
			VolumeSample:  Missing(),
			VolumeDiluent: Missing(),
			Note:          noteInvalidConc,
		}, nil
	}
	v1 := (p.TargetConc * p.FinalVol) / conc.Float
	v2 := p.FinalVol - v1
	res := DilutionResult{
		VolumeSample:  Num(round2(v1)),
		VolumeDiluent: Num(round2(v2)),
	}
	if v1 > p.FinalVol {
		res.Note = noteTooDilute
	}
	return res, nil
}

package assay

import "fmt"

// ConcResult is a derived concentration plus its provenance.
type ConcResult struct {
	Conc Value
	// FromDevice marks an instrument-reported value used verbatim.
	FromDevice bool
	// FactorUsed is the conversion factor applied when computing from
	// A260; zero when the concentration came from the device or could
	// not be derived.
	FactorUsed float64
	Note       string
}

// Concentration resolves the sample concentration. A valid
// device-reported value is ground truth and is not recomputed.
// Otherwise the concentration is A260 times the row factor, or the
// default factor when the row carries none.
func Concentration(a260, device, factor Value, defaultFactor float64) ConcResult {
	if device.Valid() {
		return ConcResult{
			Conc:       device,
			FromDevice: true,
			Note:       "concentration from device",
		}
	}
	if !a260.Valid() {
		return ConcResult{
			Conc: Missing(),
			Note: "no A260 reading and no device concentration",
		}
	}
	f := defaultFactor
	if factor.Valid() {
		f = factor.Float
	}
	return ConcResult{
		Conc:       Num(a260.Float * f),
		FactorUsed: f,
		Note:       fmt.Sprintf("computed from A260 with factor %g", f),
	}
}

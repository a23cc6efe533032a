package assay

import "strings"

// SampleType selects which purity thresholds apply to a reading.
type SampleType int

const (
	TypeOther SampleType = iota
	TypeDNA
	TypeRNA
	TypeProtein
)

// ParseSampleType maps free-form sample type labels onto the known
// types. Unrecognized labels fall back to TypeOther, which uses the
// generic thresholds.
func ParseSampleType(s string) SampleType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dna":
		return TypeDNA
	case "rna":
		return TypeRNA
	case "protein", "prot":
		return TypeProtein
	default:
		return TypeOther
	}
}

func (t SampleType) String() string {
	switch t {
	case TypeDNA:
		return "DNA"
	case TypeRNA:
		return "RNA"
	case TypeProtein:
		return "Protein"
	default:
		return "Other"
	}
}

// Reading is one spectrophotometer measurement unit. Absorbance fields
// may individually be missing or non-numeric; the engine degrades the
// affected derived fields instead of failing.
type Reading struct {
	SampleID string
	Type     SampleType

	A260 Value
	A280 Value
	A230 Value
	// Ratio260230 is a device-supplied 260/230 ratio. When valid it is
	// authoritative over a raw A230 reading.
	Ratio260230 Value
	// Factor converts A260 to concentration (ng/µl). When invalid the
	// batch default factor applies.
	Factor Value
	// DeviceConc is an instrument-reported concentration. When valid it
	// overrides the A260-derived computation.
	DeviceConc Value
}

// Protocol bundles the dilution targets for a named downstream assay.
type Protocol struct {
	Name       string
	TargetConc float64
	FinalVol   float64
}

// Options tunes per-run engine behavior.
type Options struct {
	// DefaultFactor applies when a reading carries no usable factor.
	DefaultFactor float64
	// Estimate230 enables the 260/230 fallback: when neither a
	// supplied ratio nor an A230 reading is available, the ratio is
	// estimated as A260 / 0.5 and annotated as estimated. NanoDrop
	// instruments commonly omit A230, so the system still renders a
	// labeled approximation instead of dropping the column.
	Estimate230 bool
}

// DefaultOptions uses the dsDNA-style conversion factor and keeps the
// estimated 260/230 fallback enabled.
func DefaultOptions() Options {
	return Options{DefaultFactor: 50.0, Estimate230: true}
}

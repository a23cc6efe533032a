package assay

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats aggregates one derived column across a batch, counting
// only the samples where the value was numeric.
type ColumnStats struct {
	N      int
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summary describes a processed batch: how many samples were handled,
// how many drew purity warnings, and per-column statistics over the
// derived values.
type Summary struct {
	Samples  int
	Warnings int

	Concentration ColumnStats
	Ratio260280   ColumnStats
	Ratio260230   ColumnStats
}

// Summarize aggregates per-sample results into batch statistics.
func Summarize(results []Result) Summary {
	s := Summary{Samples: len(results)}

	var concs, r280s, r230s []float64
	for i := range results {
		r := &results[i]
		if r.Verdict == VerdictWarning {
			s.Warnings++
		}
		if r.Concentration.Valid() {
			concs = append(concs, r.Concentration.Float)
		}
		if r.Ratio260280.Valid() {
			r280s = append(r280s, r.Ratio260280.Float)
		}
		if r.Ratio260230.Valid() {
			r230s = append(r230s, r.Ratio260230.Float)
		}
	}

	s.Concentration = columnStats(concs)
	s.Ratio260280 = columnStats(r280s)
	s.Ratio260230 = columnStats(r230s)
	return s
}

func columnStats(vals []float64) ColumnStats {
	if len(vals) == 0 {
		return ColumnStats{}
	}
	cs := ColumnStats{
		N:    len(vals),
		Mean: stat.Mean(vals, nil),
		Min:  floats.Min(vals),
		Max:  floats.Max(vals),
	}
	if len(vals) > 1 {
		cs.StdDev = stat.StdDev(vals, nil)
	}
	return cs
}

package assay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatiosBothMeasured(t *testing.T) {
	res := Ratios(Num(0.28), Num(0.16), Missing(), Num(0.12), true)

	require.True(t, res.R260280.Valid())
	assert.InDelta(t, 1.75, res.R260280.Float, 1e-9)
	require.True(t, res.R260230.Valid())
	assert.InDelta(t, 0.28/0.12, res.R260230.Float, 1e-9)
	assert.False(t, res.Estimated230)
	assert.Empty(t, res.Notes)
}

func TestRatios280MissingOrZero(t *testing.T) {
	for _, a280 := range []Value{Missing(), NonNumeric(), Num(0)} {
		res := Ratios(Num(0.2), a280, Num(2.0), Missing(), true)
		assert.False(t, res.R260280.Valid())
		assert.Contains(t, res.Notes, noteA280MissingOrZero)
	}
}

func TestRatiosSuppliedRatioIsAuthoritative(t *testing.T) {
	// A supplied 260/230 wins over a raw A230 reading.
	res := Ratios(Num(0.2), Num(0.1), Num(2.1), Num(0.05), true)
	require.True(t, res.R260230.Valid())
	assert.Equal(t, 2.1, res.R260230.Float)
	assert.False(t, res.Estimated230)
}

func TestRatiosEstimateFallback(t *testing.T) {
	res := Ratios(Num(0.12), Num(0.07), Missing(), Missing(), true)
	require.True(t, res.R260230.Valid())
	assert.InDelta(t, 0.24, res.R260230.Float, 1e-9)
	assert.True(t, res.Estimated230)
	assert.Contains(t, res.Notes, noteRatio230Estimated)

	// A zero A230 reading is unusable and also falls through.
	res = Ratios(Num(0.12), Num(0.07), Missing(), Num(0), true)
	assert.True(t, res.Estimated230)
}

func TestRatiosFallbackDisabled(t *testing.T) {
	res := Ratios(Num(0.12), Num(0.07), Missing(), Missing(), false)
	assert.False(t, res.R260230.Valid())
	assert.False(t, res.Estimated230)
	assert.Contains(t, res.Notes, noteRatio230Missing)
}

func TestRatiosNoA260(t *testing.T) {
	res := Ratios(Missing(), Num(0.07), Missing(), Missing(), true)
	assert.False(t, res.R260280.Valid())
	assert.False(t, res.R260230.Valid())
	assert.False(t, res.Estimated230)
}

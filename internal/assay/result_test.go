package assay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pcr = Protocol{Name: "PCR", TargetConc: 10, FinalVol: 20}

func TestEvaluateDNAWithEstimatedRatio(t *testing.T) {
	rd := Reading{
		SampleID: "DNA_1",
		Type:     TypeDNA,
		A260:     Num(0.12),
		A280:     Num(0.07),
		Factor:   Num(50),
	}
	res, err := Evaluate(rd, pcr, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 6.0, res.Concentration.Float)
	assert.InDelta(t, 0.12/0.07, res.Ratio260280.Float, 1e-9) // ≈1.71, at the OK boundary
	assert.InDelta(t, 0.24, res.Ratio260230.Float, 1e-9)      // estimated via 0.5 divisor
	assert.True(t, res.Estimated230)
	assert.Contains(t, res.Notes, noteRatio230Estimated)

	// The estimated ratio sits below the 1.8 salt threshold.
	assert.Equal(t, VerdictWarning, res.Verdict)
	assert.Equal(t, []string{msgDNALow230}, res.Rationale)

	// 200/6 exceeds the 20 µl final volume.
	assert.Equal(t, 33.33, res.VolumeSample.Float)
	assert.Contains(t, res.Notes, noteTooDilute)
	assert.InDelta(t, pcr.FinalVol, res.VolumeSample.Float+res.VolumeDiluent.Float, 0.011)
}

func TestEvaluateProteinSample(t *testing.T) {
	rd := Reading{
		SampleID: "PROT_1",
		Type:     TypeProtein,
		A260:     Num(0.02),
		A280:     Num(0.03),
		A230:     Num(0.01),
		Factor:   Num(50),
	}
	res, err := Evaluate(rd, pcr, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.Concentration.Float)
	assert.InDelta(t, 0.02/0.03, res.Ratio260280.Float, 1e-9) // ≈0.67, fine for protein
	assert.Equal(t, VerdictOK, res.Verdict)
	assert.Empty(t, res.Rationale)
	assert.Equal(t, WithinBoundsMsg, res.RationaleText())

	// v1 = (10*20)/1 = 200 > 20: flagged too dilute.
	assert.Equal(t, 200.0, res.VolumeSample.Float)
	assert.Contains(t, res.Notes, noteTooDilute)
}

func TestEvaluateNoConcentration(t *testing.T) {
	rd := Reading{SampleID: "x", Type: TypeDNA, A280: Num(0.1)}
	rd.A260 = Missing()
	res, err := Evaluate(rd, pcr, DefaultOptions())
	require.NoError(t, err)

	assert.False(t, res.Concentration.Valid())
	assert.False(t, res.VolumeSample.Valid())
	assert.False(t, res.VolumeDiluent.Valid())
	assert.Contains(t, res.Notes, "A260: value missing")
	assert.Contains(t, res.Notes, "no A260 reading and no device concentration")
	assert.Contains(t, res.Notes, noteInvalidConc)
}

func TestEvaluateDeviceConcentrationWins(t *testing.T) {
	rd := Reading{
		SampleID:   "dev",
		Type:       TypeDNA,
		A260:       Num(0.1),
		A280:       Num(0.05),
		DeviceConc: Num(42.5),
	}
	res, err := Evaluate(rd, pcr, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 42.5, res.Concentration.Float)
	assert.True(t, res.FromDevice)
	assert.Contains(t, res.Notes, "concentration from device")
}

func TestEvaluateRejectsBadProtocol(t *testing.T) {
	rd := Reading{Type: TypeDNA, A260: Num(0.1), A280: Num(0.05)}

	_, err := Evaluate(rd, Protocol{TargetConc: 10, FinalVol: 0}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidProtocolSetting)

	_, err = Evaluate(rd, Protocol{TargetConc: -2, FinalVol: 20}, DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidProtocolSetting)
}

func TestEvaluateNotesOrder(t *testing.T) {
	// Coercion notes come first, then ratio notes, then concentration
	// and dilution notes.
	rd := Reading{
		SampleID:    "messy",
		Type:        TypeRNA,
		A260:        NonNumeric(),
		A280:        Missing(),
		Ratio260230: NonNumeric(),
		Factor:      NonNumeric(),
	}
	res, err := Evaluate(rd, pcr, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"A260: value non-numeric",
		"A280: value missing",
		"260/230: value non-numeric",
		"factor: value non-numeric; default applied",
		noteA280MissingOrZero,
		noteRatio230Missing,
		"no A260 reading and no device concentration",
		noteInvalidConc,
	}, res.Notes)
	assert.Equal(t, VerdictWarning, res.Verdict)
}

func TestEvaluateVolumeInvariant(t *testing.T) {
	// volume_sample + volume_diluent == final_vol for any positive
	// concentration (within 2-decimal rounding).
	for _, conc := range []float64{0.3, 1, 6, 33.3, 100, 12345} {
		rd := Reading{Type: TypeDNA, A260: Num(conc / 50), A280: Num(0.1), Factor: Num(50)}
		res, err := Evaluate(rd, pcr, DefaultOptions())
		require.NoError(t, err)
		require.True(t, res.VolumeSample.Valid())
		assert.InDelta(t, pcr.FinalVol, res.VolumeSample.Float+res.VolumeDiluent.Float, 0.011)
	}
}

package assay

import (
	"math"
	"strconv"
	"strings"
)

// Status classifies how a raw input token resolved to a number.
type Status int

const (
	StatusOK Status = iota
	StatusMissing
	StatusNonNumeric
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusNonNumeric:
		return "non-numeric"
	default:
		return "unknown"
	}
}

// Value is a numeric reading plus the outcome of coercing it.
// Invalid values propagate through the pipeline as notes; they never
// participate in arithmetic.
type Value struct {
	Float  float64
	Status Status
}

// Valid reports whether the value can be used in arithmetic.
func (v Value) Valid() bool { return v.Status == StatusOK }

// Num wraps a known-good float.
func Num(f float64) Value { return Value{Float: f, Status: StatusOK} }

// Missing marks an absent input.
func Missing() Value { return Value{Float: math.NaN(), Status: StatusMissing} }

// NonNumeric marks an input that failed numeric parsing.
func NonNumeric() Value { return Value{Float: math.NaN(), Status: StatusNonNumeric} }

// Coerce converts an arbitrary scalar token into a Value. A blank or
// whitespace-only token is missing; a token that does not parse as a
// finite float is non-numeric.
func Coerce(token string) Value {
	t := strings.TrimSpace(token)
	if t == "" {
		return Missing()
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NonNumeric()
	}
	return Num(f)
}

// CoerceFloat wraps an already-parsed float, treating NaN as missing.
// Callers that collect numeric flags rather than text tokens use this.
func CoerceFloat(f float64) Value {
	if math.IsNaN(f) {
		return Missing()
	}
	if math.IsInf(f, 0) {
		return NonNumeric()
	}
	return Num(f)
}

// round2 rounds to two decimal places for presentation and volumes.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

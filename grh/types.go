// Package grh defines core types and sentinel errors for the GRH
// inequality verification engine.
package grh

import (
	"errors"
	"math"
)

// EulerGamma is the Euler–Mascheroni constant γ, used in the constant term
// of the inequality's right-hand side. One process-wide immutable value;
// never recomputed per call.
const EulerGamma = 0.57721566490153286060651209008240243

// symmetryTol is the threshold below which |γ⁻+γ⁺| classifies an interval
// as symmetric about the real axis.
const symmetryTol = 1e-8

// Sentinel errors returned by the grh package.
var (
	// ErrBadBound indicates that a negative truncation bound K was supplied.
	ErrBadBound = errors.New("grh: truncation bound K must be non-negative")

	// ErrIndexOutOfRange indicates an access beyond the declared extent of a
	// CharacterSeq or VonMangoldtSeq. Out-of-range reads are a caller
	// contract violation and are never treated as zero.
	ErrIndexOutOfRange = errors.New("grh: index beyond declared sequence extent")

	// ErrBadCharacterValue indicates a character value outside {-1, 0, 1}.
	ErrBadCharacterValue = errors.New("grh: character value must be -1, 0 or 1")

	// ErrNegativeLambda indicates a von Mangoldt value that is negative or NaN.
	ErrNegativeLambda = errors.New("grh: von Mangoldt value must be non-negative")
)

// IntervalKind labels the two contribution branches of a zero interval.
//
// Symmetric  – the interval brackets a conjugate pair about the real axis
// (|γ⁻+γ⁺| < 1e-8) and contributes 6/(9+4γ₀²) with γ₀ = |γ⁺|.
// Asymmetric – any other interval; contributes 12/(9+4γ⁺²).
type IntervalKind int

const (
	// Symmetric marks an interval of the form [-γ₀, γ₀].
	Symmetric IntervalKind = iota

	// Asymmetric marks a one-sided interval [γ⁻, γ⁺].
	Asymmetric
)

// Interval brackets one or more nontrivial zeros of L(s, χ_d) on the
// critical line: GammaMinus ≤ γ ≤ GammaPlus for every bracketed ordinate γ.
//
// Callers feeding intervals to Verify must supply them sorted by ascending
// height |γ|. The ordering is assumed (never validated) and determines both
// the early-termination point and the minimal-prefix guarantee.
type Interval struct {
	GammaMinus float64 // lower endpoint γ⁻
	GammaPlus  float64 // upper endpoint γ⁺
}

// Kind classifies the interval as Symmetric or Asymmetric using the fixed
// 1e-8 threshold on |γ⁻+γ⁺|.
func (iv Interval) Kind() IntervalKind {
	if math.Abs(iv.GammaMinus+iv.GammaPlus) < symmetryTol {
		return Symmetric
	}

	return Asymmetric
}

// Contribution returns the interval's additive contribution to the
// inequality's left-hand side. Equivalent to
// ZeroContribution(iv.GammaMinus, iv.GammaPlus).
func (iv Interval) Contribution() float64 {
	return ZeroContribution(iv.GammaMinus, iv.GammaPlus)
}

// CharacterSeq is an explicit-length, read-only, 1-based sequence of
// quadratic character values χ_d(k) ∈ {-1, 0, 1}.
//
// It replaces the raw unchecked arrays of upstream pipelines: every access
// goes through At, and reads outside [1, Len()] surface ErrIndexOutOfRange.
type CharacterSeq struct {
	vals []int8
}

// NewCharacterSeq builds a CharacterSeq from vals, where vals[i] holds
// χ_d(i+1). Returns ErrBadCharacterValue if any entry lies outside {-1,0,1}.
// The slice is retained, not copied; callers must not mutate it while the
// sequence is in use.
func NewCharacterSeq(vals []int8) (CharacterSeq, error) {
	for _, v := range vals {
		if v < -1 || v > 1 {
			return CharacterSeq{}, ErrBadCharacterValue
		}
	}

	return CharacterSeq{vals: vals}, nil
}

// Len returns the largest index k for which At(k) succeeds.
func (s CharacterSeq) Len() int { return len(s.vals) }

// At returns χ_d(k) for 1 ≤ k ≤ Len(), or ErrIndexOutOfRange otherwise.
func (s CharacterSeq) At(k int) (int8, error) {
	if k < 1 || k > len(s.vals) {
		return 0, ErrIndexOutOfRange
	}

	return s.vals[k-1], nil
}

// VonMangoldtSeq is an explicit-length, read-only, 1-based sequence of
// von Mangoldt values Λ(k) ≥ 0, with the same access contract as
// CharacterSeq.
type VonMangoldtSeq struct {
	vals []float64
}

// NewVonMangoldtSeq builds a VonMangoldtSeq from vals, where vals[i] holds
// Λ(i+1). Returns ErrNegativeLambda if any entry is negative or NaN.
// The slice is retained, not copied.
func NewVonMangoldtSeq(vals []float64) (VonMangoldtSeq, error) {
	for _, v := range vals {
		if v < 0 || math.IsNaN(v) {
			return VonMangoldtSeq{}, ErrNegativeLambda
		}
	}

	return VonMangoldtSeq{vals: vals}, nil
}

// Len returns the largest index k for which At(k) succeeds.
func (s VonMangoldtSeq) Len() int { return len(s.vals) }

// At returns Λ(k) for 1 ≤ k ≤ Len(), or ErrIndexOutOfRange otherwise.
func (s VonMangoldtSeq) At(k int) (float64, error) {
	if k < 1 || k > len(s.vals) {
		return 0, ErrIndexOutOfRange
	}

	return s.vals[k-1], nil
}

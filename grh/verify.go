package grh

import "math"

// Result reports the outcome of one Verify call.
//
// Verified  – true iff the strict inequality LHS > RHS held after some
// prefix of the interval sequence.
// ZerosUsed – length of the minimal verifying prefix when Verified; the
// full interval count otherwise.
// LHS, RHS  – final values of both sides at the point the loop stopped.
//
// Produced fresh per call; never persisted or shared.
type Result struct {
	Verified  bool
	ZerosUsed int
	LHS       float64
	RHS       float64
}

// Verify — GRH inequality verification for one discriminant
//
// Description:
//
//	Tests the sufficient condition certifying GRH for L(s, χ_d) up to
//	height η, given interval brackets for the low-lying zeros and the
//	Kronecker/von Mangoldt data truncated at K.
//
// Algorithm:
//  1. Compute the right-hand side once. The constant term branches on the
//     sign of d:
//     d < 0:  ½·ln(|d|·e² / (4π·e^γ))
//     d ≥ 0:  ½·ln(d / (π·e^γ))
//     with γ the Euler–Mascheroni constant; add LogDerivative(chi, lambda, K).
//  2. Initialize LHS = 2·ι(η), ZerosUsed = 0.
//  3. Fold intervals in input order: increment ZerosUsed, add the
//     interval's contribution, and stop at the first prefix with LHS > RHS
//     (strict). Remaining intervals are never consumed, so the loop costs
//     O(ZerosUsed), not O(len(intervals)).
//  4. If the sequence is exhausted without the strict inequality holding,
//     the result is not verified and ZerosUsed == len(intervals).
//
// Equality LHS == RHS is not sufficient. The intervals must be sorted by
// ascending height |γ|; the ordering is assumed and makes ZerosUsed the
// minimal verifying prefix length.
//
// Errors:
//   - ErrBadBound        — K < 0.
//   - ErrIndexOutOfRange — chi or lambda do not cover every index that
//     LogDerivative queries for the given K.
//
// Deterministic and side-effect free: identical inputs yield bit-identical
// results.
func Verify(d int64, K int, eta float64, intervals []Interval, chi CharacterSeq, lambda VonMangoldtSeq) (Result, error) {
	logDeriv, err := LogDerivative(chi, lambda, K)
	if err != nil {
		return Result{}, err
	}

	var rhs float64
	if d < 0 {
		rhs = 0.5*math.Log(math.Abs(float64(d))*math.E*math.E/(4.0*math.Pi*math.Exp(EulerGamma))) + logDeriv
	} else {
		rhs = 0.5*math.Log(float64(d)/(math.Pi*math.Exp(EulerGamma))) + logDeriv
	}

	lhs := 2.0 * Iota(eta)
	used := 0

	// Prefix fold with short-circuit: stop at the first strictly exceeding
	// prefix of the height-sorted sequence.
	for _, iv := range intervals {
		used++
		lhs += ZeroContribution(iv.GammaMinus, iv.GammaPlus)

		if lhs > rhs {
			return Result{Verified: true, ZerosUsed: used, LHS: lhs, RHS: rhs}, nil
		}
	}

	// Not enough zeros to satisfy the inequality.
	return Result{Verified: false, ZerosUsed: used, LHS: lhs, RHS: rhs}, nil
}

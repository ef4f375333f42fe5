package grh

import "math"

// Iota — window constant ι(η)
//
// Description:
//
//	ι(η) bounds the maximum contribution of zeros missed by a verification
//	window of width η. It is the minimum of two rational expressions in η²:
//
//	  term1 = 1/(1+η²) + 2/(4+η²)
//	  term2 = 12/(9+4η²)
//
// Properties:
//   - Even: ι(η) = ι(-η), since only η² appears.
//   - ι(0) = min(3/2, 4/3) = 4/3.
//
// Pure and total; η is conceptually non-negative but not enforced.
func Iota(eta float64) float64 {
	eta2 := eta * eta
	term1 := 1.0/(1.0+eta2) + 2.0/(4.0+eta2)
	term2 := 12.0 / (9.0 + 4.0*eta2)

	return math.Min(term1, term2)
}

// ZeroContribution returns the additive contribution of a single zero
// interval [γ⁻, γ⁺] to the inequality's left-hand side.
//
// Branches (threshold fixed at 1e-8 on |γ⁻+γ⁺|):
//   - Symmetric  [-γ₀, γ₀]: 6/(9+4γ₀²) with γ₀ = |γ⁺|.
//   - Asymmetric [γ⁻, γ⁺]:  12/(9+4γ⁺²).
//
// The factor-of-two difference reflects that a symmetric interval represents
// a conjugate pair sharing the geometric contribution.
func ZeroContribution(gammaMinus, gammaPlus float64) float64 {
	if math.Abs(gammaMinus+gammaPlus) < symmetryTol {
		g := math.Abs(gammaPlus)

		return 6.0 / (9.0 + 4.0*g*g)
	}

	return 12.0 / (9.0 + 4.0*gammaPlus*gammaPlus)
}

// CZ — standalone C(Z) total
//
// Description:
//
//	Sums ZeroContribution over an interval sequence. Order-independent up to
//	floating-point rounding, and numerically consistent with the per-step
//	accumulation performed by Verify when every interval is consumed.
//
// Provided as a diagnostic; Verify does not call it (the verification loop
// must stop at the first exceeding prefix rather than precompute the total).
//
// Complexity: O(len(intervals)) time, O(1) extra memory.
func CZ(intervals []Interval) float64 {
	sum := 0.0
	for _, iv := range intervals {
		sum += ZeroContribution(iv.GammaMinus, iv.GammaPlus)
	}

	return sum
}

// LogDerivative — partial-sum estimate of L′(2, χ_d)/L(2, χ_d)
//
// Description:
//
//	Accumulates the truncated Dirichlet series
//
//	  Σ_{k=1..K} -χ_d(k)·Λ(k)/k²
//
//	skipping every index with χ_d(k) = 0. The skip happens before the Λ
//	lookup, so a zero-character index never requires a Λ value.
//
// Errors:
//   - ErrBadBound         — K < 0.
//   - ErrIndexOutOfRange  — K exceeds the extent of chi (any k), or the
//     extent of lambda at an index with χ_d(k) ≠ 0. Out-of-range data is a
//     caller contract violation, never treated as zero.
//
// K = 0 yields an empty sum (0, nil).
func LogDerivative(chi CharacterSeq, lambda VonMangoldtSeq, K int) (float64, error) {
	if K < 0 {
		return 0, ErrBadBound
	}

	sum := 0.0
	for k := 1; k <= K; k++ {
		chiK, err := chi.At(k)
		if err != nil {
			return 0, err
		}
		if chiK == 0 {
			continue // χ_d(k) = 0 contributes nothing
		}

		lambdaK, err := lambda.At(k)
		if err != nil {
			return 0, err
		}

		kf := float64(k)
		sum -= float64(chiK) * lambdaK / (kf * kf)
	}

	return sum, nil
}

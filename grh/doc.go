// Package grh evaluates a closed-form numerical sufficient condition
// certifying that the Generalized Riemann Hypothesis (GRH) holds for a
// quadratic Dirichlet L-function L(s, χ_d) up to a given height.
//
// 🚀 What does grh verify?
//
//	Given a fundamental discriminant d, a window width η, and precomputed
//	zero-location data, the package tests an explicit inequality of the form
//
//	  2·ι(η) + Σ c(γ⁻, γ⁺)  >  ½·ln(rhs_const(d)) + L′/L(2, χ_d)
//
//	where the sum runs over intervals bracketing the low-lying nontrivial
//	zeros of L(s, χ_d). When the strict inequality holds after consuming
//	some prefix of the interval sequence, GRH is certified up to height η
//	for that discriminant, and the length of the consumed prefix reports
//	how many zeros were needed.
//
// ✨ Key features:
//   - Iota — the window constant ι(η), even in η
//   - ZeroContribution / Interval — per-interval contribution, symmetric vs.
//     asymmetric classification at the 1e-8 threshold
//   - CZ — standalone C(Z) total over an interval sequence
//   - LogDerivative — partial-sum estimate of L′(2, χ_d)/L(2, χ_d) from
//     Kronecker and von Mangoldt data
//   - Verify — the accumulate-with-early-termination inequality engine
//
// Data contracts:
//
//	Character and von Mangoldt values arrive as explicit-length, 1-based
//	sequences (CharacterSeq, VonMangoldtSeq). Access beyond the declared
//	extent is a checked domain error (ErrIndexOutOfRange), never a silent
//	zero. Interval sequences must be sorted by ascending height |γ|; the
//	ordering is assumed, not validated, and is load-bearing for the
//	minimal-prefix guarantee of Verify.
//
// Concurrency:
//
//	Every function is pure: no package state, no I/O, no mutation of its
//	arguments. Independent calls may run in parallel with zero
//	synchronization as long as the caller does not mutate shared input
//	slices mid-call.
//
// This is a finite-height, finite-data verification procedure, not a proof
// engine: it certifies GRH up to height η from the supplied data, under
// double-precision floating-point arithmetic.
//
// See examples in example_test.go for end-to-end usage.
package grh

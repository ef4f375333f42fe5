// Package discriminant classifies integers as fundamental discriminants of
// quadratic number fields.
//
// A quadratic Dirichlet character χ_d is indexed by a fundamental
// discriminant d, an integer satisfying either
//
//	d ≡ 1 (mod 4) with |d| square-free, or
//	d ≡ 0 (mod 4) with q = d/4 square-free and q ≡ 2 or 3 (mod 4).
//
// Feeding a non-fundamental d downstream is harmless to the arithmetic but
// meaningless: the associated L-function data will be empty. The grhverify
// CLI uses IsFundamental to warn before running a verification.
//
// Both predicates use trial division; they are meant for the modest
// discriminant ranges of verification sweeps, not for cryptographic sizes.
package discriminant

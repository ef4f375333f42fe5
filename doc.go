// Package grhverify is a finite-height numerical verification toolkit for
// the Generalized Riemann Hypothesis over quadratic Dirichlet L-functions.
//
// 🚀 What is grhverify?
//
//	A small, pure-Go engine that evaluates a closed-form sufficient
//	condition: given a fundamental discriminant d, interval brackets for
//	the low-lying nontrivial zeros of L(s, χ_d), and truncated
//	Kronecker-symbol and von Mangoldt data, it decides whether GRH is
//	certified up to a chosen height and reports how many zeros the
//	certificate needed.
//
// ✨ Why choose grhverify?
//
//   - Exact semantics – the classification threshold, both contribution
//     closed forms, and the strict-inequality early exit are pinned down
//     and covered by tests
//   - Checked data access – character and von Mangoldt sequences carry an
//     explicit extent; out-of-range reads are domain errors, never zeros
//   - Pure functions – deterministic, side-effect free, trivially parallel
//     across discriminants
//
// The module is organized into focused subpackages:
//
//	grh/          — the inequality verification engine (Iota, CZ,
//	                LogDerivative, ZeroContribution, Verify)
//	discriminant/ — fundamental-discriminant predicates
//	zerodata/     — plain-text loaders and writers for the data files
//	cmd/grhverify — command-line front end
//
// Data generation (lcalc zero computation, Kronecker/von Mangoldt sieves)
// lives upstream; this module consumes their output files.
package grhverify

// Package zerodata reads and writes the plain-text data files consumed by
// the GRH verification core: zero-bracketing intervals, Kronecker symbol
// values, and von Mangoldt values.
//
// File formats (one record per line, whitespace-separated):
//
//	intervals.txt     γ⁻ γ⁺            two floats
//	kronecker.txt     n χ_d(n)         two integers, χ ∈ {-1, 0, 1}
//	von_mangoldt.txt  n Λ(n)           integer and float, Λ ≥ 0
//
// Loading is deliberately forgiving about individual records and strict
// about files: a line that does not parse as the expected pair — or whose
// values fall outside the record's domain — is skipped and loading
// continues, while a missing or unreadable file is an error. For indexed
// records a later duplicate n overwrites an earlier one, and indices absent
// from the file load as zero (χ_d(n) = 0, Λ(n) = 0); the resulting dense
// sequence extends to the largest n present.
//
// The writers emit the same formats, so a loaded data set round-trips.
package zerodata

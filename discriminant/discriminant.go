package discriminant

// mod4 returns d mod 4 in the mathematical sense, always in [0, 3].
// Go's % keeps the dividend's sign, which would misclassify negative
// discriminants such as -3 ≡ 1 (mod 4).
func mod4(d int64) int64 {
	return ((d % 4) + 4) % 4
}

// IsSquareFree reports whether |n| has no squared prime divisor.
// 0 is not square-free; 1 is.
func IsSquareFree(n int64) bool {
	if n < 0 {
		n = -n
	}
	if n == 0 || n == 1 {
		return n == 1
	}
	if n%4 == 0 {
		return false
	}

	// Trial division over 2 and the odd candidates.
	for p := int64(2); p*p <= n; {
		if n%(p*p) == 0 {
			return false
		}
		if p == 2 {
			p++
		} else {
			p += 2
		}
	}

	return true
}

// IsFundamental reports whether d is a fundamental discriminant of a
// quadratic number field:
//
//	d ≡ 1 (mod 4) and |d| square-free, or
//	d ≡ 0 (mod 4), q = d/4 square-free and q ≡ 2 or 3 (mod 4).
func IsFundamental(d int64) bool {
	if d == 0 {
		return false
	}

	switch mod4(d) {
	case 1:
		return IsSquareFree(d)
	case 0:
		q := d / 4
		m := mod4(q)

		return IsSquareFree(q) && (m == 2 || m == 3)
	default:
		return false
	}
}

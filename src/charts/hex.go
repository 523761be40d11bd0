package charts

import "strconv"

// HexMagnitude projects a hexadecimal string fragment onto a bounded integer
// for chart-axis display. Non-hex characters are discarded anywhere in the
// input, at most the first 8 remaining digits are kept, and the result is
// parsed base 16. Empty or digit-free input projects to 0.
//
// The projection is lossy and display-only: it collapses a long key into a
// 32-bit-range magnitude so two keys can be compared as bar heights. It is
// never used for identity or security decisions.
func HexMagnitude(s string) int64 {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(s) && len(digits) < 8; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	v, err := strconv.ParseInt(string(digits), 16, 64)
	if err != nil {
		return 0
	}
	return v
}

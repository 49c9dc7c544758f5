// core/assembly/natural.go
package assembly

import "strconv"

// NaturalLess compares names treating runs of digits as numbers.
func NaturalLess(a, b string) bool {
	for a != "" && b != "" {
		ca, ra := nextChunk(a)
		cb, rb := nextChunk(b)
		if isDigit(ca[0]) && isDigit(cb[0]) {
			na, errA := strconv.ParseUint(ca, 10, 64)
			nb, errB := strconv.ParseUint(cb, 10, 64)
			if errA == nil && errB == nil && na != nb {
				return na < nb
			}
			if errA != nil || errB != nil {
				if ca != cb {
					return ca < cb
				}
			}
		} else if ca != cb {
			return ca < cb
		}
		a, b = ra, rb
	}
	return len(a) < len(b)
}

func nextChunk(s string) (chunk, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

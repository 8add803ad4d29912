package http1

import (
	"math"

	"github.com/indigo-web/httpcore/internal/hexconv"
)

// parseDec parses the whole of b as a decimal uint64. At least one digit is
// required; a value that wouldn't fit into 64 bits is rejected rather than
// wrapped.
func parseDec(b []byte) (v uint64, ok bool) {
	if len(b) == 0 {
		return 0, false
	}

	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}

		if v > (math.MaxUint64-10)/10 {
			return 0, false
		}

		v = v*10 + uint64(c-'0')
	}

	return v, true
}

// parseHex consumes hexadecimal digits from the front of b, returning the
// parsed value and how many bytes it occupied. ok is false when no digit is
// present or the value overflows 64 bits.
func parseHex(b []byte) (v uint64, n int, ok bool) {
	for n < len(b) {
		d := hexconv.Halfbyte[b[n]]
		if d == hexconv.Invalid {
			break
		}

		if v > math.MaxUint64>>4 {
			return 0, n, false
		}

		v = v<<4 | uint64(d)
		n++
	}

	return v, n, n > 0
}

// parseStatusCode reads exactly three digits from the front of b.
func parseStatusCode(b []byte) (code int, ok bool) {
	if len(b) < 3 {
		return 0, false
	}

	for i := 0; i < 3; i++ {
		if b[i] < '0' || b[i] > '9' {
			return 0, false
		}

		code = code*10 + int(b[i]-'0')
	}

	return code, true
}

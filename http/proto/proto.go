package proto

// Versions are encoded as 10*major + minor, so HTTP/1.1 becomes 11. This is
// the form the rest of the library passes around.
const (
	Unknown = -1
	HTTP09  = 9
	HTTP10  = 10
	HTTP11  = 11
)

// Parse recognizes a literal HTTP-version ("HTTP/x.y") at the front of b.
// It returns the encoded version and the number of bytes it occupies, or
// Unknown and zero when b doesn't begin with a version.
func Parse(b []byte) (version, n int) {
	if len(b) < 8 {
		return Unknown, 0
	}

	if b[0] != 'H' || b[1] != 'T' || b[2] != 'T' || b[3] != 'P' || b[4] != '/' {
		return Unknown, 0
	}

	if !isDigit(b[5]) || b[6] != '.' || !isDigit(b[7]) {
		return Unknown, 0
	}

	return int(b[5]-'0')*10 + int(b[7]-'0'), 8
}

// FromBytes parses b as a whole HTTP-version, with no trailing bytes allowed.
func FromBytes(b []byte) int {
	version, n := Parse(b)
	if n != len(b) {
		return Unknown
	}

	return version
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

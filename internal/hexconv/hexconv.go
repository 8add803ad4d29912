package hexconv

// Invalid marks table entries that do not correspond to a hexadecimal digit.
const Invalid = 0xFF

// Halfbyte maps an octet to its hexadecimal value, or Invalid.
var Halfbyte [256]byte

func init() {
	for i := range Halfbyte {
		Halfbyte[i] = Invalid
	}

	for c := byte('0'); c <= '9'; c++ {
		Halfbyte[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		Halfbyte[c] = c - 'a' + 10
	}

	for c := byte('A'); c <= 'F'; c++ {
		Halfbyte[c] = c - 'A' + 10
	}
}

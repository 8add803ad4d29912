package httpchars

// Octet classes per RFC 7230. Each table answers for all 256 octet values,
// so lookups are branch-free and locale-independent. The tables are built
// once at package initialization and never mutated.
var (
	// Token reports tchar: the characters a method or a header field name
	// may consist of.
	Token [256]bool
	// Pathchar covers the request-target: every octet except ASCII
	// controls and SP.
	Pathchar [256]bool
	// Value covers field-value content: every octet except controls and
	// horizontal whitespace.
	Value [256]bool
	// Text is any octet except controls, but including SP and HTAB. Used
	// for the reason-phrase.
	Text [256]bool
)

func init() {
	for i := 0; i < 256; i++ {
		c := byte(i)
		ctl := c < 0x20 || c == 0x7F
		Pathchar[c] = !ctl && c != ' '
		Value[c] = !ctl && c != ' '
		Text[c] = !ctl || c == '\t'
	}

	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		Token[c] = true
	}

	for c := byte('0'); c <= '9'; c++ {
		Token[c] = true
	}

	for c := byte('a'); c <= 'z'; c++ {
		Token[c] = true
		Token[c&^0x20] = true
	}
}

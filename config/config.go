package config

type (
	FlattenBuffer struct {
		Default, Maximal int
	}
)

// Config holds the few knobs the parser exposes: sizing for the flatten
// scratch region and the read window suggested to hosts when framing is
// unknown.
//
// Always modify defaults (returned via Default()) instead of constructing
// the struct manually.
type Config struct {
	// Flatten controls the scratch buffer used to present discontiguous
	// input segments as one contiguous view. A header block larger than
	// Maximal delivered in multiple segments is rejected with
	// status.ErrHeadersTooLarge.
	Flatten FlattenBuffer
	// ReadWindow is the read size Remain() suggests while the message
	// framing is not known yet, or when the body is close-delimited. It is
	// a hint, not a byte count owed.
	ReadWindow uint64
}

// Default returns a well-balanced default config.
func Default() *Config {
	return &Config{
		Flatten: FlattenBuffer{
			Default: 1 * 1024,
			// most header blocks fit into a few kilobytes; 64kb tolerates
			// extremely long cookies while still bounding the scratch
			// region.
			Maximal: 64 * 1024,
		},
		ReadWindow: 65536,
	}
}

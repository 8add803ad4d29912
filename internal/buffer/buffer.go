package buffer

// Buffer is an owned scratch region. The parser uses it to present input
// that arrived as multiple physical segments as a single contiguous view.
// It grows monotonically up to maxSize and is reused across calls.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) *Buffer {
	return &Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data unless the total would exceed the size cap, in which
// case the data is discarded and false is returned.
func (b *Buffer) Append(data []byte) (ok bool) {
	if len(b.memory)+len(data) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, data...)
	return true
}

// Bytes returns everything appended since the last Clear.
func (b *Buffer) Bytes() []byte {
	return b.memory
}

// Clear resets the length, keeping the underlying storage for reuse.
func (b *Buffer) Clear() {
	b.memory = b.memory[:0]
}

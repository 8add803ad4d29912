// Package streambuf provides a flat, linear dynamic buffer implementing
// the parser's input-accumulator contract: the host reads socket data into
// prepared windows, commits what arrived, and consumes what the parser
// reports as processed.
package streambuf

// Buffer keeps its readable window contiguous at all times, which is what
// lets the parser scan it in place. Memory grows monotonically and is
// reclaimed by compaction once the window empties.
type Buffer struct {
	memory []byte
	begin  int
}

func New(initialSize int) *Buffer {
	return &Buffer{
		memory: make([]byte, 0, initialSize),
	}
}

// Data returns the readable window: everything committed and not yet
// consumed.
func (b *Buffer) Data() []byte {
	return b.memory[b.begin:]
}

// Len returns the size of the readable window.
func (b *Buffer) Len() int {
	return len(b.memory) - b.begin
}

// Prepare returns a writable region of n bytes past the committed data. The
// region contents are unspecified until written. A following Commit must
// not exceed n.
func (b *Buffer) Prepare(n int) []byte {
	b.compact()

	need := len(b.memory) + n
	if cap(b.memory) < need {
		grown := make([]byte, len(b.memory), grow(cap(b.memory), need))
		copy(grown, b.memory)
		b.memory = grown
	}

	return b.memory[len(b.memory):need]
}

// Commit appends n previously prepared bytes to the readable window.
func (b *Buffer) Commit(n int) {
	b.memory = b.memory[:len(b.memory)+n]
}

// Consume drops n bytes from the front of the readable window.
func (b *Buffer) Consume(n int) {
	b.begin += n
	if b.begin > len(b.memory) {
		b.begin = len(b.memory)
	}

	b.compact()
}

// Append is Prepare followed by Commit of the whole of data.
func (b *Buffer) Append(data []byte) {
	copy(b.Prepare(len(data)), data)
	b.Commit(len(data))
}

func (b *Buffer) compact() {
	if b.begin > 0 && b.begin == len(b.memory) {
		b.memory = b.memory[:0]
		b.begin = 0
	}
}

func grow(current, need int) int {
	if current == 0 {
		current = 64
	}

	for current < need {
		current *= 2
	}

	return current
}

package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// preallocCap bounds how much memory Init reserves up-front on behalf of a
// declared Content-Length. Larger bodies still fit, they just grow the
// buffer as bytes actually arrive.
const preallocCap = 64 * 1024

// Body accumulates message payload octets delivered by the parser. It
// implements the body reader contract: Init, Prepare, Commit, Finish.
type Body struct {
	buf       []byte
	committed int
}

func NewBody() *Body {
	return new(Body)
}

// Init prepares the accumulator for a new message. When the content length
// is known in advance and does not exceed preallocCap, storage is reserved
// for it; larger declared lengths reserve nothing up-front.
func (b *Body) Init(length uint64, known bool) error {
	b.buf = b.buf[:0]
	b.committed = 0

	if known && length <= preallocCap && uint64(cap(b.buf)) < length {
		b.buf = make([]byte, 0, length)
	}

	return nil
}

// Prepare returns a writable window of n bytes past the committed region.
func (b *Body) Prepare(n int) ([]byte, error) {
	need := b.committed + n
	if cap(b.buf) < need {
		grown := make([]byte, b.committed, need)
		copy(grown, b.buf)
		b.buf = grown
	}

	b.buf = b.buf[:need]
	return b.buf[b.committed:need], nil
}

// Commit marks n prepared bytes as part of the body.
func (b *Body) Commit(n int) error {
	b.committed += n
	b.buf = b.buf[:b.committed]
	return nil
}

// Finish trims any prepared-but-uncommitted tail.
func (b *Body) Finish() error {
	b.buf = b.buf[:b.committed]
	return nil
}

// Bytes returns the committed body octets. The slice stays valid until the
// next Init.
func (b *Body) Bytes() []byte {
	return b.buf[:b.committed]
}

// String returns the committed body as a string without copying. The string
// stays valid until the next Init.
func (b *Body) String() string {
	return uf.B2S(b.Bytes())
}

// JSON decodes the committed body into the model.
func (b *Body) JSON(model any) error {
	return json.Unmarshal(b.Bytes(), model)
}

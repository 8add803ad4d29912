package http1

import (
	"github.com/indigo-web/httpcore/http/status"
)

// parseChunked advances chunked framing: it recognizes chunk-size lines
// with their extensions, the zero-size last chunk, and the trailer part.
// Chunk data octets themselves move through WriteBody.
//
// The CRLF closing a chunk's data is treated as the prefix of the next
// chunk-size line, so one call consumes the boundary and the following size
// line together when enough bytes are available.
func (p *Parser) parseChunked(data []byte) (int, error) {
	if p.flags&flagFinalChunk != 0 {
		return p.parseTrailer(data)
	}

	if p.remaining > 0 {
		// mid-chunk; nothing to recognize until the data octets are moved
		return 0, nil
	}

	prefix := 0
	if p.flags&flagExpectCRLF != 0 {
		prefix = 2
	}

	from := p.skip
	if from < prefix {
		from = prefix
	}
	if from > len(data) {
		from = len(data)
	}

	idx := findCRLF(data[from:])
	if idx == -1 {
		if s := len(data) - crlfTail; s > p.skip {
			p.skip = s
		}

		return 0, status.ErrNeedMore
	}

	lineEnd := from + idx
	consumed := lineEnd + 2

	if prefix == 2 && (data[0] != '\r' || data[1] != '\n') {
		return 0, status.ErrBadChunk
	}

	line := data[prefix:lineEnd]
	size, n, ok := parseHex(line)
	if !ok {
		return 0, status.ErrBadChunk
	}

	var ext []byte
	if n < len(line) {
		if line[n] != ';' {
			return 0, status.ErrBadChunk
		}

		// emitted verbatim, from the leading semicolon up to the CRLF;
		// extension syntax is not validated at this layer
		ext = line[n:]
	}

	p.skip = 0
	p.flags &^= flagExpectCRLF

	if err := p.obs.OnChunk(size, ext); err != nil {
		return 0, err
	}

	if size == 0 {
		p.flags |= flagFinalChunk
		return consumed, nil
	}

	p.remaining = size
	return consumed, nil
}

// parseTrailer consumes the trailer part: zero or more fields after the
// zero-size chunk, closed by an empty line. Trailer fields reuse the field
// recognizer but never touch framing.
func (p *Parser) parseTrailer(data []byte) (int, error) {
	if len(data) >= 2 && data[0] == '\r' && data[1] == '\n' {
		p.skip = 0
		p.flags |= flagDone

		return 2, nil
	}

	from := p.skip
	if from > len(data) {
		from = len(data)
	}

	idx := find2xCRLF(data[from:])
	if idx == -1 {
		if s := len(data) - crlf2xTail; s > p.skip {
			p.skip = s
		}

		return 0, status.ErrNeedMore
	}

	end := from + idx + 4
	p.skip = 0

	if err := p.parseFields(data[:end], false); err != nil {
		return 0, err
	}

	p.flags |= flagDone
	return end, nil
}

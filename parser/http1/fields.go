package http1

import (
	"strings"

	"github.com/indigo-web/httpcore/http/status"
	"github.com/indigo-web/httpcore/internal/httpchars"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// parseFields walks a field block whose terminating empty line is known by
// the caller to be included in data, emitting one event per field. Framing
// analysis applies to header fields only; trailer fields pass through
// untouched.
func (p *Parser) parseFields(data []byte, framing bool) error {
	for len(data) > 0 {
		if data[0] == '\r' {
			if len(data) < 2 || data[1] != '\n' {
				return status.ErrBadField
			}

			// the empty line closing the block
			return nil
		}

		rest, name, value, err := parseFieldLine(data)
		if err != nil {
			return err
		}

		if framing {
			if err := p.analyzeField(name, value); err != nil {
				return err
			}
		}

		if err := p.obs.OnField(name, value); err != nil {
			return err
		}

		data = rest
	}

	return status.ErrBadField
}

// parseFieldLine recognizes a single name: value line, honoring optional
// whitespace around the value and obs-fold continuations. The returned
// value spans folded bytes verbatim; canonicalizing internal whitespace is
// the observer's choice.
func parseFieldLine(data []byte) (rest, name, value []byte, err error) {
	var i int
	for i < len(data) && httpchars.Token[data[i]] {
		i++
	}

	if i == 0 || i >= len(data) || data[i] != ':' {
		return nil, nil, nil, status.ErrBadField
	}

	name = data[:i]
	i++

	for i < len(data) && (data[i] == ' ' || data[i] == '\t') {
		i++
	}

	first := i
	last := i

	for {
		if i >= len(data) {
			return nil, nil, nil, status.ErrBadValue
		}

		c := data[i]
		switch {
		case c == '\r':
			if i+1 >= len(data) || data[i+1] != '\n' {
				return nil, nil, nil, status.ErrBadValue
			}

			if i+2 < len(data) && (data[i+2] == ' ' || data[i+2] == '\t') {
				// obs-fold: the value continues on the next line
				i += 3
				continue
			}

			return data[i+2:], name, data[first:last], nil
		case c == '\n':
			return nil, nil, nil, status.ErrBadValue
		case c == ' ' || c == '\t':
			i++
		case httpchars.Value[c]:
			i++
			last = i
		default:
			return nil, nil, nil, status.ErrBadValue
		}
	}
}

// analyzeField derives the body-framing decision from a recognized header
// field. Declaring both a Content-Length and chunked transfer is rejected,
// in either order; so is a Transfer-Encoding list where chunked is not the
// last coding.
func (p *Parser) analyzeField(name, value []byte) error {
	switch {
	case strcomp.EqualFold(uf.B2S(name), "content-length"):
		if p.flags&(flagContentLength|flagChunked) != 0 {
			return status.ErrBadContentLength
		}

		v, ok := parseDec(value)
		if !ok {
			return status.ErrBadContentLength
		}

		p.remaining = v
		p.flags |= flagContentLength
	case strcomp.EqualFold(uf.B2S(name), "transfer-encoding"):
		if p.flags&(flagContentLength|flagChunked) != 0 {
			return status.ErrBadTransferEncoding
		}

		chunked, ok := analyzeTransferEncoding(uf.B2S(value))
		if !ok {
			return status.ErrBadTransferEncoding
		}

		if chunked {
			p.flags |= flagChunked
		}
	}

	return nil
}

// analyzeTransferEncoding walks the comma-separated coding list. chunked is
// only honored as the last element; anywhere else the list is rejected.
func analyzeTransferEncoding(value string) (chunked, ok bool) {
	for len(value) > 0 {
		var token string
		if comma := strings.IndexByte(value, ','); comma != -1 {
			token, value = value[:comma], value[comma+1:]
		} else {
			token, value = value, ""
		}

		token = strings.Trim(token, " \t")
		if len(token) == 0 {
			continue
		}

		if chunked {
			return false, false
		}

		if strcomp.EqualFold(token, "chunked") {
			chunked = true
		}
	}

	return chunked, true
}

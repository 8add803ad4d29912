package http1

import (
	"math"

	"github.com/indigo-web/httpcore/config"
	"github.com/indigo-web/httpcore/http/proto"
	"github.com/indigo-web/httpcore/http/status"
	"github.com/indigo-web/httpcore/internal/buffer"
	"github.com/indigo-web/httpcore/internal/httpchars"
	"github.com/indigo-web/httpcore/parser"
)

const (
	flagContentLength uint8 = 1 << iota
	flagChunked
	flagHeader
	flagDone
	flagExpectCRLF
	flagFinalChunk
	// flagSkipBody is reserved for header-only parsing and is never set.
	flagSkipBody
)

// unknownRemaining marks framing not yet derived: the body, if any, runs
// until the peer closes the stream.
const unknownRemaining = math.MaxUint64

// Parser is a stream-based incremental HTTP/1.x message parser. It consumes
// arbitrary byte fragments, advances an internal state machine and emits
// structured events to the observer it was bound to at construction. One
// instance parses exactly one message.
//
// The parser never reads from a socket and never stores parsed fields: the
// host accumulates input in a dynamic buffer, and the observer owns field
// storage. Emitted slices stay valid only until the reported byte count is
// consumed from the host's buffer.
type Parser struct {
	cfg       *config.Config
	obs       parser.Observer
	reqObs    parser.RequestObserver
	respObs   parser.ResponseObserver
	flatten   *buffer.Buffer
	remaining uint64
	skip      int
	flags     uint8
	err       error
}

// NewRequestParser returns a parser recognizing request messages, bound to
// obs for the lifetime of the message.
func NewRequestParser(cfg *config.Config, obs parser.RequestObserver) *Parser {
	p := newParser(cfg)
	p.obs = obs
	p.reqObs = obs

	return p
}

// NewResponseParser returns a parser recognizing response messages, bound
// to obs for the lifetime of the message.
func NewResponseParser(cfg *config.Config, obs parser.ResponseObserver) *Parser {
	p := newParser(cfg)
	p.obs = obs
	p.respObs = obs

	return p
}

func newParser(cfg *config.Config) *Parser {
	return &Parser{
		cfg:       cfg,
		flatten:   buffer.New(cfg.Flatten.Default, cfg.Flatten.Maximal),
		remaining: unknownRemaining,
	}
}

// Write feeds the next fragment of the message. It returns how many bytes
// of data were consumed; the host must drop exactly that many from the
// front of its buffer before the next call.
//
// status.ErrNeedMore reports zero progress: the window doesn't contain the
// terminator the parser is waiting for, and the host must accumulate more
// input before retrying. Any other error is fatal for the message and is
// latched: subsequent calls return it again.
//
// Once the header block is consumed, Write only advances chunked framing.
// Sized and close-delimited body octets bypass it; move those with
// WriteBody or directly via Remain and Consume.
func (p *Parser) Write(data []byte) (n int, err error) {
	if p.err != nil {
		return 0, p.err
	}

	n, err = p.write(data)
	if err != nil && err != status.ErrNeedMore {
		p.err = err
	}

	return n, err
}

func (p *Parser) write(data []byte) (int, error) {
	switch {
	case p.flags&flagDone != 0:
		return 0, nil
	case p.flags&flagHeader == 0:
		return p.parseHeader(data)
	case p.flags&flagChunked != 0:
		return p.parseChunked(data)
	default:
		return 0, nil
	}
}

// WriteBuffers is Write for discontiguous input. A single segment is parsed
// in place; anything else is flattened into the owned scratch buffer first,
// bounded by the configured cap.
func (p *Parser) WriteBuffers(bufs [][]byte) (int, error) {
	switch len(bufs) {
	case 0:
		return p.Write(nil)
	case 1:
		return p.Write(bufs[0])
	}

	if p.err != nil {
		return 0, p.err
	}

	p.flatten.Clear()
	for _, b := range bufs {
		if !p.flatten.Append(b) {
			p.err = status.ErrHeadersTooLarge
			return 0, p.err
		}
	}

	return p.Write(p.flatten.Bytes())
}

// WriteEOF tells the parser the peer closed the stream. For messages whose
// framing owes more bytes this fails with status.ErrShortRead; for
// close-delimited messages it marks the end of the body. Once the message
// is done, WriteEOF is a no-op.
func (p *Parser) WriteEOF() error {
	if p.err != nil {
		return p.err
	}

	if p.flags&flagDone != 0 {
		return nil
	}

	if p.flags&flagHeader == 0 || p.flags&(flagContentLength|flagChunked) != 0 {
		p.err = status.ErrShortRead
		return p.err
	}

	p.flags |= flagDone
	return nil
}

// WriteBody moves body octets from the host's input buffer into the body
// reader: at most the bytes still owed to the current chunk or sized body,
// at most what the buffer holds. The moved bytes are committed to the
// reader and consumed from the buffer.
func (p *Parser) WriteBody(r parser.BodyReader, b parser.DynamicBuffer) error {
	if p.err != nil {
		return p.err
	}

	if p.flags&flagHeader == 0 || p.flags&flagDone != 0 {
		return nil
	}

	if p.flags&flagChunked != 0 && p.remaining == 0 {
		// between chunks; the next Write call recognizes the size line
		return nil
	}

	avail := b.Data()
	n := uint64(len(avail))
	if p.remaining < n {
		n = p.remaining
	}

	if n > 0 {
		out, err := r.Prepare(int(n))
		if err != nil {
			return err
		}

		copy(out, avail[:n])

		if err := r.Commit(int(n)); err != nil {
			return err
		}

		b.Consume(int(n))
	}

	if p.flags&(flagContentLength|flagChunked) != 0 {
		p.consume(n)
	}

	return nil
}

// Consume lowers the count of body bytes owed by n. It serves hosts that
// stream chunk or body octets past the parser on their own, reading
// directly into body storage.
func (p *Parser) Consume(n uint64) {
	if p.flags&(flagContentLength|flagChunked) == 0 {
		return
	}

	if n > p.remaining {
		n = p.remaining
	}

	p.consume(n)
}

func (p *Parser) consume(n uint64) {
	p.remaining -= n
	if p.remaining != 0 {
		return
	}

	if p.flags&flagContentLength != 0 {
		p.flags |= flagDone
	} else {
		p.flags |= flagExpectCRLF
	}
}

// Done reports whether the end of the message has been reached. It is
// monotonic: once set, Write consumes nothing and WriteEOF is a no-op.
func (p *Parser) Done() bool {
	return p.flags&flagDone != 0
}

// HaveHeader reports whether the full header block has been consumed.
func (p *Parser) HaveHeader() bool {
	return p.flags&flagHeader != 0
}

// Chunked reports whether the body is chunk-encoded. The result is
// meaningless until HaveHeader.
func (p *Parser) Chunked() bool {
	return p.flags&flagChunked != 0
}

// ContentLength returns the declared Content-Length, less any body bytes
// already moved, and whether one was declared at all.
func (p *Parser) ContentLength() (uint64, bool) {
	if p.flags&flagContentLength == 0 {
		return 0, false
	}

	return p.remaining, true
}

// NeedsEOF reports whether only the end of stream can delimit the message.
func (p *Parser) NeedsEOF() bool {
	return p.flags&(flagContentLength|flagChunked) == 0
}

// Remain returns the number of body bytes owed to the current chunk or
// sized body. When framing is unknown or close-delimited it returns the
// configured read window instead: a suggested read size, not a byte count.
func (p *Parser) Remain() uint64 {
	if p.flags&(flagContentLength|flagChunked) != 0 {
		return p.remaining
	}

	return p.cfg.ReadWindow
}

func (p *Parser) parseHeader(data []byte) (int, error) {
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

	rest, err := p.parseStartLine(data[:end])
	if err != nil {
		return 0, err
	}

	if err := p.parseFields(rest, true); err != nil {
		return 0, err
	}

	p.flags |= flagHeader
	if p.flags&flagChunked != 0 {
		// the next unit on the wire is a chunk-size line
		p.remaining = 0
	}
	if p.flags&flagContentLength != 0 && p.remaining == 0 {
		p.flags |= flagDone
	}

	if err := p.obs.OnHeader(); err != nil {
		return 0, err
	}

	return end, nil
}

// parseStartLine recognizes the first line of the block. The caller
// guarantees data ends with the block terminator, so all scans below are
// bounded.
func (p *Parser) parseStartLine(data []byte) (rest []byte, err error) {
	if p.reqObs != nil {
		return p.parseRequestLine(data)
	}

	return p.parseStatusLine(data)
}

func (p *Parser) parseRequestLine(data []byte) ([]byte, error) {
	var i int
	for i < len(data) && httpchars.Token[data[i]] {
		i++
	}

	if i == 0 || i >= len(data) || data[i] != ' ' {
		return nil, status.ErrBadMethod
	}

	m := data[:i]
	i++

	j := i
	for j < len(data) && httpchars.Pathchar[data[j]] {
		j++
	}

	if j == i || j >= len(data) || data[j] != ' ' {
		return nil, status.ErrBadPath
	}

	target := data[i:j]
	j++

	version, n := proto.Parse(data[j:])
	if version == proto.Unknown {
		return nil, status.ErrBadVersion
	}

	j += n
	if j+2 > len(data) || data[j] != '\r' || data[j+1] != '\n' {
		return nil, status.ErrBadVersion
	}

	if err := p.reqObs.OnRequest(m, target, version); err != nil {
		return nil, err
	}

	return data[j+2:], nil
}

func (p *Parser) parseStatusLine(data []byte) ([]byte, error) {
	version, n := proto.Parse(data)
	if version == proto.Unknown {
		return nil, status.ErrBadVersion
	}

	i := n
	if i >= len(data) || data[i] != ' ' {
		return nil, status.ErrBadVersion
	}

	i++
	code, ok := parseStatusCode(data[i:])
	if !ok {
		return nil, status.ErrBadStatus
	}

	i += 3
	if i >= len(data) || data[i] != ' ' {
		return nil, status.ErrBadStatus
	}

	i++
	j := i
	for j < len(data) && data[j] != '\r' {
		if !httpchars.Text[data[j]] {
			return nil, status.ErrBadReason
		}

		j++
	}

	// the grammar permits an empty reason-phrase, but downstream relies on
	// a non-empty slice, so it is rejected here
	if j == i {
		return nil, status.ErrBadReason
	}

	if j+1 >= len(data) || data[j+1] != '\n' {
		return nil, status.ErrBadReason
	}

	if err := p.respObs.OnResponse(code, data[i:j], version); err != nil {
		return nil, err
	}

	return data[j+2:], nil
}

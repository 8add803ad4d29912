package http1

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/httpcore/config"
	"github.com/indigo-web/httpcore/http"
	"github.com/indigo-web/httpcore/http/status"
	"github.com/stretchr/testify/require"
)

// chunkedParser returns a parser whose header block is already consumed and
// declared the body chunked, so tests can feed chunk framing directly.
func chunkedParser(t *testing.T, rec *recorder) *Parser {
	p := NewResponseParser(config.Default(), rec)
	n, err := p.Write([]byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n"))
	require.NoError(t, err)
	require.Positive(t, n)
	require.True(t, p.Chunked())

	return p
}

func TestChunkedDecoder(t *testing.T) {
	t.Run("size line without extension", func(t *testing.T) {
		rec := new(recorder)
		p := chunkedParser(t, rec)
		n, err := p.Write([]byte("a\r\n"))
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.EqualValues(t, 10, p.Remain())
		require.Equal(t, `chunk 10 ""`, rec.events[len(rec.events)-1])
	})

	t.Run("size line with extension", func(t *testing.T) {
		rec := new(recorder)
		p := chunkedParser(t, rec)
		raw := "5;name=value;bare\r\n"
		n, err := p.Write([]byte(raw))
		require.NoError(t, err)
		require.Equal(t, len(raw), n)
		require.Equal(t, `chunk 5 ";name=value;bare"`, rec.events[len(rec.events)-1])
	})

	t.Run("leading zeroes", func(t *testing.T) {
		rec := new(recorder)
		p := chunkedParser(t, rec)
		n, err := p.Write([]byte("00f\r\n"))
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.EqualValues(t, 15, p.Remain())
	})

	t.Run("invalid size digit", func(t *testing.T) {
		p := chunkedParser(t, new(recorder))
		_, err := p.Write([]byte("xyz\r\n"))
		require.ErrorIs(t, err, status.ErrBadChunk)
	})

	t.Run("garbage between size and extension", func(t *testing.T) {
		p := chunkedParser(t, new(recorder))
		_, err := p.Write([]byte("5 ;ext\r\n"))
		require.ErrorIs(t, err, status.ErrBadChunk)
	})

	t.Run("size overflow", func(t *testing.T) {
		p := chunkedParser(t, new(recorder))
		_, err := p.Write([]byte("FFFFFFFFFFFFFFFFF\r\n"))
		require.ErrorIs(t, err, status.ErrBadChunk)
	})

	t.Run("missing boundary after data", func(t *testing.T) {
		raw := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n" +
			"2\r\n**XX3\r\n***\r\n0\r\n\r\n"
		p, _ := getResponseParser()
		body := http.NewBody()
		err := pump(p, body, []byte(raw), len(raw))
		require.ErrorIs(t, err, status.ErrBadChunk)
	})

	t.Run("empty trailer", func(t *testing.T) {
		rec := new(recorder)
		p := chunkedParser(t, rec)
		body := http.NewBody()
		require.NoError(t, body.Init(0, false))

		buf := newFedBuffer("3\r\nabc\r\n0\r\n\r\n")
		for !p.Done() {
			n, err := p.Write(buf.Data())
			require.NoError(t, err)
			buf.Consume(n)
			require.NoError(t, p.WriteBody(body, buf))
		}

		require.Equal(t, "abc", body.String())
		require.Equal(t, `chunk 0 ""`, rec.events[len(rec.events)-1])
	})

	t.Run("trailer fields skip framing analysis", func(t *testing.T) {
		// a Content-Length in the trailer part must not flip framing or
		// fail the message
		raw := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n" +
			"3\r\nabc\r\n0\r\nContent-Length: 999\r\n\r\n"
		p, resp := getResponseParser()
		body := http.NewBody()
		require.NoError(t, pump(p, body, []byte(raw), len(raw)))
		require.True(t, p.Done())
		require.Equal(t, "abc", body.String())
		require.Equal(t, "999", resp.Headers.Value("content-length"))
	})
}

// newFedBuffer wraps raw in a fully pre-filled dynamic buffer.
func newFedBuffer(raw string) *fedBuffer {
	return &fedBuffer{data: []byte(raw)}
}

type fedBuffer struct {
	data []byte
}

func (f *fedBuffer) Data() []byte         { return f.data }
func (f *fedBuffer) Len() int             { return len(f.data) }
func (f *fedBuffer) Prepare(n int) []byte { panic("BUG: fedBuffer is read-only") }
func (f *fedBuffer) Commit(int)           { panic("BUG: fedBuffer is read-only") }
func (f *fedBuffer) Consume(n int)        { f.data = f.data[n:] }

// TestChunkedOracle cross-checks the decoder against the external
// chunked-body parser: both must extract the same payload from the same
// stream.
func TestChunkedOracle(t *testing.T) {
	streams := []string{
		"4\r\nWiki\r\n5\r\npedia\r\nE\r\n in\r\n\r\nchunks.\r\n0\r\n\r\n",
		"1\r\na\r\n1\r\nb\r\n1\r\nc\r\n0\r\n\r\n",
		"10\r\n0123456789abcdef\r\n0\r\n\r\n",
	}

	for i, stream := range streams {
		t.Run(fmt.Sprintf("stream %d", i), func(t *testing.T) {
			oracle := decodeWithOracle(t, stream)

			raw := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n" + stream
			for _, step := range []int{1, 3, len(raw)} {
				p, _ := getResponseParser()
				body := http.NewBody()
				require.NoError(t, pump(p, body, []byte(raw), step), step)
				require.Equal(t, oracle, body.String(), step)
			}
		})
	}
}

func decodeWithOracle(t *testing.T, stream string) string {
	parser := chunkedbody.NewParser(chunkedbody.DefaultSettings())

	var decoded strings.Builder
	data := []byte(stream)
	for len(data) > 0 {
		chunk, extra, err := parser.Parse(data, false)
		if err == io.EOF {
			decoded.Write(chunk)
			break
		}

		require.NoError(t, err)
		decoded.Write(chunk)
		data = extra
	}

	return decoded.String()
}

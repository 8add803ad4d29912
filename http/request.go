package http

import (
	"github.com/indigo-web/httpcore/http/proto"
	"github.com/indigo-web/httpcore/kv"
)

// Request is the header record of a single parsed request message. It is
// filled in by the bundled request collector; trailer fields, if any, land
// in Headers alongside the ordinary ones.
type Request struct {
	Method  string
	Path    string
	Proto   int
	Headers *kv.Storage
}

func NewRequest() *Request {
	return &Request{
		Proto:   proto.Unknown,
		Headers: kv.New(),
	}
}

// Reset brings the request back to its post-construction state, keeping the
// headers storage for reuse.
func (r *Request) Reset() {
	r.Method = ""
	r.Path = ""
	r.Proto = proto.Unknown
	r.Headers.Clear()
}

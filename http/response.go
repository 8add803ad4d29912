package http

import (
	"github.com/indigo-web/httpcore/http/proto"
	"github.com/indigo-web/httpcore/kv"
)

// Response is the header record of a single parsed response message.
type Response struct {
	Code    int
	Reason  string
	Proto   int
	Headers *kv.Storage
}

func NewResponse() *Response {
	return &Response{
		Proto:   proto.Unknown,
		Headers: kv.New(),
	}
}

// Reset brings the response back to its post-construction state, keeping
// the headers storage for reuse.
func (r *Response) Reset() {
	r.Code = 0
	r.Reason = ""
	r.Proto = proto.Unknown
	r.Headers.Clear()
}

// Package httpcore is an embeddable, incremental HTTP/1.x message parser.
//
// The parser consumes arbitrary byte fragments delivered by the host,
// advances an internal state machine and surfaces structured events
// (start-line fields, header fields, body octets, end-of-message) to an
// observer supplied at construction. Socket reads, buffer allocation
// strategy and body storage stay on the host's side of the contracts
// defined in the parser package.
package httpcore

import (
	"github.com/indigo-web/httpcore/config"
	"github.com/indigo-web/httpcore/http"
	"github.com/indigo-web/httpcore/parser"
	"github.com/indigo-web/httpcore/parser/http1"
)

// NewRequestParser returns a parser filling request with default settings.
// Use http1.NewRequestParser directly to supply a custom observer or
// config.
func NewRequestParser(request *http.Request) *http1.Parser {
	return http1.NewRequestParser(config.Default(), parser.CollectRequest(request))
}

// NewResponseParser returns a parser filling response with default
// settings.
func NewResponseParser(response *http.Response) *http1.Parser {
	return http1.NewResponseParser(config.Default(), parser.CollectResponse(response))
}

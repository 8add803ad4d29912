package parser

import (
	"github.com/indigo-web/httpcore/http"
)

// RequestCollector is a ready-made observer copying parse events into a
// http.Request. Borrowed views are turned into owned strings, so the
// request outlives the parse.
type RequestCollector struct {
	request *http.Request
}

func CollectRequest(into *http.Request) *RequestCollector {
	return &RequestCollector{request: into}
}

func (c *RequestCollector) OnRequest(method, target []byte, version int) error {
	c.request.Method = string(method)
	c.request.Path = string(target)
	c.request.Proto = version
	return nil
}

func (c *RequestCollector) OnField(name, value []byte) error {
	c.request.Headers.Add(string(name), string(value))
	return nil
}

func (c *RequestCollector) OnHeader() error {
	return nil
}

func (c *RequestCollector) OnChunk(uint64, []byte) error {
	return nil
}

func (c *RequestCollector) OnChunkData([]byte) error {
	return nil
}

// ResponseCollector is the response-side counterpart of RequestCollector.
type ResponseCollector struct {
	response *http.Response
}

func CollectResponse(into *http.Response) *ResponseCollector {
	return &ResponseCollector{response: into}
}

func (c *ResponseCollector) OnResponse(code int, reason []byte, version int) error {
	c.response.Code = code
	c.response.Reason = string(reason)
	c.response.Proto = version
	return nil
}

func (c *ResponseCollector) OnField(name, value []byte) error {
	c.response.Headers.Add(string(name), string(value))
	return nil
}

func (c *ResponseCollector) OnHeader() error {
	return nil
}

func (c *ResponseCollector) OnChunk(uint64, []byte) error {
	return nil
}

func (c *ResponseCollector) OnChunkData([]byte) error {
	return nil
}

var (
	_ RequestObserver  = new(RequestCollector)
	_ ResponseObserver = new(ResponseCollector)
)

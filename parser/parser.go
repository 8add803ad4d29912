// Package parser defines the contracts between the streaming parser and its
// host: the observer receiving parse events, the body reader owning payload
// storage, and the dynamic buffer the host accumulates socket reads into.
package parser

// Observer receives parse events in byte order: start-line, fields in
// source order, OnHeader, then chunk events if the message is chunked.
// Trailer fields arrive through OnField after the zero-size chunk.
//
// All slice arguments are borrowed views into the caller's input or the
// parser's flatten buffer. They must not be retained past the enclosing
// call; copy what needs to live longer.
type Observer interface {
	OnField(name, value []byte) error
	OnHeader() error
	// OnChunk fires per chunk-size line, including the last chunk. The
	// extension bytes, if any, are passed verbatim and unvalidated,
	// starting at the leading semicolon.
	OnChunk(size uint64, ext []byte) error
	// OnChunkData is reserved. The parser moves body octets through the
	// body reader instead and never emits this event.
	OnChunkData(data []byte) error
}

// RequestObserver is the observer variant bound by request parsers.
type RequestObserver interface {
	Observer
	OnRequest(method, target []byte, version int) error
}

// ResponseObserver is the observer variant bound by response parsers.
type ResponseObserver interface {
	Observer
	OnResponse(code int, reason []byte, version int) error
}

// BodyReader owns body storage on behalf of the host. The parser prepares a
// window, copies payload octets into it and commits them; the host calls
// Finish once the message is done.
type BodyReader interface {
	// Init is called once per message, after the header block completes.
	// known reports whether length carries a declared Content-Length.
	Init(length uint64, known bool) error
	Prepare(n int) ([]byte, error)
	Commit(n int) error
	Finish() error
}

// DynamicBuffer is the input accumulator the host reads into. Data returns
// the readable window, Prepare/Commit append to it, and Consume discards
// bytes the parser reported as consumed.
type DynamicBuffer interface {
	Data() []byte
	Len() int
	Prepare(n int) []byte
	Commit(n int)
	Consume(n int)
}

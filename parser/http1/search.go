package http1

import "bytes"

// Terminator searches are resumable: the machine records how much of the
// window was already proven terminator-free and restarts past it, less a
// small tail a terminator could straddle.
const (
	crlfTail   = 1
	crlf2xTail = 3
)

var (
	crlf   = []byte("\r\n")
	crlf2x = []byte("\r\n\r\n")
)

// findCRLF reports the index of the next CRLF in data, or -1.
func findCRLF(data []byte) int {
	return bytes.Index(data, crlf)
}

// find2xCRLF reports the index of the next CRLFCRLF in data, or -1.
func find2xCRLF(data []byte) int {
	return bytes.Index(data, crlf2x)
}

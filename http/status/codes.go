package status

// Code identifies a parse outcome. The values of the first twelve codes are
// stable and may be relied upon when mapping errors across process or
// language boundaries.
type Code uint8

const (
	// NeedMore is not a failure: the parser consumed nothing and requires
	// additional input before it can make progress.
	NeedMore Code = iota + 1
	BadMethod
	BadPath
	BadVersion
	BadStatus
	BadReason
	BadField
	BadValue
	BadContentLength
	BadTransferEncoding
	BadChunk
	ShortRead

	// HeadersTooLarge sits outside the stable range above. It is a policy
	// error: the flattened header block exceeded the configured cap.
	HeadersTooLarge
)

func (c Code) String() string {
	switch c {
	case NeedMore:
		return "need_more"
	case BadMethod:
		return "bad_method"
	case BadPath:
		return "bad_path"
	case BadVersion:
		return "bad_version"
	case BadStatus:
		return "bad_status"
	case BadReason:
		return "bad_reason"
	case BadField:
		return "bad_field"
	case BadValue:
		return "bad_value"
	case BadContentLength:
		return "bad_content_length"
	case BadTransferEncoding:
		return "bad_transfer_encoding"
	case BadChunk:
		return "bad_chunk"
	case ShortRead:
		return "short_read"
	case HeadersTooLarge:
		return "headers_too_large"
	default:
		return "unknown"
	}
}

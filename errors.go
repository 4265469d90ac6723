package http2

import "errors"

// ErrorCode is the 32-bit error code carried by RST_STREAM and GOAWAY frames.
//
// https://tools.ietf.org/html/rfc7540#section-7
type ErrorCode uint32

// Named error codes from RFC 7540 section 7. Any other 32-bit value is a
// valid, opaque error code and must be preserved verbatim rather than
// coerced into one of these.
const (
	ErrCodeNo                 ErrorCode = 0x0
	ErrCodeProtocol           ErrorCode = 0x1
	ErrCodeInternal           ErrorCode = 0x2
	ErrCodeFlowControl        ErrorCode = 0x3
	ErrCodeSettingsTimeout    ErrorCode = 0x4
	ErrCodeStreamClosed       ErrorCode = 0x5
	ErrCodeFrameSize          ErrorCode = 0x6
	ErrCodeRefusedStream      ErrorCode = 0x7
	ErrCodeCancel             ErrorCode = 0x8
	ErrCodeCompression        ErrorCode = 0x9
	ErrCodeConnect            ErrorCode = 0xa
	ErrCodeEnhanceYourCalm    ErrorCode = 0xb
	ErrCodeInadequateSecurity ErrorCode = 0xc
	ErrCodeHTTP11Required     ErrorCode = 0xd
)

var errCodeNames = [...]string{
	ErrCodeNo:                 "NO_ERROR",
	ErrCodeProtocol:           "PROTOCOL_ERROR",
	ErrCodeInternal:           "INTERNAL_ERROR",
	ErrCodeFlowControl:        "FLOW_CONTROL_ERROR",
	ErrCodeSettingsTimeout:    "SETTINGS_TIMEOUT",
	ErrCodeStreamClosed:       "STREAM_CLOSED",
	ErrCodeFrameSize:          "FRAME_SIZE_ERROR",
	ErrCodeRefusedStream:      "REFUSED_STREAM",
	ErrCodeCancel:             "CANCEL",
	ErrCodeCompression:        "COMPRESSION_ERROR",
	ErrCodeConnect:            "CONNECT_ERROR",
	ErrCodeEnhanceYourCalm:    "ENHANCE_YOUR_CALM",
	ErrCodeInadequateSecurity: "INADEQUATE_SECURITY",
	ErrCodeHTTP11Required:     "HTTP_1_1_REQUIRED",
}

// String returns the RFC name of a known error code, or a generic label for
// an opaque one. Unknown codes are never coerced into a named value.
func (e ErrorCode) String() string {
	if int(e) < len(errCodeNames) && errCodeNames[e] != "" {
		return errCodeNames[e]
	}
	return "UNKNOWN_ERROR"
}

// ConnectionError is a protocol violation that requires terminating the
// whole connection (the enclosing state machine issues GOAWAY with Code).
type ConnectionError struct {
	Code ErrorCode
	Err  error
}

func (e ConnectionError) Error() string {
	if e.Err != nil {
		return "http2: " + e.Code.String() + ": " + e.Err.Error()
	}
	return "http2: " + e.Code.String()
}

func (e ConnectionError) Unwrap() error { return e.Err }

// StreamError is a protocol violation scoped to a single stream (the
// enclosing state machine resolves it with RST_STREAM).
type StreamError struct {
	StreamID uint32
	Code     ErrorCode
	Err      error
}

func (e StreamError) Error() string {
	if e.Err != nil {
		return "http2: stream " + uitoa(e.StreamID) + ": " + e.Code.String() + ": " + e.Err.Error()
	}
	return "http2: stream " + uitoa(e.StreamID) + ": " + e.Code.String()
}

func (e StreamError) Unwrap() error { return e.Err }

func uitoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// Sentinel errors produced while parsing frame headers/payloads.
var (
	ErrMissingBytes     = errors.New("http2: frame payload too short")
	ErrUnknownFrameType = errors.New("http2: unknown frame type")
	ErrBadPreface       = errors.New("http2: bad connection preface")
	ErrPayloadExceeds   = errors.New("http2: frame payload exceeds negotiated maximum size")

	// ErrHPACKDecompression is the single opaque HPACK decode-failure kind:
	// RFC 7541 section 4.3 classifies every HPACK decode error as a
	// connection error of type COMPRESSION_ERROR, without finer
	// subclassification. Callers that need the underlying cause can still
	// unwrap it.
	ErrHPACKDecompression = errors.New("http2: hpack decompression failed")
)

// NewHPACKError wraps cause as an opaque HPACK decode failure, suitable for
// surfacing to the enclosing connection as ErrCodeCompression.
func NewHPACKError(cause error) error {
	if cause == nil {
		cause = ErrHPACKDecompression
	}
	return ConnectionError{Code: ErrCodeCompression, Err: cause}
}

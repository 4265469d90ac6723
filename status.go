package http2

import "strconv"

// StatusCode is an HTTP status-code value in [100, 599]. This enumeration
// is exhaustive over every structurally valid code, registered or not.
type StatusCode uint16

// NewStatusCode validates n and returns it as a StatusCode.
func NewStatusCode(n uint16) (StatusCode, error) {
	if n < 100 || n > 599 {
		return 0, ErrInvalidStatusCode
	}
	return StatusCode(n), nil
}

// ErrInvalidStatusCode is returned by NewStatusCode for any value outside
// [100, 599].
var ErrInvalidStatusCode = statusRangeError{}

type statusRangeError struct{}

func (statusRangeError) Error() string { return "http2: status code out of [100,599] range" }

// StatusClass is one of the five status-code classes, selected by the
// hundreds digit.
type StatusClass uint8

const (
	ClassInformational StatusClass = 1
	ClassSuccessful    StatusClass = 2
	ClassRedirection   StatusClass = 3
	ClassClientError   StatusClass = 4
	ClassServerError   StatusClass = 5
)

func (c StatusClass) String() string {
	switch c {
	case ClassInformational:
		return "Informational"
	case ClassSuccessful:
		return "Successful"
	case ClassRedirection:
		return "Redirection"
	case ClassClientError:
		return "ClientError"
	case ClassServerError:
		return "ServerError"
	default:
		return "Unknown"
	}
}

// DefaultCode returns the x00 status code of the class, used per RFC 7231
// section 6 to let a client treat an unrecognised code as its class's base
// code.
func (c StatusClass) DefaultCode() StatusCode {
	return StatusCode(c) * 100
}

// Class returns the status-code class: the hundreds digit selects one of
// the five classes.
func (s StatusCode) Class() StatusClass {
	return StatusClass(s / 100)
}

// Uint16 returns the numeric status code.
func (s StatusCode) Uint16() uint16 { return uint16(s) }

// canonicalReasons holds the IANA-registered reason phrase for every
// registered code, plus 418, which is absent from the IANA registry but
// present in common usage. Codes not present here are structurally valid
// but carry no canonical reason.
var canonicalReasons = map[StatusCode]string{
	100: "Continue",
	101: "Switching Protocols",
	102: "Processing",

	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	207: "Multi-Status",
	208: "Already Reported",
	226: "IM Used",

	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}

// CanonicalReason returns the IANA-registered reason phrase for s, and
// whether one exists. A structurally valid but unregistered code (e.g.
// 499) has no canonical reason.
func (s StatusCode) CanonicalReason() (string, bool) {
	r, ok := canonicalReasons[s]
	return r, ok
}

// String renders the code with its canonical reason when known, otherwise
// just the numeric code.
func (s StatusCode) String() string {
	if r, ok := s.CanonicalReason(); ok {
		return strconv.Itoa(int(s)) + " " + r
	}
	return strconv.Itoa(int(s))
}

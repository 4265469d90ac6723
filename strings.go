package http2

// Pseudo-header and common header name byte constants, kept as []byte
// rather than string to match fasthttp's byte-slice header API that
// h2adapt bridges against.
var (
	StringPath          = []byte(":path")
	StringStatus        = []byte(":status")
	StringAuthority     = []byte(":authority")
	StringScheme        = []byte(":scheme")
	StringMethod        = []byte(":method")
	StringServer        = []byte("server")
	StringContentLength = []byte("content-length")
	StringContentType   = []byte("content-type")
	StringUserAgent     = []byte("user-agent")
	StringGET           = []byte("GET")
	StringHEAD          = []byte("HEAD")
	StringPOST          = []byte("POST")
)

// ToLower lowercases b in place and returns it. HPACK requires header
// names be lowercase on the wire (RFC 7541 section 5.2 doesn't mandate
// this directly, but RFC 7540 section 8.1.2 does for HTTP/2 as a whole).
func ToLower(b []byte) []byte {
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] |= 0x20
		}
	}
	return b
}

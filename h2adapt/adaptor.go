// Package h2adapt bridges this module's HPACK header fields to and from
// fasthttp's request/response header types, so a fasthttp-based server or
// client can sit on top of the HPACK/frame codec without re-implementing
// HTTP/1-style header storage.
package h2adapt

import (
	"strconv"

	"github.com/go-h2/h2c"
	"github.com/go-h2/h2c/http2utils"
	"github.com/valyala/fasthttp"
)

var (
	nameMethod    = string(http2.StringMethod)
	nameScheme    = string(http2.StringScheme)
	nameAuthority = string(http2.StringAuthority)
	namePath      = string(http2.StringPath)
	nameStatus    = string(http2.StringStatus)

	hostHeader       = []byte("Host")
	connectionHeader = []byte("Connection")
)

// RequestToHeaderFields translates a fasthttp request's headers into the
// pseudo-header-first ordering HTTP/2 requires (RFC 7540 section 8.1.2.1):
// :method, :scheme, :authority, :path, then regular fields in original
// order.
func RequestToHeaderFields(req *fasthttp.Request, scheme string) []http2.HeaderField {
	h := &req.Header
	fields := make([]http2.HeaderField, 0, h.Len()+4)

	fields = append(fields,
		http2.HeaderField{Name: nameMethod, Value: string(h.Method())},
		http2.HeaderField{Name: nameScheme, Value: scheme},
		http2.HeaderField{Name: nameAuthority, Value: string(h.Host())},
		http2.HeaderField{Name: namePath, Value: string(req.URI().RequestURI())},
	)

	h.VisitAll(func(key, value []byte) {
		if http2utils.EqualsFold(key, hostHeader) || http2utils.EqualsFold(key, connectionHeader) {
			return
		}
		fields = append(fields, http2.HeaderField{Name: lowerHeaderName(key), Value: string(value)})
	})

	return fields
}

// HeaderFieldsToRequest applies decoded HPACK header fields to req,
// stripping the HTTP/2 pseudo-headers into their fasthttp equivalents and
// copying the rest in as regular headers.
func HeaderFieldsToRequest(fields []http2.HeaderField, req *fasthttp.Request) {
	for _, f := range fields {
		switch f.Name {
		case nameMethod:
			req.Header.SetMethod(f.Value)
		case namePath:
			req.Header.SetRequestURI(f.Value)
		case nameAuthority:
			req.Header.SetHost(f.Value)
		case nameScheme:
			// fasthttp has no first-class scheme field; carried as a
			// regular header for callers that care.
			req.Header.Set("X-Forwarded-Proto", f.Value)
		default:
			req.Header.Set(f.Name, f.Value)
		}
	}
}

// ResponseToHeaderFields translates a fasthttp response's headers into
// HTTP/2 wire order: :status first, then regular fields.
func ResponseToHeaderFields(resp *fasthttp.Response) []http2.HeaderField {
	h := &resp.Header
	fields := make([]http2.HeaderField, 0, h.Len()+1)
	fields = append(fields, http2.HeaderField{Name: nameStatus, Value: strconv.Itoa(h.StatusCode())})

	h.VisitAll(func(key, value []byte) {
		fields = append(fields, http2.HeaderField{Name: lowerHeaderName(key), Value: string(value)})
	})

	return fields
}

// HeaderFieldsToResponse applies decoded HPACK header fields to resp.
func HeaderFieldsToResponse(fields []http2.HeaderField, resp *fasthttp.Response) {
	for _, f := range fields {
		if f.Name == nameStatus {
			if code, err := strconv.Atoi(f.Value); err == nil {
				resp.Header.SetStatusCode(code)
			}
			continue
		}
		resp.Header.Set(f.Name, f.Value)
	}
}

// lowerHeaderName copies key and lowercases the copy with http2.ToLower,
// rather than mutating fasthttp's internal header buffer in place.
func lowerHeaderName(key []byte) string {
	b := append([]byte(nil), key...)
	return string(http2.ToLower(b))
}

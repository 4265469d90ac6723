package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var (
	_ Frame            = &Headers{}
	_ FrameWithHeaders = &Headers{}
)

// FrameWithHeaders is implemented by the three frame types that carry a
// (possibly partial) header block fragment: HEADERS, PUSH_PROMISE and
// CONTINUATION.
type FrameWithHeaders interface {
	Headers() []byte
}

// Headers carries the first fragment of a stream's compressed header
// block, plus optional stream dependency/weight and padding.
//
// https://tools.ietf.org/html/rfc7540#section-6.2
type Headers struct {
	hasPadding bool
	stream     uint32
	weight     uint8
	endStream  bool
	endHeaders bool
	rawHeaders []byte
}

func (h *Headers) Reset() {
	h.hasPadding = false
	h.stream = 0
	h.weight = 0
	h.endStream = false
	h.endHeaders = false
	h.rawHeaders = h.rawHeaders[:0]
}

// CopyTo copies h's fields to h2.
func (h *Headers) CopyTo(h2 *Headers) {
	h2.hasPadding = h.hasPadding
	h2.stream = h.stream
	h2.weight = h.weight
	h2.endStream = h.endStream
	h2.endHeaders = h.endHeaders
	h2.rawHeaders = append(h2.rawHeaders[:0], h.rawHeaders...)
}

func (h *Headers) Type() FrameType { return FrameHeaders }

// Headers returns the raw (still HPACK-compressed) header block fragment.
func (h *Headers) Headers() []byte { return h.rawHeaders }

// SetHeaders replaces the raw header block fragment.
func (h *Headers) SetHeaders(b []byte) { h.rawHeaders = append(h.rawHeaders[:0], b...) }

// AppendRawHeaders appends b to the raw header block fragment, used when
// reassembling a block split across HEADERS + CONTINUATION frames.
func (h *Headers) AppendRawHeaders(b []byte) { h.rawHeaders = append(h.rawHeaders, b...) }

func (h *Headers) EndStream() bool          { return h.endStream }
func (h *Headers) SetEndStream(value bool)  { h.endStream = value }
func (h *Headers) EndHeaders() bool         { return h.endHeaders }
func (h *Headers) SetEndHeaders(value bool) { h.endHeaders = value }
func (h *Headers) Stream() uint32           { return h.stream }
func (h *Headers) SetStream(stream uint32)  { h.stream = stream & (1<<31 - 1) }
func (h *Headers) Weight() byte             { return h.weight }
func (h *Headers) SetWeight(w byte)         { h.weight = w }
func (h *Headers) Padding() bool            { return h.hasPadding }
func (h *Headers) SetPadding(value bool)    { h.hasPadding = value }
func (h *Headers) HasPriority() bool        { return h.weight != 0 || h.stream != 0 }

func (h *Headers) Deserialize(frh *FrameHeader) error {
	flags := frh.Flags()
	payload := frh.payload

	if flags.Has(FlagPadded) {
		if len(payload) < 1 {
			return ConnectionError{Code: ErrCodeProtocol, Err: ErrMissingBytes}
		}
		var err error
		payload, err = http2utils.CutPadding(payload, frh.Len())
		if err != nil {
			return ConnectionError{Code: ErrCodeProtocol, Err: err}
		}
	}

	if flags.Has(FlagPriority) {
		if len(payload) < 5 { // 4 (dependency) + 1 (weight)
			return StreamError{StreamID: frh.Stream(), Code: ErrCodeFrameSize, Err: ErrMissingBytes}
		}
		h.stream = http2utils.BytesToUint32(payload) & (1<<31 - 1)
		h.weight = payload[4]
		payload = payload[5:]
	} else {
		h.stream = 0
		h.weight = 0
	}

	h.endStream = flags.Has(FlagEndStream)
	h.endHeaders = flags.Has(FlagEndHeaders)
	h.rawHeaders = append(h.rawHeaders[:0], payload...)

	return nil
}

func (h *Headers) Serialize(frh *FrameHeader) {
	if h.endStream {
		frh.SetFlags(frh.Flags().Add(FlagEndStream))
	}
	if h.endHeaders {
		frh.SetFlags(frh.Flags().Add(FlagEndHeaders))
	}

	payload := h.rawHeaders
	if h.HasPriority() {
		frh.SetFlags(frh.Flags().Add(FlagPriority))
		prefix := make([]byte, 5)
		http2utils.Uint32ToBytes(prefix, h.stream)
		prefix[4] = h.weight
		payload = append(prefix, payload...)
	}

	if h.hasPadding {
		frh.SetFlags(frh.Flags().Add(FlagPadded))
		payload = http2utils.AddPadding(payload)
	}

	frh.setPayload(payload)
}

package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var (
	_ Frame            = &PushPromise{}
	_ FrameWithHeaders = &PushPromise{}
)

// PushPromise notifies the peer of a stream the sender intends to
// initiate server-push on, carrying the promised request's header block.
//
// https://tools.ietf.org/html/rfc7540#section-6.6
type PushPromise struct {
	hasPadding     bool
	endHeaders     bool
	promisedStream uint32
	rawHeaders     []byte
}

func (pp *PushPromise) Type() FrameType { return FramePushPromise }

func (pp *PushPromise) Reset() {
	pp.hasPadding = false
	pp.endHeaders = false
	pp.promisedStream = 0
	pp.rawHeaders = pp.rawHeaders[:0]
}

func (pp *PushPromise) CopyTo(other *PushPromise) {
	other.hasPadding = pp.hasPadding
	other.endHeaders = pp.endHeaders
	other.promisedStream = pp.promisedStream
	other.rawHeaders = append(other.rawHeaders[:0], pp.rawHeaders...)
}

// Headers returns the promised request's raw header block fragment.
func (pp *PushPromise) Headers() []byte { return pp.rawHeaders }

// SetHeaders replaces the promised request's header block fragment.
func (pp *PushPromise) SetHeaders(b []byte) { pp.rawHeaders = append(pp.rawHeaders[:0], b...) }

func (pp *PushPromise) Write(b []byte) (int, error) {
	pp.rawHeaders = append(pp.rawHeaders, b...)
	return len(b), nil
}

// PromisedStream returns the stream id the server promises to push on.
func (pp *PushPromise) PromisedStream() uint32 { return pp.promisedStream }

// SetPromisedStream sets the promised stream id.
func (pp *PushPromise) SetPromisedStream(stream uint32) {
	pp.promisedStream = stream & (1<<31 - 1)
}

func (pp *PushPromise) EndHeaders() bool     { return pp.endHeaders }
func (pp *PushPromise) SetEndHeaders(v bool) { pp.endHeaders = v }
func (pp *PushPromise) Padding() bool        { return pp.hasPadding }
func (pp *PushPromise) SetPadding(v bool)    { pp.hasPadding = v }

func (pp *PushPromise) Deserialize(fr *FrameHeader) error {
	payload := fr.payload

	if fr.Flags().Has(FlagPadded) {
		if len(payload) < 1 {
			return ConnectionError{Code: ErrCodeProtocol, Err: ErrMissingBytes}
		}
		var err error
		payload, err = http2utils.CutPadding(payload, fr.Len())
		if err != nil {
			return ConnectionError{Code: ErrCodeProtocol, Err: err}
		}
	}

	if len(payload) < 4 {
		return ConnectionError{Code: ErrCodeFrameSize, Err: ErrMissingBytes}
	}

	pp.promisedStream = http2utils.BytesToUint32(payload) & (1<<31 - 1)
	pp.rawHeaders = append(pp.rawHeaders[:0], payload[4:]...)
	pp.endHeaders = fr.Flags().Has(FlagEndHeaders)

	return nil
}

func (pp *PushPromise) Serialize(fr *FrameHeader) {
	if pp.endHeaders {
		fr.SetFlags(fr.Flags().Add(FlagEndHeaders))
	}

	prefix := http2utils.AppendUint32Bytes(nil, pp.promisedStream)
	payload := append(prefix, pp.rawHeaders...)

	if pp.hasPadding {
		fr.SetFlags(fr.Flags().Add(FlagPadded))
		payload = http2utils.AddPadding(payload)
	}

	fr.setPayload(payload)
}

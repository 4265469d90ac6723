package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var _ Frame = &Data{}

// Data carries stream payload bytes.
//
// Flags: END_STREAM, PADDED.
//
// https://tools.ietf.org/html/rfc7540#section-6.1
type Data struct {
	endStream  bool
	hasPadding bool
	b          []byte
}

func (data *Data) Type() FrameType { return FrameData }

func (data *Data) Reset() {
	data.endStream = false
	data.hasPadding = false
	data.b = data.b[:0]
}

// CopyTo copies data's fields to d.
func (data *Data) CopyTo(d *Data) {
	d.hasPadding = data.hasPadding
	d.endStream = data.endStream
	d.b = append(d.b[:0], data.b...)
}

func (data *Data) SetEndStream(value bool) { data.endStream = value }
func (data *Data) EndStream() bool         { return data.endStream }

// Data returns the frame's payload bytes.
func (data *Data) Data() []byte { return data.b }

// SetData replaces the frame's payload bytes.
func (data *Data) SetData(b []byte) { data.b = append(data.b[:0], b...) }

func (data *Data) Padding() bool         { return data.hasPadding }
func (data *Data) SetPadding(value bool) { data.hasPadding = value }
func (data *Data) Append(b []byte)       { data.b = append(data.b, b...) }
func (data *Data) Len() int              { return len(data.b) }

func (data *Data) Write(b []byte) (int, error) {
	data.Append(b)
	return len(b), nil
}

func (data *Data) Deserialize(fr *FrameHeader) error {
	payload := fr.payload

	if fr.Flags().Has(FlagPadded) {
		if len(payload) < 1 {
			return StreamError{StreamID: fr.Stream(), Code: ErrCodeProtocol, Err: ErrMissingBytes}
		}
		var err error
		payload, err = http2utils.CutPadding(payload, fr.Len())
		if err != nil {
			return ConnectionError{Code: ErrCodeProtocol, Err: err}
		}
	}

	data.endStream = fr.Flags().Has(FlagEndStream)
	data.b = append(data.b[:0], payload...)

	return nil
}

func (data *Data) Serialize(fr *FrameHeader) {
	if data.endStream {
		fr.SetFlags(fr.Flags().Add(FlagEndStream))
	}

	payload := data.b
	if data.hasPadding {
		fr.SetFlags(fr.Flags().Add(FlagPadded))
		payload = http2utils.AddPadding(payload)
	}

	fr.setPayload(payload)
}

package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var _ Frame = &WindowUpdate{}

// WindowUpdate adjusts the sender's flow-control window, either for a
// single stream (nonzero stream id) or the whole connection (stream id 0).
//
// https://tools.ietf.org/html/rfc7540#section-6.9
type WindowUpdate struct {
	increment uint32
}

func (wu *WindowUpdate) Type() FrameType { return FrameWindowUpdate }

func (wu *WindowUpdate) Reset() { wu.increment = 0 }

func (wu *WindowUpdate) CopyTo(w *WindowUpdate) { w.increment = wu.increment }

// Increment returns the window size increment.
func (wu *WindowUpdate) Increment() uint32 { return wu.increment }

// SetIncrement sets the window size increment. It must be in [1, 2^31-1];
// Serialize does not itself enforce this, matching the rest of this
// codec's split between wire encoding and protocol validation.
func (wu *WindowUpdate) SetIncrement(increment uint32) { wu.increment = increment & (1<<31 - 1) }

func (wu *WindowUpdate) Deserialize(fr *FrameHeader) error {
	if fr.Len() != 4 {
		return ConnectionError{Code: ErrCodeFrameSize, Err: ErrMissingBytes}
	}
	wu.increment = http2utils.BytesToUint32(fr.payload) & (1<<31 - 1)
	if wu.increment == 0 {
		if fr.Stream() == 0 {
			return ConnectionError{Code: ErrCodeProtocol, Err: hpackIntError("http2: window update increment of 0")}
		}
		return StreamError{StreamID: fr.Stream(), Code: ErrCodeProtocol, Err: hpackIntError("http2: window update increment of 0")}
	}
	return nil
}

func (wu *WindowUpdate) Serialize(fr *FrameHeader) {
	fr.setPayload(http2utils.AppendUint32Bytes(nil, wu.increment))
}

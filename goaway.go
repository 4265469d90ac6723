package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var _ Frame = &GoAway{}

// GoAway initiates connection shutdown, reporting the last stream the
// sender processed and why it's stopping.
//
// https://tools.ietf.org/html/rfc7540#section-6.8
type GoAway struct {
	lastStreamID uint32
	code         ErrorCode
	data         []byte
}

func (ga *GoAway) Type() FrameType { return FrameGoAway }

func (ga *GoAway) Reset() {
	ga.lastStreamID = 0
	ga.code = 0
	ga.data = ga.data[:0]
}

func (ga *GoAway) CopyTo(other *GoAway) {
	other.lastStreamID = ga.lastStreamID
	other.code = ga.code
	other.data = append(other.data[:0], ga.data...)
}

func (ga *GoAway) Code() ErrorCode        { return ga.code }
func (ga *GoAway) SetCode(code ErrorCode) { ga.code = code }

// LastStreamID returns the highest-numbered stream the sender may have
// acted on before deciding to close the connection.
func (ga *GoAway) LastStreamID() uint32 { return ga.lastStreamID }

// SetLastStreamID sets the highest-numbered processed stream.
func (ga *GoAway) SetLastStreamID(stream uint32) { ga.lastStreamID = stream & (1<<31 - 1) }

// Data returns the opaque additional debug data, if any.
func (ga *GoAway) Data() []byte { return ga.data }

// SetData sets the opaque additional debug data.
func (ga *GoAway) SetData(b []byte) { ga.data = append(ga.data[:0], b...) }

func (ga *GoAway) Deserialize(fr *FrameHeader) error {
	if fr.Len() < 8 {
		return ConnectionError{Code: ErrCodeFrameSize, Err: ErrMissingBytes}
	}
	ga.lastStreamID = http2utils.BytesToUint32(fr.payload) & (1<<31 - 1)
	ga.code = ErrorCode(http2utils.BytesToUint32(fr.payload[4:]))

	if rest := fr.payload[8:]; len(rest) != 0 {
		ga.data = append(ga.data[:0], rest...)
	} else {
		ga.data = ga.data[:0]
	}

	return nil
}

func (ga *GoAway) Serialize(fr *FrameHeader) {
	payload := http2utils.AppendUint32Bytes(nil, ga.lastStreamID)
	payload = http2utils.AppendUint32Bytes(payload, uint32(ga.code))
	payload = append(payload, ga.data...)
	fr.setPayload(payload)
}

package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var _ Frame = &RstStream{}

// RstStream immediately terminates a stream, carrying the reason as an
// ErrorCode.
//
// https://tools.ietf.org/html/rfc7540#section-6.4
type RstStream struct {
	code ErrorCode
}

func (rst *RstStream) Type() FrameType { return FrameResetStream }

func (rst *RstStream) Code() ErrorCode        { return rst.code }
func (rst *RstStream) SetCode(code ErrorCode) { rst.code = code }
func (rst *RstStream) Reset()                 { rst.code = 0 }

func (rst *RstStream) CopyTo(r *RstStream) { r.code = rst.code }

func (rst *RstStream) Deserialize(fr *FrameHeader) error {
	if fr.Len() != 4 {
		return ConnectionError{Code: ErrCodeFrameSize, Err: ErrMissingBytes}
	}
	rst.code = ErrorCode(http2utils.BytesToUint32(fr.payload))
	return nil
}

func (rst *RstStream) Serialize(fr *FrameHeader) {
	fr.setPayload(http2utils.AppendUint32Bytes(nil, uint32(rst.code)))
}

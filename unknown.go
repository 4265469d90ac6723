package http2

// UnknownFrame is the decoded form of any frame whose type octet isn't one
// of the ten types this package knows. RFC 7540 section 4.1 requires an
// implementation to ignore and discard frames of unknown type rather than
// treat them as a connection error, so the payload is preserved as opaque
// bytes instead of being rejected.
//
// https://tools.ietf.org/html/rfc7540#section-4.1
type UnknownFrame struct {
	rawType FrameType
	payload []byte
}

var _ Frame = &UnknownFrame{}

func (u *UnknownFrame) Type() FrameType { return u.rawType }

func (u *UnknownFrame) Reset() {
	u.rawType = 0
	u.payload = u.payload[:0]
}

// Payload returns the frame's raw, unparsed payload bytes.
func (u *UnknownFrame) Payload() []byte { return u.payload }

func (u *UnknownFrame) Deserialize(fr *FrameHeader) error {
	u.rawType = fr.Type()
	u.payload = append(u.payload[:0], fr.payload...)
	return nil
}

func (u *UnknownFrame) Serialize(fr *FrameHeader) {
	fr.setPayload(u.payload)
}

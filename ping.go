package http2

var _ Frame = &Ping{}

// Ping measures round-trip time and verifies connection liveness.
//
// https://tools.ietf.org/html/rfc7540#section-6.7
type Ping struct {
	ack  bool
	data [8]byte
}

func (ping *Ping) Type() FrameType { return FramePing }

func (ping *Ping) Reset() {
	ping.ack = false
	ping.data = [8]byte{}
}

func (ping *Ping) CopyTo(p *Ping) {
	p.ack = ping.ack
	p.data = ping.data
}

func (ping *Ping) Ack() bool        { return ping.ack }
func (ping *Ping) SetAck(ack bool)  { ping.ack = ack }
func (ping *Ping) Data() []byte     { return ping.data[:] }
func (ping *Ping) SetData(b []byte) { copy(ping.data[:], b) }

func (ping *Ping) Write(b []byte) (int, error) {
	ping.SetData(b)
	return len(b), nil
}

func (ping *Ping) Deserialize(frh *FrameHeader) error {
	if frh.Len() != 8 {
		return ConnectionError{Code: ErrCodeFrameSize, Err: ErrMissingBytes}
	}
	ping.ack = frh.Flags().Has(FlagAck)
	ping.SetData(frh.payload)
	return nil
}

func (ping *Ping) Serialize(fr *FrameHeader) {
	if ping.ack {
		fr.SetFlags(fr.Flags().Add(FlagAck))
	}
	fr.setPayload(ping.data[:])
}

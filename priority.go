package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

var _ Frame = &Priority{}

// Priority carries a stream's dependency and weight.
//
// https://tools.ietf.org/html/rfc7540#section-6.3
type Priority struct {
	streamDep uint32
	exclusive bool
	weight    byte
}

func (pry *Priority) Type() FrameType { return FramePriority }

func (pry *Priority) Reset() {
	pry.streamDep = 0
	pry.exclusive = false
	pry.weight = 0
}

func (pry *Priority) CopyTo(p *Priority) {
	p.streamDep = pry.streamDep
	p.exclusive = pry.exclusive
	p.weight = pry.weight
}

// StreamDep returns the stream this frame's stream depends on.
func (pry *Priority) StreamDep() uint32 { return pry.streamDep }

// SetStreamDep sets the dependency stream id.
func (pry *Priority) SetStreamDep(stream uint32) { pry.streamDep = stream & (1<<31 - 1) }

// Exclusive reports whether the dependency is exclusive.
func (pry *Priority) Exclusive() bool { return pry.exclusive }

// SetExclusive sets the dependency's exclusivity bit.
func (pry *Priority) SetExclusive(v bool) { pry.exclusive = v }

// Weight returns the stream's weight.
func (pry *Priority) Weight() byte { return pry.weight }

// SetWeight sets the stream's weight.
func (pry *Priority) SetWeight(w byte) { pry.weight = w }

func (pry *Priority) Deserialize(fr *FrameHeader) error {
	if fr.Len() != 5 {
		return StreamError{StreamID: fr.Stream(), Code: ErrCodeFrameSize, Err: ErrMissingBytes}
	}
	raw := http2utils.BytesToUint32(fr.payload)
	dep := raw & (1<<31 - 1)
	if dep == 0 {
		return StreamError{StreamID: fr.Stream(), Code: ErrCodeProtocol, Err: hpackIntError("http2: priority dependency on stream 0")}
	}
	pry.exclusive = raw&0x80000000 != 0
	pry.streamDep = dep
	pry.weight = fr.payload[4]

	return nil
}

func (pry *Priority) Serialize(fr *FrameHeader) {
	raw := pry.streamDep
	if pry.exclusive {
		raw |= 0x80000000
	}
	payload := http2utils.AppendUint32Bytes(fr.payload[:0], raw)
	payload = append(payload, pry.weight)
	fr.setPayload(payload)
}

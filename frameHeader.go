package http2

import (
	"bufio"
	"io"
	"sync"

	"github.com/go-h2/h2c/http2utils"
)

const (
	// DefaultFrameSize is the fixed 9-octet frame header size.
	// http://httpwg.org/specs/rfc7540.html#FrameHeader
	DefaultFrameSize = 9
	// defaultMaxLen is SETTINGS_MAX_FRAME_SIZE's default value.
	// https://httpwg.org/specs/rfc7540.html#SETTINGS_MAX_FRAME_SIZE
	defaultMaxLen = 1 << 14
)

var frameHeaderPool = sync.Pool{
	New: func() interface{} {
		return &FrameHeader{}
	},
}

// FrameHeader is the 9-octet frame header plus its associated payload and
// parsed Frame body.
//
// Use AcquireFrameHeader/ReleaseFrameHeader rather than constructing one
// directly; a FrameHeader must not be used from more than one goroutine
// concurrently.
//
// https://tools.ietf.org/html/rfc7540#section-4.1
type FrameHeader struct {
	length int        // 24 bits
	kind   FrameType  // 8 bits
	flags  FrameFlags // 8 bits
	stream uint32     // 31 bits

	maxLen uint32

	rawHeader [DefaultFrameSize]byte
	payload   []byte

	fr Frame
}

// AcquireFrameHeader gets a FrameHeader from the pool.
func AcquireFrameHeader() *FrameHeader {
	fr := frameHeaderPool.Get().(*FrameHeader)
	fr.Reset()
	return fr
}

// ReleaseFrameHeader releases fr's body and returns fr to the pool. fr
// itself is reset when AcquireFrameHeader hands it out again.
func ReleaseFrameHeader(fr *FrameHeader) {
	ReleaseFrame(fr.Body())
	frameHeaderPool.Put(fr)
}

// Reset clears all header state for reuse.
func (frh *FrameHeader) Reset() {
	frh.kind = 0
	frh.flags = 0
	frh.stream = 0
	frh.length = 0
	frh.maxLen = defaultMaxLen
	frh.fr = nil
	frh.payload = frh.payload[:0]
}

// Type returns the frame type.
func (frh *FrameHeader) Type() FrameType { return frh.kind }

// Flags returns the frame's flags.
func (frh *FrameHeader) Flags() FrameFlags { return frh.flags }

// SetFlags sets the frame's flags.
func (frh *FrameHeader) SetFlags(flags FrameFlags) { frh.flags = flags }

// Stream returns the frame's stream id (reserved bit already masked off).
func (frh *FrameHeader) Stream() uint32 { return frh.stream }

// SetStream sets the stream id.
func (frh *FrameHeader) SetStream(stream uint32) {
	frh.stream = stream & (1<<31 - 1)
}

// Len returns the payload length.
func (frh *FrameHeader) Len() int { return frh.length }

// MaxLen returns the negotiated maximum payload length (0 means unbounded).
func (frh *FrameHeader) MaxLen() uint32 { return frh.maxLen }

// SetMaxLen sets the negotiated maximum payload length, typically from
// this endpoint's SETTINGS_MAX_FRAME_SIZE.
func (frh *FrameHeader) SetMaxLen(max uint32) { frh.maxLen = max }

func (frh *FrameHeader) parseValues(header []byte) {
	frh.length = int(http2utils.BytesToUint24(header[:3]))
	frh.kind = FrameType(header[3])
	frh.flags = FrameFlags(header[4])
	frh.stream = http2utils.BytesToUint32(header[5:]) & (1<<31 - 1)
}

func (frh *FrameHeader) buildHeader(header []byte) {
	http2utils.Uint24ToBytes(header[:3], uint32(frh.length))
	header[3] = byte(frh.kind)
	header[4] = byte(frh.flags)
	http2utils.Uint32ToBytes(header[5:], frh.stream)
}

// ReadFrameFrom reads one frame from br using the default max frame size.
func ReadFrameFrom(br *bufio.Reader) (*FrameHeader, error) {
	return ReadFrameFromWithSize(br, defaultMaxLen)
}

// ReadFrameFromWithSize reads one frame from br, rejecting any frame whose
// declared length exceeds max (the negotiated SETTINGS_MAX_FRAME_SIZE).
func ReadFrameFromWithSize(br *bufio.Reader, max uint32) (*FrameHeader, error) {
	fr := AcquireFrameHeader()
	fr.maxLen = max

	_, err := fr.ReadFrom(br)
	if err != nil {
		ReleaseFrameHeader(fr)
		return nil, err
	}
	return fr, nil
}

// ReadFrom reads one frame (header plus payload) from br and dispatches it
// to the matching Frame body's Deserialize. Unlike io.ReaderFrom, it does
// not read until io.EOF.
func (frh *FrameHeader) ReadFrom(br *bufio.Reader) (int64, error) {
	header, err := br.Peek(DefaultFrameSize)
	if err != nil {
		return 0, err
	}
	br.Discard(DefaultFrameSize)

	rn := int64(DefaultFrameSize)

	frh.parseValues(header)
	if err := frh.checkLen(); err != nil {
		io.CopyN(io.Discard, br, int64(frh.length))
		return rn, err
	}

	if frh.kind > FrameContinuation {
		frh.fr = &UnknownFrame{rawType: frh.kind}
	} else {
		frh.fr = AcquireFrame(frh.kind)
	}

	if frh.length > 0 {
		frh.payload = http2utils.Resize(frh.payload, frh.length)
		n, err := io.ReadFull(br, frh.payload[:frh.length])
		rn += int64(n)
		if err != nil {
			return rn, err
		}
	}

	if frh.kind <= FrameContinuation {
		if err := frh.checkStreamID(); err != nil {
			return rn, err
		}
	}

	return rn, frh.fr.Deserialize(frh)
}

// WriteTo serializes the frame body into frh's payload and writes the
// resulting header+payload to w.
func (frh *FrameHeader) WriteTo(w *bufio.Writer) (wb int64, err error) {
	frh.fr.Serialize(frh)

	frh.length = len(frh.payload)
	frh.buildHeader(frh.rawHeader[:])

	n, err := w.Write(frh.rawHeader[:])
	if err != nil {
		return int64(n), err
	}
	wb += int64(n)

	n, err = w.Write(frh.payload)
	wb += int64(n)
	return wb, err
}

// Body returns the parsed frame payload.
func (frh *FrameHeader) Body() Frame { return frh.fr }

// SetBody attaches fr as this header's body, adopting its frame type.
func (frh *FrameHeader) SetBody(fr Frame) {
	if fr == nil {
		panic("http2: frame body cannot be nil")
	}
	frh.kind = fr.Type()
	frh.fr = fr
}

func (frh *FrameHeader) setPayload(payload []byte) {
	frh.payload = append(frh.payload[:0], payload...)
}

func (frh *FrameHeader) checkLen() error {
	if frh.maxLen != 0 && frh.length > int(frh.maxLen) {
		return ConnectionError{Code: ErrCodeFrameSize, Err: ErrPayloadExceeds}
	}
	return nil
}

// checkStreamID enforces RFC 7540 section 6's per-type stream-id-zero
// rules before the frame body is even parsed: SETTINGS, PING, and GOAWAY
// are connection-level and must carry stream id 0; every other defined
// type except WINDOW_UPDATE is stream-level and must not. WINDOW_UPDATE
// is valid on either a stream or the whole connection (stream id 0), so
// it's exempt from both branches here and carries no stream-id
// constraint of its own.
func (frh *FrameHeader) checkStreamID() error {
	if frh.kind == FrameWindowUpdate {
		return nil
	}
	connectionLevel := frh.kind == FrameSettings || frh.kind == FramePing || frh.kind == FrameGoAway
	if connectionLevel && frh.stream != 0 {
		return ConnectionError{Code: ErrCodeProtocol, Err: hpackIntError("http2: connection-level frame carries nonzero stream id")}
	}
	if !connectionLevel && frh.stream == 0 {
		return ConnectionError{Code: ErrCodeProtocol, Err: hpackIntError("http2: stream-level frame carries stream id 0")}
	}
	return nil
}

func (frh *FrameHeader) appendCheckingLen(dst, src []byte) (n int, err error) {
	n = len(src)
	if frh.maxLen > 0 && uint32(n+len(dst)) > frh.maxLen {
		return 0, ConnectionError{Code: ErrCodeFrameSize, Err: ErrPayloadExceeds}
	}
	frh.payload = append(dst, src...)
	frh.length = len(frh.payload)
	return
}

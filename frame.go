package http2

import "sync"

// FrameType is the 8-bit frame type field of a frame header, RFC 7540
// section 4.1.
type FrameType uint8

const (
	FrameData         FrameType = 0x0
	FrameHeaders      FrameType = 0x1
	FramePriority     FrameType = 0x2
	FrameResetStream  FrameType = 0x3
	FrameSettings     FrameType = 0x4
	FramePushPromise  FrameType = 0x5
	FramePing         FrameType = 0x6
	FrameGoAway       FrameType = 0x7
	FrameWindowUpdate FrameType = 0x8
	FrameContinuation FrameType = 0x9
)

// FrameFlags is the 8-bit flags field of a frame header. Its bit meaning
// is frame-type dependent; Has/Add are type-agnostic bit helpers.
type FrameFlags uint8

const (
	FlagAck        FrameFlags = 0x1
	FlagEndStream  FrameFlags = 0x1
	FlagEndHeaders FrameFlags = 0x4
	FlagPadded     FrameFlags = 0x8
	FlagPriority   FrameFlags = 0x20
)

// Has reports whether all bits of f2 are set in f.
func (f FrameFlags) Has(f2 FrameFlags) bool {
	return f&f2 == f2
}

// Add returns f with the bits of f2 set.
func (f FrameFlags) Add(f2 FrameFlags) FrameFlags {
	return f | f2
}

// Frame is implemented by each of the ten frame payload types. Deserialize
// populates the frame's fields from an already-length/stream-validated
// FrameHeader; Serialize writes the frame's payload (and any flags it
// implies) into fr ahead of wire transmission.
//
// The Type/Deserialize/Serialize shape is a pull-style codec interface:
// a caller owns the read/write loop and hands each frame's bytes to the
// matching implementation.
type Frame interface {
	Type() FrameType
	Deserialize(fr *FrameHeader) error
	Serialize(fr *FrameHeader)
}

var framePools = map[FrameType]*sync.Pool{
	FrameData:         {New: func() interface{} { return &Data{} }},
	FrameHeaders:      {New: func() interface{} { return &Headers{} }},
	FramePriority:     {New: func() interface{} { return &Priority{} }},
	FrameResetStream:  {New: func() interface{} { return &RstStream{} }},
	FrameSettings:     {New: func() interface{} { return &Settings{} }},
	FramePushPromise:  {New: func() interface{} { return &PushPromise{} }},
	FramePing:         {New: func() interface{} { return &Ping{} }},
	FrameGoAway:       {New: func() interface{} { return &GoAway{} }},
	FrameWindowUpdate: {New: func() interface{} { return &WindowUpdate{} }},
	FrameContinuation: {New: func() interface{} { return &Continuation{} }},
}

type resetter interface {
	Reset()
}

// AcquireFrame returns a pooled Frame of the given type. kind must be one
// of the ten defined FrameType constants; for any other kind it returns
// nil. FrameHeader.ReadFrom never calls it for an unknown type: it decodes
// those into an UnknownFrame instead.
func AcquireFrame(kind FrameType) Frame {
	pool, ok := framePools[kind]
	if !ok {
		return nil
	}
	fr := pool.Get().(Frame)
	fr.(resetter).Reset()
	return fr
}

// ReleaseFrame returns fr to its type's pool. It is a no-op for nil or a
// Frame type this library doesn't pool.
func ReleaseFrame(fr Frame) {
	if fr == nil {
		return
	}
	pool, ok := framePools[fr.Type()]
	if !ok {
		return
	}
	pool.Put(fr)
}

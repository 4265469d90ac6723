// Package http2utils holds small byte-order and buffer helpers shared by
// the frame codec.
package http2utils

import (
	"errors"
	"reflect"
	"unsafe"

	"github.com/valyala/fastrand"
)

// ErrPaddingOutOfRange is returned by CutPadding when the declared pad
// length doesn't fit within the payload, per RFC 7540 section 6.1's
// requirement that this be treated as PROTOCOL_ERROR rather than a panic.
var ErrPaddingOutOfRange = errors.New("http2: padding length exceeds frame payload")

func Uint24ToBytes(b []byte, n uint32) {
	_ = b[2]
	b[0] = byte(n >> 16)
	b[1] = byte(n >> 8)
	b[2] = byte(n)
}

func BytesToUint24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 |
		uint32(b[1])<<8 |
		uint32(b[2])
}

func AppendUint32Bytes(dst []byte, n uint32) []byte {
	dst = append(dst, byte(n>>24))
	dst = append(dst, byte(n>>16))
	dst = append(dst, byte(n>>8))
	dst = append(dst, byte(n))
	return dst
}

func Uint32ToBytes(b []byte, n uint32) {
	_ = b[3]
	b[0] = byte(n >> 24)
	b[1] = byte(n >> 16)
	b[2] = byte(n >> 8)
	b[3] = byte(n)
}

func BytesToUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 |
		uint32(b[1])<<16 |
		uint32(b[2])<<8 |
		uint32(b[3])
}

func EqualsFold(a, b []byte) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}

func Resize(b []byte, neededLen int) []byte {
	b = b[:cap(b)]
	if n := neededLen - len(b); n > 0 {
		b = append(b, make([]byte, n)...)
	}
	return b[:neededLen]
}

// CutPadding strips a PADDED frame's one-byte pad-length prefix and
// trailing pad bytes from payload, given the frame's declared total
// length. It returns ErrPaddingOutOfRange instead of panicking when the
// declared pad length doesn't fit, since this runs on attacker-controlled
// wire input and must surface as a protocol error, not crash the process.
func CutPadding(payload []byte, length int) ([]byte, error) {
	if len(payload) < 1 {
		return nil, ErrPaddingOutOfRange
	}
	pad := int(payload[0])
	if length-pad-1 < 0 || len(payload) < length-pad {
		return nil, ErrPaddingOutOfRange
	}
	return payload[1 : length-pad], nil
}

// AddPadding prepends a randomized pad-length byte and appends that many
// zero-valued pad bytes to b, returning the extended slice. The pad length
// is randomized to avoid a fixed, fingerprintable padding size; the pad
// bytes themselves are always zero rather than random, since HTTP/2
// padding carries no information and zero-fill avoids leaking
// uninitialized memory.
func AddPadding(b []byte) []byte {
	padLen := int(fastrand.Uint32n(256-9)) + 9
	out := make([]byte, 0, 1+len(b)+padLen)
	out = append(out, byte(padLen))
	out = append(out, b...)
	for i := 0; i < padLen; i++ {
		out = append(out, 0)
	}
	return out
}

func FastBytesToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

func FastStringToBytes(s string) []byte {
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	bh := reflect.SliceHeader{
		Data: sh.Data,
		Len:  sh.Len,
		Cap:  sh.Len,
	}
	return *(*[]byte)(unsafe.Pointer(&bh))
}

package http2

// HPACK's variable-length integer encoding per RFC 7541 section 5.1.
// Integers are always prefixed by a fixed-width field of N bits (4..7 in
// this library's usage), where N is chosen by the surrounding instruction
// format. If the value fits in the prefix, it's encoded directly;
// otherwise the prefix is set to all-ones and the remainder follows as a
// base-128 varint with a continuation bit.

// ErrIntegerOverflow is returned when a decoded integer would exceed the
// 32-bit range this library represents integers in.
var ErrIntegerOverflow = hpackIntError("http2: hpack integer overflow")

// ErrIntegerTruncated is returned when the input ends before a
// continuation sequence terminates.
var ErrIntegerTruncated = hpackIntError("http2: hpack integer truncated")

type hpackIntError string

func (e hpackIntError) Error() string { return string(e) }

// EncodeInteger appends the N-bit-prefixed encoding of v to dst.
// prefixBits (1..8) selects how many low-order bits of the first appended
// byte carry the value before continuation. flags holds any high bits
// (e.g. the indexing-type marker) to OR into that first byte; its low
// prefixBits bits are assumed zero.
func EncodeInteger(dst []byte, prefixBits uint, flags byte, v uint32) []byte {
	max := uint32(1)<<prefixBits - 1
	if v < max {
		return append(dst, flags|byte(v))
	}
	dst = append(dst, flags|byte(max))
	v -= max
	for v >= 128 {
		dst = append(dst, byte(v%128+128))
		v /= 128
	}
	return append(dst, byte(v))
}

// DecodeInteger decodes an N-bit-prefixed integer from the start of src.
// prefixBits selects how many low-order bits of src[0] carry the prefix
// value (the remaining high bits are the caller's flag bits, ignored
// here). It returns the decoded value and the number of bytes consumed.
func DecodeInteger(src []byte, prefixBits uint) (uint32, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrIntegerTruncated
	}
	max := uint32(1)<<prefixBits - 1
	v := uint32(src[0]) & max
	if v < max {
		return v, 1, nil
	}

	var m uint32
	for i := 1; ; i++ {
		if i >= len(src) {
			return 0, 0, ErrIntegerTruncated
		}
		b := src[i]
		inc := uint32(b&0x7f) << m
		if m >= 32 || inc > (1<<32-1)-v {
			return 0, 0, ErrIntegerOverflow
		}
		v += inc
		m += 7
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		if m > 35 {
			// RFC 7541 doesn't bound the number of continuation octets, but
			// a 32-bit result can't need more than 5 of them beyond the
			// prefix byte; anything longer is either malicious or
			// overflowing and is rejected either way by the check above,
			// this just avoids scanning arbitrarily long attacker input
			// first.
			return 0, 0, ErrIntegerOverflow
		}
	}
}

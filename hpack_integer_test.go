package http2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntegerRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 10, 126, 127, 128, 1337, 1 << 20, 1<<31 - 1}
	for _, prefixBits := range []uint{4, 5, 6, 7} {
		for _, v := range cases {
			dst := EncodeInteger(nil, prefixBits, 0, v)
			got, n, err := DecodeInteger(dst, prefixBits)
			require.NoError(t, err)
			require.Equal(t, len(dst), n)
			require.Equal(t, v, got)
		}
	}
}

func TestIntegerRFC7541Examples(t *testing.T) {
	// RFC 7541 section C.1.1: 10 encoded with a 5-bit prefix is 0x0a.
	dst := EncodeInteger(nil, 5, 0, 10)
	require.Equal(t, []byte{0x0a}, dst)

	// RFC 7541 section C.1.2: 1337 encoded with a 5-bit prefix is
	// 0x1f 0x9a 0x0a.
	dst = EncodeInteger(nil, 5, 0, 1337)
	require.Equal(t, []byte{0x1f, 0x9a, 0x0a}, dst)

	v, n, err := DecodeInteger([]byte{0x1f, 0x9a, 0x0a}, 5)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, uint32(1337), v)

	// RFC 7541 section C.1.3: 42 encoded with an 8-bit prefix is 0x2a.
	dst = EncodeInteger(nil, 8, 0, 42)
	require.Equal(t, []byte{0x2a}, dst)
}

func TestIntegerTruncated(t *testing.T) {
	_, _, err := DecodeInteger(nil, 5)
	require.ErrorIs(t, err, ErrIntegerTruncated)

	_, _, err = DecodeInteger([]byte{0x1f, 0x9a}, 5)
	require.ErrorIs(t, err, ErrIntegerTruncated)
}

func TestIntegerOverflow(t *testing.T) {
	// A pathologically long continuation sequence must not hang or wrap.
	huge := append([]byte{0x1f}, make([]byte, 10)...)
	for i := 1; i < len(huge); i++ {
		huge[i] = 0xff
	}
	huge[len(huge)-1] = 0x7f
	_, _, err := DecodeInteger(huge, 5)
	require.ErrorIs(t, err, ErrIntegerOverflow)
}

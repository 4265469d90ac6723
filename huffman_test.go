package http2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHuffmanRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"a",
		"www.example.com",
		"custom-key",
		"custom-header",
		"The quick brown fox jumps over the lazy dog.",
	}
	for _, s := range cases {
		enc := HuffmanEncode(nil, []byte(s))
		require.Equal(t, HuffmanEncodedLen([]byte(s)), len(enc))
		dec, err := HuffmanDecode(nil, enc)
		require.NoError(t, err)
		require.Equal(t, s, string(dec))
	}
}

func TestHuffmanRFC7541Example(t *testing.T) {
	// RFC 7541 Appendix C.4.1: "www.example.com" Huffman-encodes to this
	// 12-byte sequence.
	want := []byte{
		0xf1, 0xe3, 0xc2, 0xe5, 0xf2, 0x3a, 0x6b, 0xa0,
		0xab, 0x90, 0xf4, 0xff,
	}
	enc := HuffmanEncode(nil, []byte("www.example.com"))
	require.Equal(t, want, enc)

	dec, err := HuffmanDecode(nil, want)
	require.NoError(t, err)
	require.Equal(t, "www.example.com", string(dec))
}

func TestHuffmanEmbeddedEOSFails(t *testing.T) {
	// The EOS code is 30 bits of all ones (0x3fffffff); four 0xff bytes is
	// 32 one-bits, which contains the EOS code as a complete symbol.
	_, err := HuffmanDecode(nil, []byte{0xff, 0xff, 0xff, 0xff})
	require.ErrorIs(t, err, ErrHuffmanEOS)
}

func TestHuffmanPaddingTooLong(t *testing.T) {
	// 'a' is 5 bits (code 0x3, len 5), leaving 3 trailing all-one padding
	// bits, which is valid. Appending a further all-ones byte makes the
	// trailing run 11 bits, exceeding the 7-bit limit.
	enc := HuffmanEncode(nil, []byte("a"))
	bad := append(append([]byte{}, enc...), 0xff)
	_, err := HuffmanDecode(nil, bad)
	require.Error(t, err)
}

func TestHuffmanPaddingNotAllOnes(t *testing.T) {
	// Same "a" encoding, but flip the low padding bit to 0: the trailing
	// bits are no longer a prefix of EOS.
	enc := HuffmanEncode(nil, []byte("a"))
	corrupted := append([]byte{}, enc...)
	corrupted[len(corrupted)-1] &^= 0x01
	_, err := HuffmanDecode(nil, corrupted)
	require.ErrorIs(t, err, ErrHuffmanPadding)
}

package http2

// HPACK string literal codec, RFC 7541 section 5.2: a 7-bit-prefixed
// length integer whose high bit (the H flag) selects Huffman coding,
// followed by that many octets of either raw or Huffman-coded data.

// EncodeString appends the length-prefixed encoding of s to dst. huff
// selects whether to Huffman-code the value; the caller decides this
// (typically by comparing encoded sizes), matching the encoder's control
// over indexing mode at the instruction layer.
func EncodeString(dst []byte, s []byte, huff bool) []byte {
	if !huff {
		dst = EncodeInteger(dst, 7, 0x00, uint32(len(s)))
		return append(dst, s...)
	}
	encLen := HuffmanEncodedLen(s)
	dst = EncodeInteger(dst, 7, 0x80, uint32(encLen))
	return HuffmanEncode(dst, s)
}

// DecodeString decodes a length-prefixed string from the start of src,
// appending its materialized bytes to dst. It returns the extended slice
// and the number of input bytes consumed.
func DecodeString(dst []byte, src []byte) ([]byte, int, error) {
	length, n, err := DecodeInteger(src, 7)
	if err != nil {
		return nil, 0, err
	}
	huff := src[0]&0x80 != 0
	rest := src[n:]
	if uint64(length) > uint64(len(rest)) {
		return nil, 0, ErrIntegerTruncated
	}
	payload := rest[:length]
	consumed := n + int(length)

	if !huff {
		dst = append(dst, payload...)
		return dst, consumed, nil
	}
	dst, err = HuffmanDecode(dst, payload)
	if err != nil {
		return nil, 0, err
	}
	return dst, consumed, nil
}

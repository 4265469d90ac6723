package http2

import (
	"github.com/go-h2/h2c/http2utils"
)

// b2s and s2b are package-local, zero-allocation byte/string conversions
// wrapping http2utils.FastBytesToString/FastStringToBytes; callers outside
// this package use those http2utils functions directly. b2s is used by the
// HPACK decoder's literal decoding; s2b currently has no caller.
func b2s(b []byte) string { return http2utils.FastBytesToString(b) }
func s2b(s string) []byte { return http2utils.FastStringToBytes(s) }

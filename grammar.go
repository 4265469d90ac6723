package http2

// Core octet classifiers per RFC 5234 Appendix B.1 and RFC 7230 section
// 3.2.6. These are pure, branch-cheap predicates over a single octet: the
// grammar callers validate header names/values against before handing
// them to the HPACK encoder.
const (
	CR     byte = 0x0D
	LF     byte = 0x0A
	SP     byte = 0x20
	HTAB   byte = 0x09
	DQuote byte = 0x22
)

// CRLF is the two-octet line terminator.
var CRLF = [2]byte{CR, LF}

// IsAlpha reports whether octet is an ASCII letter.
func IsAlpha(octet byte) bool {
	return (octet >= 'A' && octet <= 'Z') || (octet >= 'a' && octet <= 'z')
}

// IsDigit reports whether octet is an ASCII decimal digit.
func IsDigit(octet byte) bool {
	return octet >= '0' && octet <= '9'
}

// IsHexdig reports whether octet is an ASCII hexadecimal digit.
func IsHexdig(octet byte) bool {
	return (octet >= 'A' && octet <= 'F') || (octet >= 'a' && octet <= 'f') || IsDigit(octet)
}

// IsCtl reports whether octet is a control character (< 32, or DEL).
func IsCtl(octet byte) bool {
	return octet < 32 || octet == 127
}

// IsVchar reports whether octet is a visible US-ASCII character.
func IsVchar(octet byte) bool {
	return octet > 32 && octet < 127
}

// tcharTable is a 256-entry lookup table for IsTchar, built once at package
// init instead of a long chain of comparisons: the HPACK/header validation
// path runs per octet of every header name, so a table lookup beats
// re-deriving the token-character set each call.
var tcharTable [256]bool

func init() {
	const extra = "!#$%&'*+-.^_`|~"
	for i := 0; i < len(extra); i++ {
		tcharTable[extra[i]] = true
	}
	for o := 0; o < 256; o++ {
		if IsAlpha(byte(o)) || IsDigit(byte(o)) {
			tcharTable[o] = true
		}
	}
}

// IsTchar reports whether octet is a token character per RFC 7230 section
// 3.2.6: any VCHAR except delimiters.
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*"
//	      / "+" / "-" / "." / "^" / "_" / "`" / "|" / "~"
//	      / DIGIT / ALPHA
func IsTchar(octet byte) bool {
	return tcharTable[octet]
}

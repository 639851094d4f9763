package word

import (
	"strings"

	"github.com/zostay/go-encword/internal/base64"
)

// EncodeB encodes b using the B encoding of RFC 2047, which is the base64 of
// RFC 2045. The output is always ceil(len(b)/3)*4 characters long.
func EncodeB(b []byte) string {
	var sb strings.Builder
	sb.Grow(bEncodedLength(b))

	idx := 0
	for ; idx+2 < len(b); idx += 3 {
		data := int(b[idx])<<16 | int(b[idx+1])<<8 | int(b[idx+2])
		sb.WriteByte(base64.StdAlphabet[data>>18&0x3f])
		sb.WriteByte(base64.StdAlphabet[data>>12&0x3f])
		sb.WriteByte(base64.StdAlphabet[data>>6&0x3f])
		sb.WriteByte(base64.StdAlphabet[data&0x3f])
	}

	switch len(b) - idx {
	case 2:
		data := int(b[idx])<<16 | int(b[idx+1])<<8
		sb.WriteByte(base64.StdAlphabet[data>>18&0x3f])
		sb.WriteByte(base64.StdAlphabet[data>>12&0x3f])
		sb.WriteByte(base64.StdAlphabet[data>>6&0x3f])
		sb.WriteByte(base64.Pad)
	case 1:
		data := int(b[idx]) << 16
		sb.WriteByte(base64.StdAlphabet[data>>18&0x3f])
		sb.WriteByte(base64.StdAlphabet[data>>12&0x3f])
		sb.WriteByte(base64.Pad)
		sb.WriteByte(base64.Pad)
	}

	return sb.String()
}

// EncodeQ encodes b using the Q encoding of RFC 2047. Space becomes
// underscore; bytes 128 and up, and the bytes the usage context marks for
// escaping, become an equals sign followed by two uppercase hex digits; the
// rest pass through as themselves.
func EncodeQ(b []byte, usage Usage) string {
	escape := usage.qEscape()

	var sb strings.Builder
	sb.Grow(qEncodedLength(b, usage))

	for _, v := range b {
		switch {
		case v == ' ':
			sb.WriteByte('_')
		case v >= 128 || escape[v]:
			sb.WriteByte('=')
			sb.WriteByte(hexDigit(v >> 4))
			sb.WriteByte(hexDigit(v & 0xf))
		default:
			sb.WriteByte(v)
		}
	}

	return sb.String()
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'A' + v - 10
}

// bEncodedLength is the length EncodeB will produce, without producing it.
func bEncodedLength(b []byte) int {
	return (len(b) + 2) / 3 * 4
}

// qEncodedLength is the length EncodeQ will produce, without producing it.
func qEncodedLength(b []byte, usage Usage) int {
	escape := usage.qEscape()

	n := 0
	for _, v := range b {
		if v != ' ' && (v >= 128 || escape[v]) {
			n += 3
		} else {
			n++
		}
	}
	return n
}

package word

import (
	"mime"
	"strings"

	"github.com/zostay/go-encword/header/charset"
)

// Decode decodes a single encoded-word back into unicode. The input must be
// exactly one =?charset?enc?body?= token.
func Decode(s string) (string, error) {
	return wordDecoder().Decode(s)
}

// DecodeHeader decodes every encoded-word found in a header field body,
// leaving surrounding plain text alone. Whitespace between two adjacent
// encoded-words is a fold point and is discarded, which makes DecodeHeader
// the inverse of Encode for split word sequences.
func DecodeHeader(s string) (string, error) {
	if !strings.Contains(s, "=?") {
		return s, nil
	}

	return wordDecoder().DecodeHeader(s)
}

func wordDecoder() *mime.WordDecoder {
	return &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}
}

package word

// Charset identifies the character set used to turn text into the bytes an
// encoded-word body carries. The empty string tells the encoder to detect
// one. Callers may pass any identifier the header/charset package can
// resolve, not just the three constants here.
type Charset string

const (
	// USASCII covers text made of code points 0-127.
	USASCII Charset = "US-ASCII"

	// ISO8859_1 covers text made of code points 0-255. ISO-8859-1 maps
	// those code points to identical byte values, which makes the
	// transcoding a direct one.
	ISO8859_1 Charset = "ISO-8859-1"

	// UTF8 covers everything else.
	UTF8 Charset = "UTF-8"
)

// DetectCharset picks the smallest of the three standard charsets able to
// represent text losslessly.
func DetectCharset(text string) Charset {
	ascii := true
	for _, c := range text {
		if c > 0xff {
			return UTF8
		}
		if c > 0x7f {
			ascii = false
		}
	}

	if ascii {
		return USASCII
	}
	return ISO8859_1
}

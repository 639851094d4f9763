// Package charset resolves charset identifiers to their canonical
// MIME-registered names and transcodes text between unicode and those
// charsets. The three charsets the encoded-word encoder picks on its own,
// US-ASCII, ISO-8859-1, and UTF-8, are handled directly and can never fail
// to resolve. Everything else goes through the IANA index provided by
// golang.org/x/text, which covers pretty much any character set likely to
// turn up in the wild wild world of email.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupportedCharset is returned when a charset identifier has no
// MIME-registered name or no known encoding.
var ErrUnsupportedCharset = errors.New("unsupported charset")

// sub is the ASCII substitution character, written in place of any rune the
// target charset cannot represent.
const sub = '\x1a'

// MIMEName resolves a charset identifier to its canonical MIME-registered
// name, the form that belongs inside an encoded-word. Identifiers with no
// MIME registration result in ErrUnsupportedCharset.
func MIMEName(name string) (string, error) {
	switch strings.ToLower(name) {
	case "us-ascii", "ascii":
		return "US-ASCII", nil
	case "iso-8859-1", "latin1":
		return "ISO-8859-1", nil
	case "utf-8", "utf8":
		return "UTF-8", nil
	}

	e, err := ianaindex.MIME.Encoding(name)
	if err != nil || e == nil {
		return "", fmt.Errorf("%w %q", ErrUnsupportedCharset, name)
	}

	mn, err := ianaindex.MIME.Name(e)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrUnsupportedCharset, name)
	}

	return mn, nil
}

// Encode transcodes s into the bytes of the named charset.
//
// US-ASCII and ISO-8859-1 map code points directly to identical byte values,
// 0-127 and 0-255 respectively, so those transcodings are performed here
// byte for byte; any rune out of range is replaced with the ASCII
// substitution character. UTF-8 is returned as-is. Any other charset is
// transcoded through its IANA-registered encoder and an unknown charset
// results in ErrUnsupportedCharset.
func Encode(name, s string) ([]byte, error) {
	switch strings.ToLower(name) {
	case "us-ascii", "ascii":
		var buf bytes.Buffer
		buf.Grow(len(s))
		for _, c := range s {
			if c > unicode.MaxASCII {
				c = sub
			}
			buf.WriteByte(byte(c))
		}
		return buf.Bytes(), nil
	case "iso-8859-1", "latin1":
		var buf bytes.Buffer
		buf.Grow(len(s))
		for _, c := range s {
			if c > 0xff {
				c = sub
			}
			buf.WriteByte(byte(c))
		}
		return buf.Bytes(), nil
	case "utf-8", "utf8":
		return []byte(s), nil
	}

	e, err := ianaindex.MIME.Encoding(name)
	if err != nil || e == nil {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedCharset, name)
	}

	es, err := e.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}

	return []byte(es), nil
}

// Decode transcodes bytes in the named charset back into unicode. Bytes that
// are invalid for the source charset come through as
// unicode.ReplacementChar. An unknown charset results in
// ErrUnsupportedCharset.
func Decode(name string, b []byte) (string, error) {
	switch strings.ToLower(name) {
	case "us-ascii", "ascii":
		var s strings.Builder
		s.Grow(len(b))
		for _, c := range b {
			if c > unicode.MaxASCII {
				s.WriteRune(unicode.ReplacementChar)
			} else {
				s.WriteByte(c)
			}
		}
		return s.String(), nil
	case "iso-8859-1", "latin1":
		var s strings.Builder
		s.Grow(len(b))
		for _, c := range b {
			s.WriteRune(rune(c))
		}
		return s.String(), nil
	case "utf-8", "utf8":
		var s strings.Builder
		s.Grow(len(b))
		for len(b) > 0 {
			r, size := utf8.DecodeRune(b)
			s.WriteRune(r)
			b = b[size:]
		}
		return s.String(), nil
	}

	e, err := ianaindex.MIME.Encoding(name)
	if err != nil || e == nil {
		return "", fmt.Errorf("%w %q", ErrUnsupportedCharset, name)
	}

	eb, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(eb), nil
}

// Reader adapts Decode to the interface expected by
// mime.WordDecoder.CharsetReader.
func Reader(name string, r io.Reader) (io.Reader, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s, err := Decode(name, b)
	if err != nil {
		return nil, err
	}

	return strings.NewReader(s), nil
}

package word

import (
	"github.com/zostay/go-encword/header/charset"
)

type options struct {
	charset  Charset
	encoding Encoding
}

// Option adjusts how Encode does its work.
type Option func(*options)

// WithCharset makes Encode transcode the text with the given charset rather
// than detecting one. The charset must have a MIME-registered name or Encode
// will fail with charset.ErrUnsupportedCharset.
func WithCharset(cs Charset) Option {
	return func(o *options) { o.charset = cs }
}

// WithEncoding makes Encode use the given body encoding rather than picking
// whichever produces the shorter result.
func WithEncoding(e Encoding) Option {
	return func(o *options) { o.encoding = e }
}

// EncodeIfNeeded returns text unchanged when NeedsEncoding says it can
// travel in a header as-is, and the result of Encode otherwise. used is the
// number of characters already consumed on the current header line; it must
// be between 0 and 50.
func EncodeIfNeeded(text string, usage Usage, used int) (string, error) {
	needed, err := NeedsEncoding(text, used)
	if err != nil {
		return "", err
	}

	if !needed {
		return text, nil
	}

	return Encode(text, usage, used)
}

// Encode encodes text into an encoded-word, or into a sequence of
// encoded-words joined by single spaces when the text does not fit in one.
// Each word emitted is at most 75 characters long and the first is further
// shortened by used, the number of characters already consumed on the
// current header line, which must be between 0 and 50.
//
// Unless overridden with WithCharset and WithEncoding, the charset is the
// smallest of US-ASCII, ISO-8859-1, and UTF-8 that represents the text, and
// the body encoding is whichever of B and Q encodes the text more compactly.
// Detected charsets always resolve; a caller-supplied charset with no
// MIME-registered name fails with charset.ErrUnsupportedCharset.
func Encode(text string, usage Usage, used int, opts ...Option) (string, error) {
	if used < 0 || used > maxUsedCharacters {
		return "", ErrUsedCharacters
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cs := o.charset
	if cs == "" {
		cs = DetectCharset(text)
	}

	mimeName, err := charset.MIMEName(string(cs))
	if err != nil {
		return "", err
	}

	b, err := charset.Encode(string(cs), text)
	if err != nil {
		return "", err
	}

	scheme := o.encoding
	if scheme != B && scheme != Q {
		scheme = DetectEncoding(b, usage)
	}

	prefix := wordPrefix + mimeName + "?" + scheme.String() + "?"

	return buildWords(prefix, text, scheme, usage, used, cs, b)
}

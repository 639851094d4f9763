// Package base64 holds the base64 alphabet shared by every base64 producer
// in this module and a streaming, line-wrapped encoder built on top of it.
// The encoded-word B encoding in header/word indexes StdAlphabet directly;
// this package wraps the same table in an encoding/base64 Encoding for
// streaming use.
package base64

import (
	"encoding/base64"
	"io"
)

// StdAlphabet is the 64-entry value-to-character table from RFC 2045. Both
// the streaming encoder here and the encoded-word B encoding draw from this
// table, so the two can never disagree about the alphabet.
const StdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Pad is the character used to fill out the final 4-character group when the
// input length is not a multiple of 3.
const Pad = '='

const defaultLineLength = 76

var defaultLineBreak = []byte{'\r', '\n'}

// Encoding is the encoding/base64 form of StdAlphabet with standard padding.
var Encoding = base64.NewEncoding(StdAlphabet)

// lineWriter inserts a line break into the stream every time a fixed number
// of bytes have been written since the last break.
type lineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (lw *lineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b)+lw.acc > lw.every {
		take := lw.every - lw.acc
		ln, err := lw.w.Write(b[:take])
		n += ln
		if err != nil {
			return n, err
		}

		if _, err := lw.w.Write(lw.lbr); err != nil {
			return n, err
		}

		b = b[take:]
		lw.acc = 0
	}

	ln, err := lw.w.Write(b)
	n += ln
	if err != nil {
		return n, err
	}

	lw.acc += ln

	return n, nil
}

func (lw *lineWriter) Close() error {
	_, err := lw.w.Write(lw.lbr)
	if err != nil {
		return err
	}

	if c, isCloser := lw.w.(io.Closer); isCloser {
		return c.Close()
	}

	return nil
}

// encoder ties the base64 stream encoder to the line writer beneath it so
// that closing the one flushes the other.
type encoder struct {
	io.WriteCloser
	lw *lineWriter
}

func (e *encoder) Close() error {
	if err := e.WriteCloser.Close(); err != nil {
		return err
	}
	return e.lw.Close()
}

// NewEncoder returns an io.WriteCloser that base64-encodes everything
// written to it and writes the encoded form to w in lines of 76 characters.
// The returned writer must be closed to flush the final partial group and
// the final line break.
func NewEncoder(w io.Writer) io.WriteCloser {
	lw := &lineWriter{
		every: defaultLineLength,
		lbr:   defaultLineBreak,
		w:     w,
	}
	return &encoder{base64.NewEncoder(Encoding, lw), lw}
}

// NewDecoder returns an io.Reader that reads base64 from r and yields the
// decoded bytes. Line breaks in the input are ignored.
func NewDecoder(r io.Reader) io.Reader {
	return base64.NewDecoder(Encoding, r)
}

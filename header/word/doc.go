// Package word produces and consumes the RFC 2047 encoded-words that carry
// non-ASCII text through email header fields.
//
// The usual entry point is EncodeIfNeeded, which leaves plain printable
// ASCII alone and otherwise rewrites the text as one or more encoded-words:
//
//	s, err := word.EncodeIfNeeded("Héllo", word.WordEntity, 0)
//	// s == "=?ISO-8859-1?Q?H=E9llo?="
//
// Encode always encodes. By default it picks the smallest charset able to
// represent the text (US-ASCII, ISO-8859-1, or UTF-8) and whichever of the B
// and Q body encodings produces the shorter result; WithCharset and
// WithEncoding override those choices. Text whose single encoded-word would
// exceed the 75-character limit imposed by RFC 2047 is split into a sequence
// of words joined by single spaces, which a decoder treats as fold points
// rather than content.
//
// Every encoder here takes a count of characters already used up on the
// current header line, so that the first word it emits still fits on that
// line. What this package does not do is decide where in a header the words
// belong or fold the line around them.
package word

// Package encword implements the encoded-word encoding defined by RFC 2047,
// which is how arbitrary unicode text gets carried inside email header
// fields. Header fields are limited to printable 7-bit ASCII and to lines of
// bounded length, so anything outside that range has to be wrapped up in one
// or more tokens of the form:
//
//	=?charset?B|Q?body?=
//
// The interesting work lives in the subpackages. The header/word package
// decides whether a given piece of text needs encoding at all, picks the
// smallest charset that can represent it, picks between the B (base64) and Q
// (quoted-printable-like) body encodings based on which one will come out
// shorter, and splits text that will not fit in a single 75-character
// encoded-word into a sequence of words joined by folding whitespace. It also
// provides decoding of encoded-words back to unicode by way of the standard
// library mime package.
//
// The header/word package deliberately does not decide where in a header an
// encoded-word belongs and it does not fold the surrounding header line. The
// caller tells it how many characters of the current line are already spoken
// for and gets back words that are guaranteed to fit, but placement and
// folding belong to whatever is assembling the header.
//
// The header/charset package resolves charset identifiers to their canonical
// MIME-registered names and transcodes unicode text into those charsets. The
// three charsets the encoder selects on its own (US-ASCII, ISO-8859-1, and
// UTF-8) are handled directly; everything else is resolved through the IANA
// index provided by golang.org/x/text.
//
// The internal/base64 package holds the base64 alphabet shared between the
// encoded-word B encoding and the streaming base64 encoder used for
// transfer-encoding larger content.
package encword

package word

import (
	"errors"
	"strings"
)

const (
	wordPrefix = "=?"
	wordSuffix = "?="

	// maxWordLength is the longest a single encoded-word may be, per RFC
	// 2047, counting the charset/encoding prefix and the ?= suffix.
	maxWordLength = 75

	// maxUsedCharacters caps how much of the current header line a caller
	// may claim to have consumed already.
	maxUsedCharacters = 50
)

// ErrUsedCharacters is returned when the used character count handed to an
// encoder is negative or greater than 50.
var ErrUsedCharacters = errors.New("used character count must be between 0 and 50")

// Encoding selects one of the two body encodings defined by RFC 2047. The
// zero value tells the encoder to choose for itself.
type Encoding int

const (
	// B is the B encoding, identical to the base64 of RFC 2045.
	B Encoding = iota + 1

	// Q is the Q encoding, similar to the quoted-printable of RFC 2045 but
	// with space written as underscore.
	Q
)

// String returns the single-letter name that appears in the encoded-word,
// or the empty string for the automatic zero value.
func (e Encoding) String() string {
	switch e {
	case B:
		return "B"
	case Q:
		return "Q"
	}
	return ""
}

// Usage indicates what kind of header token an encoded-word is standing in
// for. It decides which ASCII punctuation the Q encoding must escape.
type Usage int

const (
	// TextToken means the encoded-word replaces free text, as in a Subject
	// or Comments field.
	TextToken Usage = iota

	// WordEntity means the encoded-word replaces a word inside a phrase,
	// such as a display name before an address in From or To. The specials
	// of RFC 2822 must be escaped in that position.
	WordEntity
)

var (
	qEscapeText   = makeQEscapeTable("=_?")
	qEscapePhrase = makeQEscapeTable("=_?\"#$%&'(),.:;<>@[\\]^`{|}~")
)

// makeQEscapeTable marks every byte the Q encoding must escape: the
// controls, DEL, and the given specials. Bytes 128 and up always need
// escaping and are handled in the encoders rather than here.
func makeQEscapeTable(specials string) (t [128]bool) {
	for i := range t {
		t[i] = i < 32 || i == 127 || strings.ContainsRune(specials, rune(i))
	}
	return
}

func (u Usage) qEscape() *[128]bool {
	if u == WordEntity {
		return &qEscapePhrase
	}
	return &qEscapeText
}

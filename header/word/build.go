package word

import (
	"unicode/utf8"

	"github.com/zostay/go-encword/header/charset"
)

// buildWords wraps the encoded form of text in the encoded-word envelope.
// When a single word would exceed the 75-character limit, less whatever the
// caller has already used on the current line, the text is split at its rune
// midpoint, each half is re-transcoded and built independently, and the
// results are joined with a single space. The space is a fold point: a
// decoder discards it when the words on either side are both encoded-words.
// Only the first word counts used against its length, since every later word
// starts a fresh line once the header is folded.
//
// Splitting by rune index means a split can never land inside a multi-byte
// character, so each half remains well-formed text for the charset to
// transcode. A text of fewer than two runes cannot be split and is emitted
// as a single word even in the pathological case where charset expansion
// pushes that word past the limit.
func buildWords(prefix, text string, scheme Encoding, usage Usage, used int, cs Charset, b []byte) (string, error) {
	var bodyLen int
	if scheme == B {
		bodyLen = bEncodedLength(b)
	} else {
		bodyLen = qEncodedLength(b, usage)
	}

	fits := len(prefix)+bodyLen+len(wordSuffix) <= maxWordLength-used
	if fits || utf8.RuneCountInString(text) < 2 {
		var body string
		if scheme == B {
			body = EncodeB(b)
		} else {
			body = EncodeQ(b, usage)
		}
		return prefix + body + wordSuffix, nil
	}

	runes := []rune(text)
	mid := len(runes) / 2
	head, tail := string(runes[:mid]), string(runes[mid:])

	headBytes, err := charset.Encode(string(cs), head)
	if err != nil {
		return "", err
	}

	headWord, err := buildWords(prefix, head, scheme, usage, used, cs, headBytes)
	if err != nil {
		return "", err
	}

	tailBytes, err := charset.Encode(string(cs), tail)
	if err != nil {
		return "", err
	}

	tailWord, err := buildWords(prefix, tail, scheme, usage, 0, cs, tailBytes)
	if err != nil {
		return "", err
	}

	return headWord + " " + tailWord, nil
}

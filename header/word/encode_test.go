package word_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-encword/header/charset"
	"github.com/zostay/go-encword/header/word"
)

func TestEncodeIfNeeded(t *testing.T) {
	t.Parallel()

	s, err := word.EncodeIfNeeded("Hello World", word.TextToken, 0)
	assert.NoError(t, err)
	assert.Equal(t, "Hello World", s)

	s, err = word.EncodeIfNeeded("Héllo", word.WordEntity, 0)
	assert.NoError(t, err)
	assert.Equal(t, "=?ISO-8859-1?Q?H=E9llo?=", s)

	_, err = word.EncodeIfNeeded("Hello", word.TextToken, 51)
	assert.ErrorIs(t, err, word.ErrUsedCharacters)
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("latin-1 Q", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("Héllo", word.WordEntity, 0)
		assert.NoError(t, err)
		assert.Equal(t, "=?ISO-8859-1?Q?H=E9llo?=", s)
	})

	t.Run("ascii stays ascii", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("Hello World", word.TextToken, 0)
		assert.NoError(t, err)
		assert.Equal(t, "=?US-ASCII?Q?Hello_World?=", s)
	})

	t.Run("mostly high bytes pick B", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("éèê", word.TextToken, 0)
		assert.NoError(t, err)
		assert.Equal(t, "=?ISO-8859-1?B?6ejq?=", s)
	})

	t.Run("wide runes pick utf-8", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("世界", word.TextToken, 0)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(s, "=?UTF-8?B?"))

		dec, err := word.Decode(s)
		require.NoError(t, err)
		assert.Equal(t, "世界", dec)
	})

	t.Run("empty text yields empty body", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("", word.TextToken, 0)
		assert.NoError(t, err)
		assert.Equal(t, "=?US-ASCII?Q??=", s)
	})

	t.Run("used out of range", func(t *testing.T) {
		t.Parallel()
		_, err := word.Encode("Hello", word.TextToken, -1)
		assert.ErrorIs(t, err, word.ErrUsedCharacters)
	})
}

func TestEncodeOptions(t *testing.T) {
	t.Parallel()

	t.Run("forced encoding", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("Héllo", word.WordEntity, 0, word.WithEncoding(word.B))
		assert.NoError(t, err)
		assert.Equal(t, "=?ISO-8859-1?B?SOlsbG8=?=", s)
	})

	t.Run("forced charset", func(t *testing.T) {
		t.Parallel()
		s, err := word.Encode("Hello", word.TextToken, 0, word.WithCharset(word.UTF8))
		assert.NoError(t, err)
		assert.Equal(t, "=?UTF-8?Q?Hello?=", s)
	})

	t.Run("unmappable charset", func(t *testing.T) {
		t.Parallel()
		_, err := word.Encode("Hello", word.TextToken, 0,
			word.WithCharset("no-such-charset"))
		assert.ErrorIs(t, err, charset.ErrUnsupportedCharset)
	})
}

// checkWords asserts the RFC 2047 length limits over a (possibly split)
// Encode result and returns the individual words.
func checkWords(t *testing.T, s string, used int) []string {
	t.Helper()

	words := strings.Split(s, " ")
	for i, w := range words {
		assert.True(t, strings.HasPrefix(w, "=?"), "word %d prefix", i)
		assert.True(t, strings.HasSuffix(w, "?="), "word %d suffix", i)
		assert.LessOrEqual(t, len(w), 75, "word %d length", i)
	}
	assert.LessOrEqual(t, len(words[0]), 75-used, "first word budget")

	return words
}

func TestEncodeSplitsLongText(t *testing.T) {
	t.Parallel()

	t.Run("long ascii", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("a", 100)
		s, err := word.Encode(text, word.TextToken, 0)
		require.NoError(t, err)

		words := checkWords(t, s, 0)
		assert.Greater(t, len(words), 1)

		dec, err := word.DecodeHeader(s)
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	})

	t.Run("long latin-1", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("é", 60)
		s, err := word.Encode(text, word.TextToken, 0)
		require.NoError(t, err)

		words := checkWords(t, s, 0)
		assert.Greater(t, len(words), 1)

		dec, err := word.DecodeHeader(s)
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	})

	t.Run("first word honors used", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("x", 90)
		s, err := word.Encode(text, word.TextToken, 50)
		require.NoError(t, err)

		checkWords(t, s, 50)

		dec, err := word.DecodeHeader(s)
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	})

	t.Run("split lands on rune boundaries", func(t *testing.T) {
		t.Parallel()

		// every character is 4 bytes in utf-8; a byte-midpoint split
		// would shear one apart
		text := strings.Repeat("\U0001f642", 31)
		s, err := word.Encode(text, word.TextToken, 0)
		require.NoError(t, err)

		words := checkWords(t, s, 0)
		assert.Greater(t, len(words), 1)

		dec, err := word.DecodeHeader(s)
		require.NoError(t, err)
		assert.Equal(t, text, dec)
	})

	t.Run("single word result keeps no space", func(t *testing.T) {
		t.Parallel()

		s, err := word.Encode("short", word.TextToken, 0)
		require.NoError(t, err)
		assert.NotContains(t, s, " ")
	})
}

package word

// NeedsEncoding reports whether text must be turned into encoded-words
// before it can appear in a header. That is the case when the text contains
// any character outside printable ASCII, or when it contains a run of
// non-whitespace characters too long for the header to be folded into lines
// of 78 characters or fewer. used is the number of characters already
// consumed on the current header line and counts against the first run; it
// must be between 0 and 50.
func NeedsEncoding(text string, used int) (bool, error) {
	if used < 0 || used > maxUsedCharacters {
		return false, ErrUsedCharacters
	}

	nonWhitespace := used
	for _, c := range text {
		if c == '\t' || c == ' ' {
			nonWhitespace = 0
			continue
		}

		nonWhitespace++
		if nonWhitespace > 78 {
			// no fold point in reach, only encoding can shorten the line
			return true, nil
		}

		if c < 32 || c >= 127 {
			return true, nil
		}
	}

	return false, nil
}

package word

// DetectEncoding picks the body encoding likely to produce the shorter
// encoded-word for the given transcoded bytes. Base64 expands every 3 bytes
// to 4 characters no matter what they are, while the Q encoding spends 3
// characters on each escaped byte and 1 on the rest, so B wins once more
// than 30 percent of the bytes would need a Q escape. Empty input gets Q.
func DetectEncoding(b []byte, usage Usage) Encoding {
	if len(b) == 0 {
		return Q
	}

	escape := usage.qEscape()

	escaped := 0
	for _, v := range b {
		if v >= 128 || escape[v] {
			escaped++
		}
	}

	if escaped*100/len(b) > 30 {
		return B
	}
	return Q
}

package porter

// endsWith reports whether word[:length] ends with suffix. The comparison
// is case-sensitive; the word is expected to be upper-cased already.
func endsWith(word []byte, length int, suffix string) bool {
	if length < len(suffix) {
		return false
	}
	return string(word[length-len(suffix):length]) == suffix
}

func (b *Buffer) endsWith(suffix string) bool {
	return endsWith(b.letters[:], b.length, suffix)
}

package porter

import "github.com/baditaflorin/go_porter_stemmer/internal/core/domain"

// classify returns whether the letter at pos is a vowel or a consonant.
// Y counts as a consonant at the start of a word or right after A, E, I, O
// or U, and as a vowel anywhere else. The word must already be upper-cased
// up to pos.
func classify(word []byte, pos int) domain.Class {
	switch word[pos] {
	case 'A', 'E', 'I', 'O', 'U':
		return domain.Vowel
	case 'Y':
		if pos == 0 || isVowelLetter(word[pos-1]) {
			return domain.Consonant
		}
		return domain.Vowel
	}
	return domain.Consonant
}

func isVowelLetter(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

package porter

import "github.com/baditaflorin/go_porter_stemmer/internal/core/domain"

// measure upper-cases the whole word and records flags for every position.
// It returns the measure of the complete word.
func (b *Buffer) measure() int {
	return b.remeasure(0)
}

// remeasure rescans the word from start to the end, carrying forward the
// state recorded at start-1. Positions before start are neither read nor
// written, so it must be called with the first offset whose letter changed.
func (b *Buffer) remeasure(start int) int {
	word := b.letters[:b.length]

	m := 0
	prev := domain.Consonant
	hasVowel := false
	if start > 0 {
		carried := b.flags[start-1]
		m = int(carried.Measure)
		hasVowel = carried.HasVowel
		prev = classify(word, start-1)
	}

	for i := start; i < len(word); i++ {
		word[i] = toUpper(word[i])
		cur := classify(word, i)

		if prev == domain.Vowel && cur == domain.Consonant {
			m++
		}
		if cur == domain.Vowel {
			hasVowel = true
		}

		flags := domain.Flags{Measure: uint8(m), HasVowel: hasVowel}
		if cur == domain.Consonant {
			if prev == domain.Consonant && i > 0 && word[i] == word[i-1] {
				flags.EndsDoubleConsonant = true
			} else if i >= 2 && prev == domain.Vowel &&
				word[i] != 'W' && word[i] != 'X' && word[i] != 'Y' &&
				classify(word, i-2) == domain.Consonant {
				flags.EndsCVC = true
			}
		}
		b.flags[i] = flags

		prev = cur
	}

	return m
}

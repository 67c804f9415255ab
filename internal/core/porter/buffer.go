package porter

import "github.com/baditaflorin/go_porter_stemmer/internal/core/domain"

// Buffer holds a word while it is being stemmed together with the flag map
// computed for it. One extra slot is reserved for the "E" that step 1b may
// append. A Buffer is owned by a single call and must not be shared.
type Buffer struct {
	letters [domain.MaxWordLength + 1]byte
	flags   [domain.MaxWordLength + 1]domain.Flags
	length  int
}

// Load copies word into the buffer. It fails with domain.ErrInvalidLength
// when word is empty or longer than domain.MaxWordLength, leaving the buffer
// as it was.
func (b *Buffer) Load(word []byte) error {
	if len(word) < 1 || len(word) > domain.MaxWordLength {
		return domain.ErrInvalidLength
	}
	b.length = copy(b.letters[:], word)
	return nil
}

// Len returns the current length of the word.
func (b *Buffer) Len() int {
	return b.length
}

// Bytes returns the current content of the word. The slice aliases the
// buffer and is only valid until the next modification.
func (b *Buffer) Bytes() []byte {
	return b.letters[:b.length]
}

// Flags returns the flag map for the current word.
func (b *Buffer) Flags() []domain.Flags {
	return b.flags[:b.length]
}

// measureAt returns the measure recorded at pos, or 0 for positions before
// the start of the word.
func (b *Buffer) measureAt(pos int) int {
	if pos < 0 {
		return 0
	}
	return int(b.flags[pos].Measure)
}

// hasVowelAt reports the vowel flag recorded at pos, false before the start of the word.
func (b *Buffer) hasVowelAt(pos int) bool {
	if pos < 0 {
		return false
	}
	return b.flags[pos].HasVowel
}

func (b *Buffer) last() byte {
	return b.letters[b.length-1]
}

// truncate drops n letters from the end. Flags of the remaining positions
// stay valid because they only depend on the letters before them.
func (b *Buffer) truncate(n int) {
	b.length -= n
}

// appendLetter grows the word by one letter. Callers re-measure afterwards.
func (b *Buffer) appendLetter(c byte) {
	b.letters[b.length] = c
	b.length++
}

// Package porterstemmer reduces English words to their stems with the Porter
// suffix-stripping algorithm.
//
// The functions here use the native engine directly and never log. Use
// pkg/stemmer for engine selection, logging, lower-case output and warm-up.
package porterstemmer

import (
	"github.com/baditaflorin/go_porter_stemmer/internal/core/domain"
	"github.com/baditaflorin/go_porter_stemmer/internal/core/porter"
)

// MaxWordLength is the longest word accepted, in bytes.
const MaxWordLength = domain.MaxWordLength

// ErrInvalidLength is returned for empty words and words longer than MaxWordLength.
var ErrInvalidLength = domain.ErrInvalidLength

// Stem reduces word to its upper-case stem, writing into word's backing
// array when its capacity allows. Invalid words are returned unchanged.
func Stem(word []byte) ([]byte, error) {
	return porter.Stem(word)
}

// StemString returns the stem of word, or word itself if it cannot be stemmed.
func StemString(word string) string {
	stem, err := porter.StemString(word)
	if err != nil {
		return word
	}
	return stem
}

// StemWords stems every word of words in place and returns it.
func StemWords(words []string) []string {
	for i, w := range words {
		words[i] = StemString(w)
	}
	return words
}

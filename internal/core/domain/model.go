package domain

import "errors"

// MaxWordLength is the longest word the engine accepts. The measure is
// stored in five bits, so longer words cannot be represented.
const MaxWordLength = 31

// MaxMeasure is the largest measure a Flags value can hold.
const MaxMeasure = 31

// ErrInvalidLength is returned when a word is empty or longer than MaxWordLength.
var ErrInvalidLength = errors.New("word length must be between 1 and 31")

// Class is the vowel/consonant classification of a letter.
type Class byte

const (
	// Consonant is any letter that is not a vowel, including non-letters.
	Consonant Class = 'C'
	// Vowel is A, E, I, O, U, or a Y in vowel position.
	Vowel Class = 'V'
)

// Flags holds what the measure scan recorded for the prefix ending at one position.
type Flags struct {
	// Measure is the number of vowel-to-consonant transitions seen so far (0-31).
	Measure uint8
	// HasVowel reports whether any vowel appears in the prefix.
	HasVowel bool
	// EndsDoubleConsonant reports whether the prefix ends with two identical consonants.
	EndsDoubleConsonant bool
	// EndsCVC reports whether the prefix ends consonant-vowel-consonant where the
	// final consonant is not W, X or Y.
	EndsCVC bool
}

// Result holds the outcome of stemming a single word.
type Result struct {
	// Word is the input as given by the caller.
	Word string
	// Stem is the stemmed form.
	Stem string
	// Engine names the engine that produced the stem.
	Engine string
}

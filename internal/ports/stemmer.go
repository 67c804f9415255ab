package ports

// Stemmer reduces a single word to its stem.
//
// Implementations may write the stem back into word's backing array and
// return a slice of it. On error the word is returned unchanged.
type Stemmer interface {
	Name() string
	Stem(word []byte) ([]byte, error)
}

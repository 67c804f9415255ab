// Package reference adapts github.com/reiver/go-porterstemmer to the
// ports.Stemmer interface so its output can be compared with the native engine.
package reference

import (
	"bytes"
	"fmt"

	"github.com/baditaflorin/go_porter_stemmer/internal/core/domain"
	porterstemmer "github.com/reiver/go-porterstemmer"
)

// EngineName identifies this engine in results and logs.
const EngineName = "reference"

// Engine stems words with the reiver implementation under the same length
// contract as the native engine. Output is upper-cased.
type Engine struct{}

// NewEngine returns a reference engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return EngineName
}

// Stem implements ports.Stemmer.
func (e *Engine) Stem(word []byte) (stem []byte, err error) {
	if len(word) == 0 || len(word) > domain.MaxWordLength {
		return word, domain.ErrInvalidLength
	}

	// The library indexes past the end of some short inputs.
	defer func() {
		if r := recover(); r != nil {
			stem, err = word, fmt.Errorf("reference stemmer failed on %q: %v", word, r)
		}
	}()

	out := bytes.ToUpper([]byte(porterstemmer.StemString(string(word))))
	return append(word[:0], out...), nil
}

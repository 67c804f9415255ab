// Package porter implements the Porter suffix-stripping algorithm on a
// fixed-capacity buffer with an incrementally maintained flag map.
package porter

import "github.com/baditaflorin/go_porter_stemmer/internal/core/domain"

// EngineName identifies this engine in results and logs.
const EngineName = "porter"

// step is one stage of the pipeline.
type step struct {
	name string
	fn   func(*Buffer)
}

// pipeline lists the steps in the order they must run.
var pipeline = []step{
	{"step1a", step1a},
	{"step1b", step1b},
	{"step1c", step1c},
	{"step2", step2},
	{"step3", step3},
	{"step4", step4},
	{"step5a", step5a},
	{"step5b", step5b},
}

// TraceFunc receives the name of the step about to run and the word as it
// stands before that step. current is only valid during the call.
type TraceFunc func(step string, current []byte)

// Stem reduces word to its stem. The result is written back into word's
// backing array when its capacity allows, so callers should use the returned
// slice, which carries the new length. The stem is upper-cased and may be one
// letter longer than the input.
//
// Words that are empty or longer than domain.MaxWordLength are rejected with
// domain.ErrInvalidLength and word is left untouched.
func Stem(word []byte) ([]byte, error) {
	return StemTrace(word, nil)
}

// StemTrace is Stem with a hook called before every step.
func StemTrace(word []byte, trace TraceFunc) ([]byte, error) {
	var b Buffer
	if err := b.Load(word); err != nil {
		return word, err
	}

	b.measure()
	b.run(trace)

	return append(word[:0], b.Bytes()...), nil
}

// StemString is a convenience wrapper around Stem.
func StemString(word string) (string, error) {
	stem, err := Stem([]byte(word))
	if err != nil {
		return word, err
	}
	return string(stem), nil
}

func (b *Buffer) run(trace TraceFunc) {
	for _, s := range pipeline {
		if trace != nil {
			trace(s.name, b.Bytes())
		}
		s.fn(b)
	}
}

// DumpEntry describes the flags recorded for one prefix of a word.
type DumpEntry struct {
	Prefix string
	Flags  domain.Flags
}

// Dump measures word and returns the flags of every prefix, shortest first.
func Dump(word []byte) ([]DumpEntry, error) {
	var b Buffer
	if err := b.Load(word); err != nil {
		return nil, err
	}
	b.measure()

	entries := make([]DumpEntry, b.length)
	for i := range entries {
		entries[i] = DumpEntry{
			Prefix: string(b.letters[:i+1]),
			Flags:  b.flags[i],
		}
	}
	return entries, nil
}

// Engine exposes the algorithm through the ports.Stemmer interface.
type Engine struct{}

// NewEngine returns the native Porter engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return EngineName
}

// Stem implements ports.Stemmer.
func (e *Engine) Stem(word []byte) ([]byte, error) {
	return Stem(word)
}

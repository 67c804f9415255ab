package porter

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/baditaflorin/go_porter_stemmer/internal/core/domain"
)

var stemCases = []struct {
	word string
	want string
}{
	{"caresses", "CARESS"},
	{"ponies", "PONI"},
	{"ties", "TI"},
	{"caress", "CARESS"},
	{"cats", "CAT"},
	{"agreed", "AGRE"},
	{"plastered", "PLASTER"},
	{"bled", "BLED"},
	{"motoring", "MOTOR"},
	{"sing", "SING"},
	{"conflated", "CONFLAT"},
	{"troubled", "TROUBL"},
	{"sized", "SIZE"},
	{"hopping", "HOP"},
	{"relational", "RELAT"},
	{"conditional", "CONDIT"},
	{"electrical", "ELECTR"},
	{"triplicate", "TRIPLIC"},
	{"generalizations", "GENER"},
	{"oscillators", "OSCIL"},
	{"sensibility", "SENSIBL"},
	{"rated", "RATE"},
	{"happy", "HAPPI"},
	{"sky", "SKY"},
	{"feed", "FEED"},
	{"meetings", "MEET"},
	{"hopeful", "HOPE"},
	{"CONNECTIONS", "CONNECT"},
	{"a", "A"},
	{"s", ""},
}

func TestStem(t *testing.T) {
	for _, tc := range stemCases {
		t.Run(tc.word, func(t *testing.T) {
			got, err := StemString(tc.word)
			if err != nil {
				t.Fatalf("StemString(%q) returned error: %v", tc.word, err)
			}
			if got != tc.want {
				t.Errorf("StemString(%q) = %q, want %q", tc.word, got, tc.want)
			}
		})
	}
}

func TestStemInvalidLength(t *testing.T) {
	tests := []struct {
		name string
		word []byte
	}{
		{"empty", []byte{}},
		{"nil", nil},
		{"too long", []byte(strings.Repeat("a", domain.MaxWordLength+1))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			original := string(tc.word)
			got, err := Stem(tc.word)
			if !errors.Is(err, domain.ErrInvalidLength) {
				t.Fatalf("Stem error = %v, want %v", err, domain.ErrInvalidLength)
			}
			if string(got) != original || string(tc.word) != original {
				t.Errorf("word was modified: got %q, want %q", got, original)
			}
		})
	}
}

func TestStemMaxLength(t *testing.T) {
	word := strings.Repeat("b", domain.MaxWordLength)
	got, err := StemString(word)
	if err != nil {
		t.Fatalf("StemString returned error for %d letters: %v", len(word), err)
	}
	if got != strings.ToUpper(word) {
		t.Errorf("StemString = %q, want %q", got, strings.ToUpper(word))
	}
}

func TestStemInPlace(t *testing.T) {
	word := []byte("hopping")
	got, err := Stem(word)
	if err != nil {
		t.Fatalf("Stem returned error: %v", err)
	}
	if &got[0] != &word[0] {
		t.Errorf("Stem did not reuse the caller's buffer")
	}
	if string(word[:len(got)]) != "HOP" {
		t.Errorf("buffer holds %q, want %q", word[:len(got)], "HOP")
	}
}

func TestStemGrowsByAtMostOne(t *testing.T) {
	words := []string{"filing", "sized", "conflated", "troubled", "rated", "hoping", "agreed"}
	for _, word := range words {
		got, err := StemString(word)
		if err != nil {
			t.Fatalf("StemString(%q): %v", word, err)
		}
		if len(got) > len(word)+1 {
			t.Errorf("StemString(%q) = %q grew by %d", word, got, len(got)-len(word))
		}
	}
}

func TestStemIsDeterministic(t *testing.T) {
	for _, tc := range stemCases {
		first, _ := StemString(tc.word)
		second, _ := StemString(tc.word)
		if first != second {
			t.Errorf("StemString(%q) gave %q then %q", tc.word, first, second)
		}
	}
}

func TestStemConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for _, tc := range stemCases {
					if got, _ := StemString(tc.word); got != tc.want {
						t.Errorf("concurrent StemString(%q) = %q, want %q", tc.word, got, tc.want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestStemTrace(t *testing.T) {
	var steps []string
	var first string
	_, err := StemTrace([]byte("caresses"), func(step string, current []byte) {
		if len(steps) == 0 {
			first = string(current)
		}
		steps = append(steps, step)
	})
	if err != nil {
		t.Fatalf("StemTrace returned error: %v", err)
	}

	want := []string{"step1a", "step1b", "step1c", "step2", "step3", "step4", "step5a", "step5b"}
	if strings.Join(steps, ",") != strings.Join(want, ",") {
		t.Errorf("steps = %v, want %v", steps, want)
	}
	if first != "CARESSES" {
		t.Errorf("first traced word = %q, want %q", first, "CARESSES")
	}
}

func TestDump(t *testing.T) {
	entries, err := Dump([]byte("hop"))
	if err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Dump returned %d entries, want 3", len(entries))
	}
	if entries[1].Prefix != "HO" || !entries[1].Flags.HasVowel {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	last := entries[2]
	if last.Prefix != "HOP" || last.Flags.Measure != 1 || !last.Flags.EndsCVC {
		t.Errorf("entries[2] = %+v", last)
	}

	if _, err := Dump(nil); !errors.Is(err, domain.ErrInvalidLength) {
		t.Errorf("Dump(nil) error = %v, want %v", err, domain.ErrInvalidLength)
	}
}

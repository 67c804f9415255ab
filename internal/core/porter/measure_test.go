package porter

import (
	"testing"

	"github.com/baditaflorin/go_porter_stemmer/internal/core/domain"
)

func measured(t *testing.T, word string) *Buffer {
	t.Helper()
	var b Buffer
	if err := b.Load([]byte(word)); err != nil {
		t.Fatalf("Load(%q): %v", word, err)
	}
	b.measure()
	return &b
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"tr", 0},
		{"ee", 0},
		{"tree", 0},
		{"y", 0},
		{"by", 0},
		{"trouble", 1},
		{"oats", 1},
		{"trees", 1},
		{"ivy", 1},
		{"troubles", 2},
		{"private", 2},
		{"oaten", 2},
		{"orrery", 2},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			var b Buffer
			if err := b.Load([]byte(tc.word)); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := b.measure(); got != tc.want {
				t.Errorf("measure(%q) = %d, want %d", tc.word, got, tc.want)
			}
		})
	}
}

func TestMeasureFlags(t *testing.T) {
	tests := []struct {
		name string
		word string
		pos  int
		want domain.Flags
	}{
		{"cvc", "hop", 2, domain.Flags{Measure: 1, HasVowel: true, EndsCVC: true}},
		{"cvc not after w", "how", 2, domain.Flags{Measure: 1, HasVowel: true}},
		{"cvc not after x", "fix", 2, domain.Flags{Measure: 1, HasVowel: true}},
		{"double consonant", "hopp", 3, domain.Flags{Measure: 1, HasVowel: true, EndsDoubleConsonant: true}},
		{"double vowel", "tree", 3, domain.Flags{HasVowel: true}},
		{"no vowel yet", "str", 2, domain.Flags{}},
		{"vowel seen", "stra", 3, domain.Flags{HasVowel: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := measured(t, tc.word)
			if got := b.Flags()[tc.pos]; got != tc.want {
				t.Errorf("flags(%q)[%d] = %+v, want %+v", tc.word, tc.pos, got, tc.want)
			}
		})
	}
}

func TestMeasureUpperCases(t *testing.T) {
	b := measured(t, "Hopping")
	if got := string(b.Bytes()); got != "HOPPING" {
		t.Errorf("word after measure = %q, want %q", got, "HOPPING")
	}
}

func TestRemeasureMatchesFullScan(t *testing.T) {
	words := []string{"CONFLAT", "TROUBLING", "SYZYGY", "HOPPING", "RATED", "ABAYA", "EYE"}
	replacements := []byte("AEYSTLW")

	for _, word := range words {
		for k := 0; k < len(word); k++ {
			for _, c := range replacements {
				incremental := measured(t, word)
				incremental.letters[k] = c
				incremental.remeasure(k)

				changed := []byte(word)
				changed[k] = c
				full := measured(t, string(changed))

				for i, want := range full.Flags() {
					if got := incremental.Flags()[i]; got != want {
						t.Errorf("%q with [%d]=%c: flags[%d] = %+v, want %+v",
							word, k, c, i, got, want)
					}
				}
			}
		}
	}
}

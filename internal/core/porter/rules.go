package porter

import "strings"

// condition decides whether a rule may fire. stem is the length of the word
// with the rule's suffix removed.
type condition func(b *Buffer, stem int) bool

// rule rewrites a suffix into its replacement when the condition holds.
type rule struct {
	suffix      string
	replacement string
	cond        condition
}

// ruleSet groups the rules of one step by the last letter of their suffix,
// in the order they are tried.
type ruleSet map[byte][]rule

func always(*Buffer, int) bool {
	return true
}

// measureAbove requires the stem measure to be greater than n. An empty
// stem has measure 0.
func measureAbove(n int) condition {
	return func(b *Buffer, stem int) bool {
		return b.measureAt(stem-1) > n
	}
}

// stemEndsIn requires the last letter of the stem to be one of letters on top of cond.
func stemEndsIn(letters string, cond condition) condition {
	return func(b *Buffer, stem int) bool {
		if stem < 1 || strings.IndexByte(letters, b.letters[stem-1]) < 0 {
			return false
		}
		return cond(b, stem)
	}
}

// apply tries the rules registered for the word's last letter. The first
// rule whose suffix matches decides the outcome: it fires if its condition
// holds, and no other rule is tried either way. It reports whether a rule fired.
func (b *Buffer) apply(set ruleSet) bool {
	if b.length == 0 {
		return false
	}
	for _, r := range set[b.last()] {
		if !b.endsWith(r.suffix) {
			continue
		}
		stem := b.length - len(r.suffix)
		if !r.cond(b, stem) {
			return false
		}
		b.rewrite(stem, r.suffix, r.replacement)
		return true
	}
	return false
}

// rewrite replaces the suffix starting at stem and re-measures from the
// first letter that actually changed.
func (b *Buffer) rewrite(stem int, suffix, replacement string) {
	copy(b.letters[stem:], replacement)
	b.length = stem + len(replacement)

	changed := stem + commonPrefix(suffix, replacement)
	if changed < b.length {
		b.remeasure(changed)
	}
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

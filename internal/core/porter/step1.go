package porter

// step1aRules handles plurals.
var step1aRules = ruleSet{
	'S': {
		{"SSES", "SS", always},
		{"IES", "I", always},
		{"SS", "SS", always},
		{"S", "", always},
	},
}

func step1a(b *Buffer) {
	b.apply(step1aRules)
}

// step1b handles past tenses and progressive forms.
func step1b(b *Buffer) {
	// (m>0) EED -> EE
	if b.endsWith("EED") {
		if b.length > 4 && b.measureAt(b.length-4) > 0 {
			b.truncate(1)
		}
		return
	}

	switch {
	case b.endsWith("ED"):
		if !b.hasVowelAt(b.length - 3) {
			return
		}
		b.truncate(2)
	case b.endsWith("ING"):
		if !b.hasVowelAt(b.length - 4) {
			return
		}
		b.truncate(3)
	default:
		return
	}

	switch {
	case b.endsWith("AT"), b.endsWith("BL"), b.endsWith("IZ"):
		b.appendLetter('E')
		b.remeasure(b.length - 2)
	case b.length > 1 && b.flags[b.length-1].EndsDoubleConsonant && !isLSZ(b.last()):
		b.truncate(1)
	case b.flags[b.length-1].Measure == 1 && b.flags[b.length-1].EndsCVC:
		b.appendLetter('E')
		b.remeasure(b.length - 1)
	}
}

func isLSZ(c byte) bool {
	return c == 'L' || c == 'S' || c == 'Z'
}

// step1c turns a terminal Y into I when the stem has a vowel.
func step1c(b *Buffer) {
	if b.length < 2 || b.last() != 'Y' || !b.flags[b.length-2].HasVowel {
		return
	}
	b.letters[b.length-1] = 'I'
	b.remeasure(b.length - 2)
}

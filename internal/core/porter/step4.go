package porter

var step4Rules = ruleSet{
	'C': {
		{"IC", "", measureAbove(1)},
	},
	'E': {
		{"ANCE", "", measureAbove(1)},
		{"ENCE", "", measureAbove(1)},
		{"ABLE", "", measureAbove(1)},
		{"IBLE", "", measureAbove(1)},
		{"ATE", "", measureAbove(1)},
		{"IVE", "", measureAbove(1)},
		{"IZE", "", measureAbove(1)},
	},
	'I': {
		{"ITI", "", measureAbove(1)},
	},
	'L': {
		{"AL", "", measureAbove(1)},
	},
	'M': {
		{"ISM", "", measureAbove(1)},
	},
	'N': {
		{"ION", "", stemEndsIn("ST", measureAbove(1))},
	},
	'R': {
		{"ER", "", measureAbove(1)},
	},
	'S': {
		{"OUS", "", measureAbove(1)},
	},
	'T': {
		{"ANT", "", measureAbove(1)},
		{"EMENT", "", measureAbove(1)},
		{"MENT", "", measureAbove(1)},
		{"ENT", "", measureAbove(1)},
	},
	'U': {
		{"OU", "", measureAbove(1)},
	},
}

// step4 strips residual suffixes from stems with measure above one.
func step4(b *Buffer) {
	b.apply(step4Rules)
}

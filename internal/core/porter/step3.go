package porter

var step3Rules = ruleSet{
	'E': {
		{"ICATE", "IC", measureAbove(0)},
		{"ATIVE", "", measureAbove(0)},
		{"ALIZE", "AL", measureAbove(0)},
	},
	'I': {
		{"ICITI", "IC", measureAbove(0)},
	},
	'L': {
		{"ICAL", "IC", measureAbove(0)},
		{"FUL", "", measureAbove(0)},
	},
	'S': {
		{"NESS", "", measureAbove(0)},
	},
}

func step3(b *Buffer) {
	b.apply(step3Rules)
}

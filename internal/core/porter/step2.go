package porter

var step2Rules = ruleSet{
	'I': {
		{"ENCI", "ENCE", measureAbove(0)},
		{"ANCI", "ANCE", measureAbove(0)},
		{"ABLI", "ABLE", measureAbove(0)},
		{"ALLI", "AL", measureAbove(0)},
		{"ENTLI", "ENT", measureAbove(0)},
		{"ELI", "E", measureAbove(0)},
		{"OUSLI", "OUS", measureAbove(0)},
		{"ALITI", "AL", measureAbove(0)},
		{"IVITI", "IVE", measureAbove(0)},
		{"BILITI", "BLE", measureAbove(0)},
	},
	'L': {
		{"ATIONAL", "ATE", measureAbove(0)},
		{"TIONAL", "TION", measureAbove(0)},
	},
	'M': {
		{"ALISM", "AL", measureAbove(0)},
	},
	'N': {
		{"IZATION", "IZE", measureAbove(0)},
		{"ATION", "ATE", measureAbove(0)},
	},
	'R': {
		{"IZER", "IZE", measureAbove(0)},
		{"ATOR", "ATE", measureAbove(0)},
	},
	'S': {
		{"IVENESS", "IVE", measureAbove(0)},
		{"FULNESS", "FUL", measureAbove(0)},
		{"OUSNESS", "OUS", measureAbove(0)},
	},
}

// step2 maps double suffixes to single ones.
func step2(b *Buffer) {
	b.apply(step2Rules)
}

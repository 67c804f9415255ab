package porter

// step5a removes a final E when (m>1) or (m=1 and not *o).
func step5a(b *Buffer) {
	if b.length < 3 || b.last() != 'E' {
		return
	}
	flags := b.flags[b.length-2]
	if flags.Measure > 1 || (flags.Measure == 1 && !flags.EndsCVC) {
		b.truncate(1)
	}
}

// step5b reduces a final LL to L when m>1.
func step5b(b *Buffer) {
	if b.length < 2 || b.last() != 'L' || b.letters[b.length-2] != 'L' {
		return
	}
	if b.flags[b.length-1].Measure > 1 {
		b.truncate(1)
	}
}

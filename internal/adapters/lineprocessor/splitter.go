package lineprocessor

// splitter turns a byte stream into line segments. LF, CR and CRLF all end a
// line, and lines longer than SegmentSize are cut into several segments.
type splitter struct {
	line    []byte
	afterCR bool
	emit    func(segment []byte) error
}

// write consumes one chunk of input.
func (sp *splitter) write(chunk []byte) error {
	for _, c := range chunk {
		switch {
		case c == LF && sp.afterCR:
			// Second half of a CRLF pair.
			sp.afterCR = false
		case c == LF || c == CR:
			sp.afterCR = c == CR
			if err := sp.flush(); err != nil {
				return err
			}
		default:
			sp.afterCR = false
			sp.line = append(sp.line, c)
		}
	}
	return nil
}

// finish emits a final line that had no terminator.
func (sp *splitter) finish() error {
	if len(sp.line) == 0 {
		return nil
	}
	return sp.flush()
}

func (sp *splitter) flush() error {
	defer func() { sp.line = sp.line[:0] }()

	if len(sp.line) == 0 {
		return sp.emit(sp.line)
	}
	for off := 0; off < len(sp.line); off += SegmentSize {
		end := off + SegmentSize
		if end > len(sp.line) {
			end = len(sp.line)
		}
		if err := sp.emit(sp.line[off:end]); err != nil {
			return err
		}
	}
	return nil
}

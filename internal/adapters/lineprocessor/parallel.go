package lineprocessor

import (
	"bufio"
	"context"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// batch holds copies of consecutive segments. Stems replace them in place.
type batch struct {
	lines [][]byte
}

// processParallel collects segments into batches and stems up to Workers
// batches at a time. Batches are written in input order.
func (p *Processor) processParallel(ctx context.Context, reader io.Reader, out *bufio.Writer) (int, int64, error) {
	workers := p.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	lines := 0
	window := make([]*batch, 0, workers)
	current := &batch{lines: make([][]byte, 0, p.config.BatchSize)}

	flushWindow := func() error {
		if len(current.lines) > 0 {
			window = append(window, current)
			current = &batch{lines: make([][]byte, 0, p.config.BatchSize)}
		}
		if len(window) == 0 {
			return nil
		}
		if err := p.stemWindow(ctx, window); err != nil {
			return err
		}
		for _, b := range window {
			for _, line := range b.lines {
				if err := p.writeLine(out, line); err != nil {
					return err
				}
			}
		}
		window = window[:0]
		return nil
	}

	emit := func(segment []byte) error {
		lines++
		// One spare byte lets a stem grow without reallocating.
		word := make([]byte, len(segment), len(segment)+1)
		copy(word, segment)
		current.lines = append(current.lines, word)

		if len(current.lines) < p.config.BatchSize {
			return nil
		}
		window = append(window, current)
		current = &batch{lines: make([][]byte, 0, p.config.BatchSize)}
		if len(window) < workers {
			return nil
		}
		return flushWindow()
	}

	bytesProcessed, err := p.scan(ctx, reader, emit)
	if err != nil {
		return lines, bytesProcessed, err
	}
	return lines, bytesProcessed, flushWindow()
}

// stemWindow stems each batch of the window on its own goroutine.
func (p *Processor) stemWindow(ctx context.Context, window []*batch) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, b := range window {
		b := b
		g.Go(func() error {
			for i, line := range b.lines {
				if i%ContextCheckFrequency == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				b.lines[i] = p.stem(line)
			}
			return nil
		})
	}
	return g.Wait()
}

// Package lineprocessor stems a text stream one line at a time, writing one
// output line per input line segment.
package lineprocessor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/internal/pool"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
)

// Constants for line processing
const (
	// DefaultChunkSize defines the default size of each chunk for reading
	DefaultChunkSize = 64 * 1024 // 64KB

	// DefaultBatchSize defines how many lines to process in one batch
	DefaultBatchSize = 256

	// SegmentSize is the longest run of bytes stemmed as one word. Longer
	// lines are split, matching a 128 byte fgets buffer.
	SegmentSize = 127

	// ContextCheckFrequency defines how often to check for context cancellation
	ContextCheckFrequency = 500 // lines

	// Common newline characters
	CR = '\r'
	LF = '\n'
)

// Config defines configuration for line processing
type Config struct {
	ChunkSize   int
	BatchSize   int
	UseParallel bool
	// Workers bounds the batches stemmed at once; 0 means runtime.NumCPU()
	Workers int
}

// Processor stems every line read from a stream
type Processor struct {
	logger  ports.Logger
	stemmer ports.Stemmer

	chunkPool *pool.BufferPool
	linePool  *pool.BufferPool

	config Config
}

// NewProcessor creates a new line processor
func NewProcessor(logger ports.Logger, stemmer ports.Stemmer, config Config) *Processor {
	// Use defaults if not specified
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}

	return &Processor{
		logger:    logger,
		stemmer:   stemmer,
		chunkPool: pool.NewBufferPool(config.ChunkSize),
		linePool:  pool.NewBufferPool(SegmentSize + 1),
		config:    config,
	}
}

// ProcessLines stems reader line by line into writer. It returns the number
// of lines written and the number of bytes read.
func (p *Processor) ProcessLines(ctx context.Context, reader io.Reader, writer io.Writer) (int, int64, error) {
	if writer == nil {
		writer = io.Discard
	}
	out := bufio.NewWriter(writer)

	startTime := time.Now()
	var (
		lines int
		bytes int64
		err   error
	)
	if p.config.UseParallel {
		lines, bytes, err = p.processParallel(ctx, reader, out)
	} else {
		lines, bytes, err = p.processSequential(ctx, reader, out)
	}

	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = flushErr
	}
	if err != nil {
		p.logger.Warn("Line processing stopped", "error", err, "lines", lines, "bytes_processed", bytes)
		return lines, bytes, err
	}

	p.logger.Debug("Line processing completed",
		"lines", lines,
		"bytes_processed", bytes,
		"parallel", p.config.UseParallel,
		"duration", time.Since(startTime),
	)
	return lines, bytes, nil
}

// processSequential stems and writes each segment as soon as it is found.
func (p *Processor) processSequential(ctx context.Context, reader io.Reader, out *bufio.Writer) (int, int64, error) {
	word := p.linePool.Get()
	defer p.linePool.Put(word)

	lines := 0
	emit := func(segment []byte) error {
		lines++
		if lines%ContextCheckFrequency == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		*word = append((*word)[:0], segment...)
		return p.writeLine(out, p.stem(*word))
	}

	bytes, err := p.scan(ctx, reader, emit)
	return lines, bytes, err
}

// scan reads reader in chunks and feeds a splitter that calls emit per segment.
func (p *Processor) scan(ctx context.Context, reader io.Reader, emit func([]byte) error) (int64, error) {
	chunk := p.chunkPool.Get()
	defer p.chunkPool.Put(chunk)
	*chunk = (*chunk)[:cap(*chunk)]

	line := p.linePool.Get()
	sp := splitter{line: *line, emit: emit}
	defer func() {
		*line = sp.line
		p.linePool.Put(line)
	}()

	var bytesProcessed int64
	for {
		if err := ctx.Err(); err != nil {
			return bytesProcessed, err
		}

		n, err := reader.Read(*chunk)
		if n > 0 {
			bytesProcessed += int64(n)
			if werr := sp.write((*chunk)[:n]); werr != nil {
				return bytesProcessed, werr
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return bytesProcessed, err
			}
			return bytesProcessed, sp.finish()
		}
	}
}

// stem runs the stemmer; words it rejects are passed through unchanged.
func (p *Processor) stem(word []byte) []byte {
	stem, err := p.stemmer.Stem(word)
	if err != nil {
		p.logger.Debug("Word left unchanged", "word", string(word), "error", err)
		return word
	}
	return stem
}

func (p *Processor) writeLine(out *bufio.Writer, line []byte) error {
	if _, err := out.Write(line); err != nil {
		return err
	}
	return out.WriteByte(LF)
}

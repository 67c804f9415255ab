package warmup

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"golang.org/x/sync/errgroup"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of passes over the vocabulary per routine
	Iterations int
	// Words to stem; DefaultVocabulary is used when empty
	Vocabulary []string
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultVocabulary exercises every step of the algorithm at least once.
var DefaultVocabulary = []string{
	"caresses", "ponies", "ties", "cats", "feed", "agreed", "plastered",
	"motoring", "conflated", "troubled", "sized", "hopping", "filing",
	"happy", "relational", "conditional", "valenci", "digitizer",
	"radicalli", "sensitiviti", "triplicate", "formative", "hopeful",
	"goodness", "revival", "allowance", "adjustment", "adoption",
	"effective", "bowdlerize", "probate", "cease", "controll", "roll",
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger   ports.Logger
	stemmers []ports.Stemmer
	config   WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if len(config.Vocabulary) == 0 {
		config.Vocabulary = DefaultVocabulary
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterStemmer adds a stemmer to be warmed up
func (wm *Manager) RegisterStemmer(s ports.Stemmer) {
	wm.stemmers = append(wm.stemmers, s)
}

// WarmUp stems the vocabulary with every registered stemmer from
// Concurrency goroutines. Running out of time is not an error; the first
// stemming failure is returned.
func (wm *Manager) WarmUp(ctx context.Context) error {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"stemmers", len(wm.stemmers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < wm.config.Concurrency; i++ {
		g.Go(func() error {
			return wm.run(gctx)
		})
	}
	err := g.Wait()

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	if err != nil {
		wm.logger.Error("System warmup failed", "error", err)
		return err
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
	return nil
}

// run performs one routine's share of the warmup.
func (wm *Manager) run(ctx context.Context) error {
	buf := make([]byte, 0, 32)
	for j := 0; j < wm.config.Iterations; j++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		for _, s := range wm.stemmers {
			for _, word := range wm.config.Vocabulary {
				buf = append(buf[:0], word...)
				if _, err := s.Stem(buf); err != nil {
					return fmt.Errorf("warm up %s on %q: %w", s.Name(), word, err)
				}
			}
		}
	}
	return nil
}

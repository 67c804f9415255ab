// Package stemmer is the public entry point to the Porter stemmer. It wraps
// the stemming engines with logging, case handling and optional warm-up.
package stemmer

import (
	"context"
	"fmt"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/logger"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/reference"
	"github.com/baditaflorin/go_porter_stemmer/internal/core/domain"
	"github.com/baditaflorin/go_porter_stemmer/internal/core/porter"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/baditaflorin/go_porter_stemmer/internal/warmup"
	"github.com/baditaflorin/l"
)

// Engine selects the stemming implementation.
type Engine string

const (
	// EnginePorter is the native engine.
	EnginePorter Engine = porter.EngineName
	// EngineReference delegates to github.com/reiver/go-porterstemmer.
	EngineReference Engine = reference.EngineName
)

// ErrInvalidLength is returned for words that are empty or longer than
// MaxWordLength letters.
var ErrInvalidLength = domain.ErrInvalidLength

// MaxWordLength is the longest word the stemmer accepts.
const MaxWordLength = domain.MaxWordLength

// Stemmer stems words with the configured engine. It is safe for concurrent use.
type Stemmer struct {
	engine ports.Stemmer
	logger ports.Logger
	lower  bool
	trace  bool
	warmed bool
}

// Option defines a functional option for configuring a Stemmer.
type Option func(*config)

type config struct {
	Engine       Engine
	Logger       ports.Logger
	LowerCase    bool
	Trace        bool
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithSilentLogger discards all log output.
func WithSilentLogger() Option {
	return func(cfg *config) {
		cfg.Logger = logger.Nop{}
	}
}

// WithEngine selects the stemming engine.
func WithEngine(e Engine) Option {
	return func(cfg *config) {
		cfg.Engine = e
	}
}

// WithLowerCase makes the stemmer return lower-case stems.
func WithLowerCase(enable bool) Option {
	return func(cfg *config) {
		cfg.LowerCase = enable
	}
}

// WithTrace logs the word before every step at debug level.
// Only the native engine supports tracing.
func WithTrace(enable bool) Option {
	return func(cfg *config) {
		cfg.Trace = enable
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Stemmer.
func New(opts ...Option) (*Stemmer, error) {
	cfg := &config{
		Engine:       EnginePorter,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	engine, err := newEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}

	if cfg.Logger == nil {
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	s := &Stemmer{
		engine: engine,
		logger: cfg.Logger,
		lower:  cfg.LowerCase,
		trace:  cfg.Trace && cfg.Engine == EnginePorter,
	}

	if cfg.WarmUp {
		if err := s.WarmUp(context.Background(), cfg.WarmUpConfig); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func newEngine(e Engine) (ports.Stemmer, error) {
	switch e {
	case EnginePorter:
		return porter.NewEngine(), nil
	case EngineReference:
		return reference.NewEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", e)
	}
}

// Name returns the name of the underlying engine.
func (s *Stemmer) Name() string {
	return s.engine.Name()
}

// Stem returns the stem of word. Invalid words are returned unchanged along
// with an error wrapping ErrInvalidLength.
func (s *Stemmer) Stem(word string) (string, error) {
	stem, err := s.StemBytes([]byte(word))
	if err != nil {
		return word, err
	}
	return string(stem), nil
}

// StemBytes stems word, reusing its backing array when possible.
func (s *Stemmer) StemBytes(word []byte) ([]byte, error) {
	var (
		stem []byte
		err  error
	)
	if s.trace {
		stem, err = porter.StemTrace(word, func(step string, current []byte) {
			s.logger.Debug("Stemming step", "step", step, "word", string(current))
		})
	} else {
		stem, err = s.engine.Stem(word)
	}
	if err != nil {
		s.logger.Warn("Word not stemmed", "word", string(word), "error", err)
		return word, fmt.Errorf("stem %q: %w", word, err)
	}

	if s.lower {
		toLower(stem)
	}
	s.logger.Debug("Word stemmed", "stem", string(stem), "engine", s.engine.Name())
	return stem, nil
}

// Result stems word and reports it together with the engine used.
func (s *Stemmer) Result(word string) (domain.Result, error) {
	stem, err := s.Stem(word)
	if err != nil {
		return domain.Result{}, err
	}
	return domain.Result{Word: word, Stem: stem, Engine: s.engine.Name()}, nil
}

// Port exposes the stemmer as a ports.Stemmer for the line processor and
// the warm-up manager.
func (s *Stemmer) Port() ports.Stemmer {
	return port{s}
}

type port struct{ s *Stemmer }

func (p port) Name() string                     { return p.s.Name() }
func (p port) Stem(word []byte) ([]byte, error) { return p.s.StemBytes(word) }

// WarmUp stems a sample vocabulary so later calls run at steady-state speed.
func (s *Stemmer) WarmUp(ctx context.Context, wc warmup.WarmupConfig) error {
	if s.warmed {
		s.logger.Debug("System already warmed up, skipping")
		return nil
	}

	mgr := warmup.NewManager(s.logger, wc)
	mgr.RegisterStemmer(s.engine)
	if err := mgr.WarmUp(ctx); err != nil {
		return fmt.Errorf("warm up: %w", err)
	}
	s.warmed = true
	return nil
}

// Close releases the logger.
func (s *Stemmer) Close() error {
	return s.logger.Close()
}

func toLower(b []byte) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/lineprocessor"
	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/logger"
	"github.com/baditaflorin/go_porter_stemmer/internal/core/porter"
	"github.com/baditaflorin/go_porter_stemmer/internal/ports"
	"github.com/baditaflorin/go_porter_stemmer/pkg/stemmer"
	"github.com/baditaflorin/l"
)

// options holds the command-line flags.
type options struct {
	engine   string
	lower    bool
	parallel bool
	dump     bool
	trace    bool
	verbose  bool
}

var opts options

func init() {
	flag.StringVar(&opts.engine, "engine", string(stemmer.EnginePorter), "Stemming engine: 'porter' or 'reference'")
	flag.BoolVar(&opts.lower, "lower", false, "Print stems in lower case")
	flag.BoolVar(&opts.parallel, "parallel", false, "Stem stdin lines in parallel batches")
	flag.BoolVar(&opts.dump, "dump", false, "Print the measure and flags of every prefix of each argument")
	flag.BoolVar(&opts.trace, "trace", false, "Print each argument before every step to stderr")
	flag.BoolVar(&opts.verbose, "verbose", false, "Enable logging to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [word ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nWith words, prints 'word -> stem' for each one.\n")
		fmt.Fprintf(os.Stderr, "Without words, stems standard input one line at a time.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s caresses ponies\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -parallel < words.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -dump -trace generalizations\n", os.Args[0])
	}
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, flag.Args(), os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the command. It is separate from main so it can be tested.
func run(ctx context.Context, o options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var log ports.Logger = logger.Nop{}
	logOpt := stemmer.WithSilentLogger()
	if o.verbose {
		lg, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig())
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		log = logger.FromExisting(lg)
		logOpt = stemmer.WithLogger(lg)
	}
	defer log.Close()

	s, err := stemmer.New(
		logOpt,
		stemmer.WithEngine(stemmer.Engine(o.engine)),
		stemmer.WithLowerCase(o.lower),
	)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return stemArgs(s, o, args, stdout, stderr)
	}

	p := lineprocessor.NewProcessor(log, s.Port(), lineprocessor.Config{UseParallel: o.parallel})
	lines, n, err := p.ProcessLines(ctx, stdin, stdout)
	if err != nil {
		return fmt.Errorf("stem standard input: %w", err)
	}
	log.Info("Standard input stemmed", "lines", lines, "bytes", n)
	return nil
}

// stemArgs prints "word -> stem" for every argument. Words the stemmer
// rejects are printed unchanged.
func stemArgs(s *stemmer.Stemmer, o options, args []string, stdout, stderr io.Writer) error {
	for _, word := range args {
		if o.dump {
			if err := dumpWord(stdout, word); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", word, err)
			}
		}
		if o.trace {
			traceWord(stderr, word)
		}

		stem, _ := s.Stem(word)
		if _, err := fmt.Fprintf(stdout, "%s -> %s\n", word, stem); err != nil {
			return err
		}
	}
	return nil
}

// dumpWord prints the flag map of word, one prefix per line.
func dumpWord(w io.Writer, word string) error {
	entries, err := porter.Dump([]byte(word))
	if err != nil {
		return err
	}
	for j, e := range entries {
		fmt.Fprintf(w, "[% 2d] '%s', measure = %d", j, e.Prefix, e.Flags.Measure)
		if e.Flags.HasVowel {
			fmt.Fprint(w, ", hasVowel")
		}
		if e.Flags.EndsDoubleConsonant {
			fmt.Fprint(w, ", endsCC")
		}
		if e.Flags.EndsCVC {
			fmt.Fprint(w, ", endsCVC")
		}
		fmt.Fprintln(w)
	}
	return nil
}

// traceWord prints word as it enters every step, then the final stem.
func traceWord(w io.Writer, word string) {
	stem, err := porter.StemTrace([]byte(word), func(step string, current []byte) {
		fmt.Fprintf(w, "%s() <- '%s'\n", step, current)
	})
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", word, err)
		return
	}
	fmt.Fprintf(w, "stem -> '%s'\n", stem)
}

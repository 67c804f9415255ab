package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/baditaflorin/go_porter_stemmer/internal/adapters/logger"
	"github.com/baditaflorin/go_porter_stemmer/internal/server"
	"github.com/baditaflorin/go_porter_stemmer/pkg/config"
	"github.com/baditaflorin/go_porter_stemmer/pkg/stemmer"
	"github.com/baditaflorin/l"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to a YAML config file (empty = defaults)")
	port := flag.Int("port", 0, "HTTP server port (overrides the config file)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *port != 0 {
		cfg.Server.Port = *port
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
			os.Exit(1)
		}
	}

	log, err := createLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting stemmer HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"concurrency", cfg.Server.Concurrency,
		"engine", cfg.Stemmer.Engine,
	)

	s, err := stemmer.New(
		stemmer.WithLogger(log),
		stemmer.WithEngine(stemmer.Engine(cfg.Stemmer.Engine)),
		stemmer.WithLowerCase(cfg.Stemmer.LowerCase),
		stemmer.WithWarmUp(cfg.Stemmer.WarmUp),
	)
	if err != nil {
		log.Error("Failed to initialize stemmer", "error", err)
		os.Exit(1)
	}
	log.Info("Stemmer initialized", "warm_up", cfg.Stemmer.WarmUp, "cpus", runtime.NumCPU())

	srv := server.New(cfg.Server, server.NewHandler(s, logger.FromExisting(log)))

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := srv.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := srv.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// createLogger creates and configures a logger
func createLogger(cfg config.LogConfig) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lg, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return lg, nil
}

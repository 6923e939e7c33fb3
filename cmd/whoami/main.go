// Command whoami serves the client IP address resolved by proxyip.
//
// GET / answers with "<ip> <source>". GET /metrics exposes extraction
// counters in the Prometheus text format.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abczzz13/proxyip"
	proxyipprom "github.com/abczzz13/proxyip/prometheus"
)

type config struct {
	Addr            string        `env:"WHOAMI_ADDR" envDefault:":8080"`
	LogLevel        slog.Level    `env:"WHOAMI_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"WHOAMI_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "whoami: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	registry := prom.NewRegistry()
	extractor, err := proxyip.New(
		proxyip.FromEnv(),
		proxyip.WithLogger(logger),
		proxyipprom.WithRegisterer(registry),
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(extractor, registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func newMux(extractor *proxyip.Extractor, gatherer prom.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", extractor.Middleware(http.HandlerFunc(whoami)))
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}

func whoami(w http.ResponseWriter, r *http.Request) {
	extraction, ok := proxyip.FromContext(r.Context())
	if !ok {
		http.Error(w, "client IP not found", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s %s\n", extraction.IP, extraction.Source)
}

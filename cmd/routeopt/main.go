// Command routeopt is the dynamic route optimization engine CLI.
//
// With a command in its arguments it runs that command once and exits;
// without one it reads commands interactively from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/ctxlog"
	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/katalvlaran/lvroute/internal/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var exitErr *shell.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run wires configuration, logging and metrics around one shell session.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, rest, err := config.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &shell.ExitError{Code: 1, Message: err.Error()}
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, stderr)
	m := metrics.New()
	session := shell.NewSession(stdout, *cfg, m, logger)
	ctx = ctxlog.WithLogger(ctx, logger.With("session", session.ID()))

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(ctx, cfg.MetricsAddr, m)
		defer srv.Close()
	}

	if cfg.Graph != "" {
		if err = session.Exec(ctx, []string{"load_graph", cfg.Graph}); err != nil {
			return err
		}
	}

	if len(rest) > 0 {
		return session.Exec(ctx, rest)
	}

	return session.Run(ctx, stdin)
}

// serveMetrics starts the Prometheus endpoint in the background.
func serveMetrics(ctx context.Context, addr string, m *metrics.Metrics) *http.Server {
	logger := ctxlog.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		logger.Info("Metrics endpoint listening.", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics endpoint failed.", "error", err)
		}
	}()

	return srv
}

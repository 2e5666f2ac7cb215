// Package shell owns one routing session (graph, disjoint sets, traffic
// index) and dispatches text commands against it, either one-shot from the
// process arguments or line by line from an interactive prompt.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/ctxlog"
	"github.com/katalvlaran/lvroute/internal/metrics"
	"github.com/katalvlaran/lvroute/traffic"
	"github.com/katalvlaran/lvroute/unionfind"
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func fail(format string, args ...any) error {
	return &ExitError{Code: 1, Message: "Error: " + fmt.Sprintf(format, args...)}
}

// Session is the mutable state commands operate on. Commands are serialised
// by an internal mutex.
type Session struct {
	mu sync.Mutex

	id      string
	out     io.Writer
	log     *slog.Logger
	metrics *metrics.Metrics
	cfg     config.Config

	graph *core.Graph
	sets  *unionfind.DisjointSet // nil until load_graph
	index *traffic.Index         // built on demand, dropped on topology change
	sim   *traffic.Simulator
}

// NewSession returns a session with an empty graph writing results to out.
func NewSession(out io.Writer, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *Session {
	id := uuid.NewString()

	return &Session{
		id:      id,
		out:     out,
		log:     logger.With("session", id),
		metrics: m,
		cfg:     cfg,
		graph:   core.NewGraph(),
	}
}

// ID returns the session identifier attached to every log record.
func (s *Session) ID() string { return s.id }

// Exec runs one command. args[0] is the command name. Failures are
// *ExitError values whose Message is ready to print.
func (s *Session) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = ctxlog.WithLogger(ctx, s.log)
	logger := ctxlog.FromContext(ctx)

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		s.metrics.ObserveCommand("unknown", errUnknown)
		logger.Debug("Unknown command.", "command", name)
		return &ExitError{Code: 1, Message: fmt.Sprintf("Error: unknown command %q\n%s", name, usage())}
	}

	var err error
	if n := len(args) - 1; n < cmd.minArgs || n > cmd.maxArgs {
		err = &ExitError{Code: 1, Message: "Usage: " + cmd.usage}
	} else {
		err = cmd.run(s, ctx, args[1:])
	}

	s.metrics.ObserveCommand(name, err)
	s.metrics.SetGraphSize(s.graph.NodeCount(), s.graph.EdgeCount())
	if err != nil {
		logger.Debug("Command failed.", "command", name, "error", err)
		return err
	}
	logger.Debug("Command completed.", "command", name)

	return nil
}

// Run reads commands from in until EOF or "exit". A failing command prints
// its message and the loop continues.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, "routeopt interactive mode. Type \"help\" for commands, \"exit\" to quit.")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Exec(ctx, fields); err != nil {
			fmt.Fprintln(s.out, err.Error())
		}
	}

	return scanner.Err()
}

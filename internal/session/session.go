// Package session drives an interpreter from a line source until stop
// executes or input runs out.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/setcalc/internal/domain"
	"github.com/bft-labs/setcalc/internal/interp"
	"github.com/bft-labs/setcalc/internal/ports"
	"github.com/bft-labs/setcalc/pkg/log"
)

// DefaultPrompt is written before each read in interactive mode.
const DefaultPrompt = "Enter a command > "

// NoStopMessage is reported when input ends before stop.
const NoStopMessage = "No stop command was given, program will terminate automatically"

// State is where a session ended up.
type State int

const (
	StateRunning State = iota
	StateStopped
	StateExhausted
	StateCanceled
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	case StateExhausted:
		return "Exhausted"
	case StateCanceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Config controls what the session writes around each command.
type Config struct {
	// Prompt is written before every read when Interactive is set.
	Prompt      string
	Interactive bool
	// Echo writes ">" followed by the line before executing it.
	Echo bool
}

// Result summarizes a finished session.
type Result struct {
	Lines    int
	Rejected int
	State    State
}

// Stopped reports whether the session ended by executing stop.
func (r Result) Stopped() bool {
	return r.State == StateStopped
}

// Session reads lines, executes them and reports command errors to out.
type Session struct {
	interp *interp.Interpreter
	out    io.Writer
	cfg    Config
	logger log.Logger
}

// New creates a session around in. Command output and error messages go to out.
func New(in *interp.Interpreter, out io.Writer, cfg Config, logger log.Logger) *Session {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Session{interp: in, out: out, cfg: cfg, logger: logger}
}

type readResult struct {
	line string
	err  error
}

// readLine returns the next line from src, or ctx.Err() as soon as ctx is
// done. A canceled read leaves its goroutine blocked in src until the source
// yields or is closed; the session does not read from src again.
func readLine(ctx context.Context, src ports.LineSource) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := src.ReadLine()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// Run executes lines from src until stop runs, src is exhausted or ctx is
// done. Cancellation also interrupts a read that is waiting for input.
// A rejected command is reported and never ends the session; only read and
// write failures are returned as errors.
func (s *Session) Run(ctx context.Context, src ports.LineSource) (Result, error) {
	res := Result{State: StateRunning}
	defer func() {
		s.logger.Info("session finished",
			log.String("state", res.State.String()),
			log.Bool("stopped", res.Stopped()),
			log.Int("lines", res.Lines),
			log.Int("rejected", res.Rejected),
		)
	}()

	for s.interp.Running() {
		if err := ctx.Err(); err != nil {
			res.State = StateCanceled
			return res, err
		}

		if s.cfg.Interactive {
			if _, err := io.WriteString(s.out, s.cfg.Prompt); err != nil {
				return res, fmt.Errorf("write prompt: %w", err)
			}
		}

		line, err := readLine(ctx, src)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			res.State = StateCanceled
			return res, err
		}
		if errors.Is(err, ports.ErrNoMoreLines) {
			res.State = StateExhausted
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("read line: %w", err)
		}
		res.Lines++

		if s.cfg.Echo {
			if _, err := fmt.Fprintf(s.out, ">%s\n", line); err != nil {
				return res, fmt.Errorf("write echo: %w", err)
			}
		}

		if err := s.interp.Execute(line); err != nil {
			if domain.KindOf(err) == 0 {
				return res, fmt.Errorf("execute line %d: %w", res.Lines, err)
			}
			res.Rejected++
			if _, werr := fmt.Fprintln(s.out, err.Error()); werr != nil {
				return res, fmt.Errorf("write message: %w", werr)
			}
		}
	}

	res.State = StateStopped
	return res, nil
}

// Package app wires configuration, the interpreter and the session loop
// together for the command-line entrypoint.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bft-labs/setcalc/internal/adapters/lines"
	"github.com/bft-labs/setcalc/internal/cliconfig"
	"github.com/bft-labs/setcalc/internal/interp"
	"github.com/bft-labs/setcalc/internal/session"
	"github.com/bft-labs/setcalc/internal/watch"
	"github.com/bft-labs/setcalc/pkg/log"
)

// ErrNoStop is returned by Run when input ends before a stop command.
var ErrNoStop = errors.New(session.NoStopMessage)

// App runs command input according to a validated Config.
type App struct {
	cfg    cliconfig.Config
	out    io.Writer
	logger log.Logger
}

// New creates an App writing command output to out.
func New(cfg cliconfig.Config, out io.Writer, logger log.Logger) *App {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &App{cfg: cfg, out: out, logger: logger}
}

// Run reads commands from the configured script, or from stdin when no
// script is set. In watch mode it blocks until ctx is done. Otherwise it
// returns ErrNoStop if input ran out before stop.
func (a *App) Run(ctx context.Context, stdin io.Reader) error {
	if a.cfg.Watch {
		w := watch.New(a.cfg.Script, a.cfg.WatchDebounce, func(ctx context.Context, path string) error {
			_, err := a.RunFile(ctx, path)
			return err
		}, a.logger)
		return w.Run(ctx)
	}

	var (
		res session.Result
		err error
	)
	if a.cfg.Interactive() {
		res, err = a.RunSource(ctx, stdin)
	} else {
		res, err = a.RunFile(ctx, a.cfg.Script)
	}
	if err != nil {
		return err
	}
	if !res.Stopped() {
		return ErrNoStop
	}
	return nil
}

// RunFile executes the script at path with a fresh set of sets.
func (a *App) RunFile(ctx context.Context, path string) (session.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return session.Result{}, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return a.RunSource(ctx, f)
}

// RunSource executes commands read from r with a fresh set of sets.
func (a *App) RunSource(ctx context.Context, r io.Reader) (session.Result, error) {
	in := interp.New(a.out,
		interp.WithLogger(a.logger),
		interp.WithMaxTokens(a.cfg.MaxTokens),
	)
	src := lines.NewReader(r, a.cfg.MaxLineLength, a.logger)
	return session.New(in, a.out, a.cfg.SessionConfig(), a.logger).Run(ctx, src)
}

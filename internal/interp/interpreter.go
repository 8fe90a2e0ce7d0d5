// Package interp validates scanned command lines and dispatches them to the
// set handlers.
//
// Every non-empty line goes through the same stages, each of which may
// reject it:
//
//  1. lookup of the command name
//  2. arity check (fixed-arity commands)
//  3. comma cross-check against the raw line (arity > 1)
//  4. dispatch to the handler, which resolves set names and parses members
//
// read_set takes a variable number of arguments and validates its own layout
// after resolving the target set; see readSet.
package interp

import (
	"io"

	"github.com/bft-labs/setcalc/internal/domain"
	"github.com/bft-labs/setcalc/internal/lexer"
	"github.com/bft-labs/setcalc/internal/sets"
	"github.com/bft-labs/setcalc/pkg/log"
)

// Interpreter holds the six sets and the running flag. It is not safe for
// concurrent use; commands run one at a time to completion.
type Interpreter struct {
	sets      *sets.Registry
	commands  *Table
	out       io.Writer
	logger    log.Logger
	maxTokens int
	running   bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger used for rejected commands. Defaults to no-op.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

// WithMaxTokens overrides the per-line token limit.
func WithMaxTokens(n int) Option {
	return func(in *Interpreter) {
		in.maxTokens = n
	}
}

// WithTable replaces the command table.
func WithTable(t *Table) Option {
	return func(in *Interpreter) {
		in.commands = t
	}
}

// New returns a running interpreter that writes command output to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		sets:      sets.New(),
		commands:  DefaultTable(),
		out:       out,
		logger:    log.NewNoopLogger(),
		maxTokens: lexer.DefaultMaxTokens,
		running:   true,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Running reports whether stop has not executed yet.
func (in *Interpreter) Running() bool {
	return in.running
}

// Sets returns the registry the interpreter operates on.
func (in *Interpreter) Sets() *sets.Registry {
	return in.sets
}

// Execute runs one command line. A blank line is a no-op. A rejected command
// returns a *domain.CommandError and leaves the sets as its handler documents.
func (in *Interpreter) Execute(line string) error {
	l, err := lexer.Scan(line, in.maxTokens)
	if err != nil {
		in.abandonReadSet(l)
		return in.reject(l, err)
	}
	if l.Empty() {
		return nil
	}
	if l.Dropped > 0 {
		// comma checks still count the commas of the dropped tail
		in.logger.Warn("tokens dropped",
			log.Int("kept", len(l.Tokens)),
			log.Int("dropped", l.Dropped),
			log.String("line", l.Raw),
		)
	}

	cmd, ok := in.commands.Lookup(l.Tokens[0])
	if !ok {
		return in.reject(l, domain.NewError(domain.KindUndefinedCommand, l.Tokens[0]))
	}

	call := Call{Args: l.Tokens[1:], Line: l}
	if cmd.Arity != Variable {
		if err := checkArity(cmd.Arity, len(call.Args)); err != nil {
			return in.reject(l, err)
		}
		if cmd.Arity > 1 {
			if err := checkCommas(cmd.Arity-1, l.Commas()); err != nil {
				return in.reject(l, err)
			}
		}
	}

	if err := cmd.Run(in, call); err != nil {
		return in.reject(l, err)
	}
	in.logger.Debug("command executed", log.String("command", cmd.Name))
	return nil
}

func checkArity(arity, given int) error {
	switch {
	case given < arity:
		return domain.NewError(domain.KindMissingParameter, "")
	case given > arity:
		return domain.NewError(domain.KindExtraText, "")
	}
	return nil
}

func checkCommas(required, found int) error {
	switch {
	case found < required:
		return domain.NewError(domain.KindMissingComma, "")
	case found > required:
		return domain.NewError(domain.KindIllegalComma, "")
	}
	return nil
}

// abandonReadSet empties the target of a read_set line that failed to scan,
// so a failed read_set always leaves its target empty.
func (in *Interpreter) abandonReadSet(l lexer.Line) {
	tokens := lexer.Tokens(l.Normalized, in.maxTokens)
	if len(tokens) < 2 || tokens[0] != readSetName {
		return
	}
	if target, err := in.sets.Resolve(tokens[1]); err == nil {
		target.Clear()
	}
}

func (in *Interpreter) reject(l lexer.Line, err error) error {
	in.logger.Debug("command rejected",
		log.String("kind", domain.KindOf(err).String()),
		log.String("line", l.Raw),
	)
	return err
}

package interp

import (
	"fmt"

	"github.com/bft-labs/setcalc/internal/lexer"
)

// Variable marks a command that takes a variable number of arguments.
const Variable = -1

// Call is a command invocation that passed the generic checks.
type Call struct {
	// Args are the tokens after the command name.
	Args []string
	// Line is the scanned line, for handlers that validate their own layout.
	Line lexer.Line
}

// Handler runs a command. Fixed-arity handlers receive exactly Arity args;
// Variable handlers do their own argument and comma validation.
type Handler func(in *Interpreter, call Call) error

// Command describes one entry of the command table.
type Command struct {
	Name  string
	Arity int
	Run   Handler
}

// Table maps command names to their descriptors. Names are matched exactly.
type Table struct {
	commands map[string]Command
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{commands: make(map[string]Command)}
}

// Register adds c. It panics if a command with the same name exists.
func (t *Table) Register(c Command) {
	if _, exists := t.commands[c.Name]; exists {
		panic(fmt.Sprintf("command %s already registered", c.Name))
	}
	t.commands[c.Name] = c
}

// Lookup returns the command named name and whether it exists.
func (t *Table) Lookup(name string) (Command, bool) {
	c, ok := t.commands[name]
	return c, ok
}

// DefaultTable returns the table of built-in set commands.
func DefaultTable() *Table {
	t := NewTable()
	t.Register(Command{Name: "turnOn", Arity: 2, Run: turnOn})
	t.Register(Command{Name: "print_set", Arity: 1, Run: printSet})
	t.Register(Command{Name: "union_set", Arity: 3, Run: algebra(opUnion)})
	t.Register(Command{Name: "intersect_set", Arity: 3, Run: algebra(opIntersect)})
	t.Register(Command{Name: "sub_set", Arity: 3, Run: algebra(opSub)})
	t.Register(Command{Name: "symdiff_set", Arity: 3, Run: algebra(opSymDiff)})
	t.Register(Command{Name: "read_set", Arity: Variable, Run: readSet})
	t.Register(Command{Name: "stop", Arity: 0, Run: stop})
	return t
}

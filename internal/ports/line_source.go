package ports

import "io"

// LineSource supplies command lines one at a time.
type LineSource interface {
	// ReadLine returns the next line without its terminator.
	// Returns io.EOF when no more lines are available.
	ReadLine() (string, error)
}

// ErrNoMoreLines indicates that input is exhausted.
var ErrNoMoreLines = io.EOF

// Package domain contains the core vocabulary of the set calculator.
//
// This package has no dependencies on infrastructure concerns (I/O, logging,
// configuration) and holds only the closed enumerations the rest of the
// module agrees on.
//
// # Types
//
//   - [SetName]: one of the six fixed set identifiers SETA..SETF
//   - [Kind]: the kind of a rejected command
//   - [CommandError]: a rejected command, carrying its kind and offending token
//
// Every rejection is an ordinary error value. A [CommandError] matches the
// sentinel for its kind with errors.Is:
//
//	if errors.Is(err, domain.ErrMissingComma) { ... }
package domain

// Package ports defines the interfaces that connect the session loop to the
// outside world.
//
// The interpreter core needs only two capabilities: reading the next command
// line and emitting a message. Emitting is an io.Writer; reading is
// [LineSource], implemented in internal/adapters/lines.
package ports

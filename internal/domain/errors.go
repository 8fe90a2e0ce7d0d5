package domain

import (
	"errors"
	"fmt"
)

// Kind identifies why a command was rejected.
type Kind int

const (
	KindUndefinedCommand Kind = iota + 1
	KindUndefinedSetName
	KindMissingParameter
	KindExtraText
	KindMissingComma
	KindIllegalComma
	KindMultipleConsecutiveCommas
	KindMissingMembers
	KindMemberNotInteger
	KindMemberOutOfRange
	KindUnterminatedMemberList
)

// String returns the kind's identifier, used as a structured log value.
func (k Kind) String() string {
	switch k {
	case KindUndefinedCommand:
		return "UndefinedCommand"
	case KindUndefinedSetName:
		return "UndefinedSetName"
	case KindMissingParameter:
		return "MissingParameter"
	case KindExtraText:
		return "ExtraText"
	case KindMissingComma:
		return "MissingComma"
	case KindIllegalComma:
		return "IllegalComma"
	case KindMultipleConsecutiveCommas:
		return "MultipleConsecutiveCommas"
	case KindMissingMembers:
		return "MissingMembers"
	case KindMemberNotInteger:
		return "InvalidMember(NotInteger)"
	case KindMemberOutOfRange:
		return "InvalidMember(OutOfRange)"
	case KindUnterminatedMemberList:
		return "UnterminatedMemberList"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per Kind. A *CommandError matches the sentinel of its
// kind with errors.Is.
var (
	ErrUndefinedCommand          = errors.New("undefined command name")
	ErrUndefinedSetName          = errors.New("undefined set name")
	ErrMissingParameter          = errors.New("missing parameter")
	ErrExtraText                 = errors.New("extra text after end of command")
	ErrMissingComma              = errors.New("missing comma")
	ErrIllegalComma              = errors.New("illegal comma")
	ErrMultipleConsecutiveCommas = errors.New("multiple consecutive commas")
	ErrMissingMembers            = errors.New("missing set members")
	ErrMemberNotInteger          = errors.New("invalid set member: not an integer")
	ErrMemberOutOfRange          = errors.New("invalid set member: value is out of range")
	ErrUnterminatedMemberList    = errors.New("set member list not terminated")
)

var sentinels = map[Kind]error{
	KindUndefinedCommand:          ErrUndefinedCommand,
	KindUndefinedSetName:          ErrUndefinedSetName,
	KindMissingParameter:          ErrMissingParameter,
	KindExtraText:                 ErrExtraText,
	KindMissingComma:              ErrMissingComma,
	KindIllegalComma:              ErrIllegalComma,
	KindMultipleConsecutiveCommas: ErrMultipleConsecutiveCommas,
	KindMissingMembers:            ErrMissingMembers,
	KindMemberNotInteger:          ErrMemberNotInteger,
	KindMemberOutOfRange:          ErrMemberOutOfRange,
	KindUnterminatedMemberList:    ErrUnterminatedMemberList,
}

// CommandError reports a rejected command. Token holds the offending input
// where one exists (command name, set name, member text).
type CommandError struct {
	Kind  Kind
	Token string
}

// NewError returns a CommandError of the given kind.
func NewError(kind Kind, token string) *CommandError {
	return &CommandError{Kind: kind, Token: token}
}

// Error renders the message shown to the user.
func (e *CommandError) Error() string {
	switch e.Kind {
	case KindUndefinedCommand:
		return "Undefined command name: " + e.Token
	case KindUndefinedSetName:
		return "Undefined set name: " + e.Token
	case KindMissingParameter:
		return "Missing parameter"
	case KindExtraText:
		return "Extra text after end of command"
	case KindMissingComma:
		return "Missing comma"
	case KindIllegalComma:
		return "Illegal comma"
	case KindMultipleConsecutiveCommas:
		return "Multiple consecutive commas"
	case KindMissingMembers:
		return "Missing set members"
	case KindMemberNotInteger:
		return fmt.Sprintf("Invalid set member %s - not an integer", e.Token)
	case KindMemberOutOfRange:
		return fmt.Sprintf("Invalid set member %s - value is out of range", e.Token)
	case KindUnterminatedMemberList:
		return "List of set members is not terminated correctly (missing -1 value)"
	default:
		return "Unknown error"
	}
}

// Is matches the sentinel for e.Kind.
func (e *CommandError) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf extracts the Kind from err, or 0 if err is not a *CommandError.
func KindOf(err error) Kind {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

package machine

import "errors"

var (
	// ErrBadFormat is returned when a description file does not follow the
	// five-section layout.
	ErrBadFormat = errors.New("bad machine description format")
	// ErrInvalidMachine is returned when a parsed description is not a
	// valid automaton of the requested kind.
	ErrInvalidMachine = errors.New("invalid machine")
	// ErrUnknownKind is returned by Load for a file that is neither .dfa
	// nor .nfa.
	ErrUnknownKind = errors.New("unknown machine kind")
)

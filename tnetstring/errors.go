package tnetstring

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Kind distinguishes the error taxonomy shared by the codec, Term and
// the data-access tree. Callers tell "expected" misses (KeyNotFound) from
// hard failures (InvalidTNetstring, OutOfMemory, InvalidChild) by Kind.
type Kind int

const (
	// InvalidArgument covers nil out-params, a nil key, or a term of the
	// wrong type for the requested operation.
	InvalidArgument Kind = iota + 1
	// InvalidTNetstring covers malformed bytes: bad prefix, missing colon,
	// a payload that overruns the enclosing slice, an invalid tag byte.
	InvalidTNetstring
	// UnsupportedTopLevelDataStructure is returned when a root is created
	// from bytes whose top-level term is well-formed but not a dictionary.
	UnsupportedTopLevelDataStructure
	// InvalidChild marks an operation on a node whose path to the root has
	// been broken: an ancestor was overwritten, the node was orphaned, or
	// a link is otherwise dangling.
	InvalidChild
	// KeyNotFound is the expected miss returned by Get and Remove.
	KeyNotFound
	// OutOfMemory marks an allocation failure. Kept for taxonomy
	// completeness; see SPEC_FULL.md §7 for why pure-Go code cannot raise
	// it constructively.
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidTNetstring:
		return "InvalidTNetstring"
	case UnsupportedTopLevelDataStructure:
		return "UnsupportedTopLevelDataStructure"
	case InvalidChild:
		return "InvalidChild"
	case KeyNotFound:
		return "KeyNotFound"
	case OutOfMemory:
		return "OutOfMemory"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this module. Nothing in the core logs, retries, or swallows an error;
// every fallible call returns one of these by value up to the caller.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

// Is lets errors.Is(err, ErrKeyNotFound) (and friends) match by Kind,
// regardless of the message attached to a particular occurrence.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Errorf builds an *Error of the given Kind with a formatted message. It is
// exported so sibling packages (dataaccess, binding) can raise errors of
// the same shared taxonomy without duplicating the type.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return newError(kind, format, args...)
}

// Sentinel values for use with errors.Is. They carry no message and exist
// purely as Kind-matching targets.
var (
	ErrInvalidArgument                  = &Error{Kind: InvalidArgument}
	ErrInvalidTNetstring                = &Error{Kind: InvalidTNetstring}
	ErrUnsupportedTopLevelDataStructure = &Error{Kind: UnsupportedTopLevelDataStructure}
	ErrInvalidChild                     = &Error{Kind: InvalidChild}
	ErrKeyNotFound                      = &Error{Kind: KeyNotFound}
	ErrOutOfMemory                      = &Error{Kind: OutOfMemory}
)

// assertf panics on a broken internal invariant — never on malformed
// caller input, which is always reported through a returned *Error.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(xerrors.Errorf("tnetstring: invariant violated: "+format, args...))
	}
}

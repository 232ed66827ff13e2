package lstar

import "fmt"

// ErrorKind classifies the failure modes spec.md §7 names. It lets callers
// distinguish "the equivalence oracle misbehaved, but we recovered" from
// "the learner's internal state is corrupt" without parsing error strings.
type ErrorKind int

const (
	// OracleContract means the equivalence oracle returned a counterexample
	// on which the hypothesis and the true language actually agree. This is
	// a contract violation by the oracle, but it is not fatal: the engine
	// treats the prefixes as a no-op and the loop continues (spec §7).
	OracleContract ErrorKind = iota

	// InvalidCounterexample means a counterexample string contained a symbol
	// outside of Σ. Fail-fast to the caller.
	InvalidCounterexample

	// UnknownSymbol means the hypothesis DFA was asked to read a symbol
	// outside of Σ. Fail-fast.
	UnknownSymbol

	// TableInvariantViolation means an internal mutator would have broken
	// one of I1-I4, or the hypothesis could not be extracted; fail-fast.
	// Session.Run also reports under this kind any error from initializing,
	// closing or extending the table (a membership oracle failure among
	// them, still reachable through Unwrap) and exceeding
	// Config.MaxIterations.
	TableInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case OracleContract:
		return "OracleContract"
	case InvalidCounterexample:
		return "InvalidCounterexample"
	case UnknownSymbol:
		return "UnknownSymbol"
	case TableInvariantViolation:
		return "TableInvariantViolation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned for every one of the kinds above. It
// carries a human-readable message and, where applicable, the error it
// wraps, following the same shape as the teacher repo's interpreterError:
// a message plus an optional wrapped cause reachable via Unwrap.
type Error struct {
	Kind ErrorKind
	msg  string
	wrap error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.wrap
}

// newError builds an *Error of the given kind with a formatted message.
func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, a...)}
}

// wrapError builds an *Error of the given kind that wraps cause.
func wrapError(kind ErrorKind, cause error, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, a...), wrap: cause}
}

package exchange

import "errors"

// Error categories returned by the registry, the ledger and the metric
// functions. Callers discriminate with errors.Is; every returned error wraps
// exactly one of them.
var (
	// ErrValidation reports a malformed or duplicate security definition.
	ErrValidation = errors.New("invalid security definition")

	// ErrNotFound reports an operation referencing an unregistered symbol.
	ErrNotFound = errors.New("security not found")

	// ErrInvalidInput reports a non-positive quantity or price, or an
	// unrecognized trade side.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefined reports a mathematically undefined result: a P/E ratio
	// with a zero dividend, or a volume weighted price over an empty window.
	// It is an outcome, not a failure: the all share index skips securities
	// whose volume weighted price is undefined instead of zeroing them in.
	ErrUndefined = errors.New("undefined")
)

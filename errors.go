package ivtree

import "errors"

var (
	// ErrEmptyInput signals that a tree has been requested for an empty interval set.
	ErrEmptyInput = errors.New("ivtree: empty interval set")
	// ErrInvalidInterval signals an input interval with left > right.
	ErrInvalidInterval = errors.New("ivtree: invalid interval")
	// ErrInvalidQueryInterval signals a query interval with left > right.
	ErrInvalidQueryInterval = errors.New("ivtree: invalid query interval")
	// ErrInconsistentTree is reported by Check if a structural invariant is violated.
	ErrInconsistentTree = errors.New("ivtree: inconsistent tree")
)

package suffixtree

import "errors"

// ErrFoldingChangedLength is returned by New when case folding the input
// would change its byte length, which would desynchronize the folded
// string's indices from the original's. The construction contract (see
// New) assumes length-preserving folds; inputs that violate it are
// rejected rather than silently mis-indexed.
var ErrFoldingChangedLength = errors.New("suffixtree: case folding changed the byte length of the input")

// invariantViolation is panicked when an internal algorithm invariant is
// broken: an edge-store key collision, a missing edge at the implicit
// active point or during canonicalization, or a missing suffix link where
// one is guaranteed to exist. These indicate a bug in the construction, not a bad input, so
// they are not returned as errors.
type invariantViolation struct {
	reason string
}

func (e invariantViolation) Error() string {
	return "suffixtree: invariant violation: " + e.reason
}

package algmat

import "errors"

var (
	// ErrNotPrime is returned by New when the defining ideal fails the
	// engine's primality check.
	ErrNotPrime = errors.New("defining ideal is not prime")

	// ErrInvalidSubset is returned when a queried subset is not contained in
	// the ground set.
	ErrInvalidSubset = errors.New("subset is not contained in the ground set")

	// ErrNoCircuitFound is returned by FundamentalCircuit when no subset of
	// B ∪ {x} is a circuit; this indicates a malformed basis argument or an
	// inconsistent engine.
	ErrNoCircuitFound = errors.New("no circuit found")

	// ErrElementInBasis is returned by FundamentalCircuit when the extra
	// element already belongs to the basis.
	ErrElementInBasis = errors.New("element already belongs to the basis")
)

// SPDX-License-Identifier: MIT

package entropic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument covers every precondition violation: bad shapes,
	// non-positive ε / learning rate / iteration count, negative or non-finite
	// costs, measures that are not probability vectors, a nil Source.
	// It is always returned before any state is allocated or mutated.
	ErrInvalidArgument = errors.New("entropic: invalid argument")

	// ErrNumericDegeneracy reports NaN/±Inf in a potential, the plan or the
	// distance despite log-sum-exp hardening.
	ErrNumericDegeneracy = errors.New("entropic: numeric degeneracy")
)

// entropicErrorf tags err with the operation name.
func entropicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidf builds an ErrInvalidArgument carrying the offending detail and,
// when cause is non-nil, the underlying sentinel (e.g. matrix.ErrNegative).
func invalidf(op, detail string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%s: %s: %w: %w", op, detail, ErrInvalidArgument, cause)
	}

	return fmt.Errorf("%s: %s: %w", op, detail, ErrInvalidArgument)
}

package acd

import "errors"

// Error kinds. A growth run either completes fully or fails with one of
// these wrapped in context; there is no partial-failure mode.
var (
	// ErrConfiguration marks an invalid stand construction argument
	// (unknown region code, non-positive climate site index).
	ErrConfiguration = errors.New("invalid stand configuration")

	// ErrSpeciesResolution marks a species code that could not be resolved
	// through the species table or crosswalk. Fatal for stand building.
	ErrSpeciesResolution = errors.New("species resolution failed")

	// ErrComputation marks a violated internal invariant, e.g. an
	// out-of-order diameter during a ranked traversal.
	ErrComputation = errors.New("computation failed")
)

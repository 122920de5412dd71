package domain

import "errors"

// Common domain errors. Repositories return these sentinels; usecases map
// them to the HTTP-coded apperror taxonomy at the boundary.
var (
	// ErrNotFound means the target row does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateRequest means an EmployerRequest for the same
	// (candidate, employer) pair already exists, in any status. This is a
	// permanent lock, not a rate limit.
	ErrDuplicateRequest = errors.New("request already exists for this candidate")

	// ErrCorruptAvailability marks an availability payload that failed to
	// decode. It indicates upstream data corruption, never user error, and
	// read paths must degrade to empty availability instead of failing.
	ErrCorruptAvailability = errors.New("availability payload is corrupt")
)

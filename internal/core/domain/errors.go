package domain

import "errors"

// Domain errors represent check and configuration failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedLanguage indicates an unknown scanner language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// Graph Errors.

	// ErrUnknownLayer indicates a module's location does not map to a
	// known layer. This is a configuration problem, not a code defect;
	// the check fails fast and returns no partial results.
	ErrUnknownLayer = errors.New("unknown layer")

	// ErrDanglingReference indicates a module references an identifier
	// that is absent from the graph and not marked external.
	ErrDanglingReference = errors.New("dangling reference")
)

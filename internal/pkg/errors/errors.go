package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing records.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStorageRead marks stored bytes that are missing or unreadable.
	// Stores convert it into an empty collection before it reaches callers.
	ErrStorageRead = errors.New("storage read failed")
	// ErrStorageWrite marks a failed write of a collection document.
	ErrStorageWrite = errors.New("storage write failed")
	// ErrImportFormat marks a backup document that is not parseable.
	ErrImportFormat = errors.New("invalid backup file format")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

package lifecycle

import "errors"

var (
	// ErrNotFound means the referenced document does not exist in the
	// snapshot.
	ErrNotFound = errors.New("document not found")

	// ErrValidation means the request was refused before any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition means the document's current status does not
	// permit the requested transition. Nothing was applied.
	ErrInvalidTransition = errors.New("invalid transition")
)

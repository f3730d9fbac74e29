package chronicle

import "github.com/pkg/errors"

var (
	// ErrQuotaExceeded the store has no room for the value
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrInvalidInput a required field was empty
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotSaved the document could not be written back
	ErrNotSaved = errors.New("document not saved")
	// ErrNotInitialized the store was used before Init
	ErrNotInitialized = errors.New("store not initialized")
)

// SaveError reports why the document could not be written. It matches
// ErrNotSaved and whatever the underlying store returned.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return ErrNotSaved.Error() + ": " + e.Err.Error()
}

// Unwrap returns the store error
func (e *SaveError) Unwrap() error {
	return e.Err
}

// Is ErrNotSaved
func (e *SaveError) Is(target error) bool {
	return target == ErrNotSaved
}

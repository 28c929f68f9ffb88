package bookings

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange      = errors.New("invalid date range: start must be before end")
	ErrInvalidRate       = errors.New("nightly rate must be positive")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrSpotNotFound      = errors.New("camping spot not found")
	ErrCapacityExceeded  = errors.New("guest count exceeds spot capacity")
	ErrSlotUnavailable   = errors.New("camping spot is not available for the requested dates")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrForbidden         = errors.New("not allowed to access this booking")
)

// StorageError wraps a persistence fault. It is never retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err carries a persistence fault
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

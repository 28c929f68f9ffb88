package spots

import "errors"

var (
	ErrSpotNotFound          = errors.New("camping spot not found")
	ErrNotSpotOwner          = errors.New("only the owner can modify this camping spot")
	ErrWindowNotFound        = errors.New("unavailability window not found")
	ErrInvalidWindow         = errors.New("unavailability window must end after it starts")
	ErrWindowConflict        = errors.New("unavailability window overlaps an active booking")
	ErrSpotHasActiveBookings = errors.New("camping spot has pending or accepted bookings")
)

var (
	ErrInvalidPrice  = errors.New("price per night must be greater than zero")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

package bookings

import (
	"context"

	"github.com/google/uuid"
)

// SpotCatalog exposes read-only spot data to the ledger
type SpotCatalog interface {
	// GetSpot returns ErrSpotNotFound when the spot does not exist
	GetSpot(ctx context.Context, spotID uuid.UUID) (*SpotInfo, error)
	GetUnavailabilityWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error)
}

// EventPublisher is notified after a booking change has been committed
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, eventType EventType, booking *Booking) error
}

// Recorder receives booking counters
type Recorder interface {
	BookingCreated()
	BookingRejected(reason string)
	BookingTransitioned(status string)
}

type noopPublisher struct{}

func (noopPublisher) PublishBookingEvent(context.Context, EventType, *Booking) error { return nil }

type noopRecorder struct{}

func (noopRecorder) BookingCreated()            {}
func (noopRecorder) BookingRejected(string)     {}
func (noopRecorder) BookingTransitioned(string) {}

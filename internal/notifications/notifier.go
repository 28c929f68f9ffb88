package notifications

import (
	"context"
	"fmt"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/pkg/logger"
)

// Notifier delivers a booking event to the guest
type Notifier interface {
	Notify(ctx context.Context, event *BookingEvent) error
}

// LogNotifier writes the guest message to the structured log. Outgoing
// mail is handled outside this service.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, event *BookingEvent) error {
	n.log.InfoContext(ctx, "guest notification",
		"to", event.GuestEmail,
		"subject", Subject(event),
		"booking_ref", event.BookingRef,
		"status", string(event.Status),
	)
	return nil
}

// Subject renders the message subject for a booking event
func Subject(event *BookingEvent) string {
	stay := fmt.Sprintf("%s to %s", event.StartDate, event.EndDate)
	switch event.Type {
	case bookings.EventBookingRequested:
		return fmt.Sprintf("Booking request %s received for %s", event.BookingRef, stay)
	case bookings.EventBookingAccepted:
		return fmt.Sprintf("Booking %s confirmed for %s", event.BookingRef, stay)
	case bookings.EventBookingDeclined:
		return fmt.Sprintf("Booking %s was declined", event.BookingRef)
	default:
		return "Update on your camping booking"
	}
}

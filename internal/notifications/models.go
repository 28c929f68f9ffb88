package notifications

import (
	"encoding/json"
	"time"

	"github.com/BluezConcepts/API-backend/internal/bookings"

	"github.com/google/uuid"
)

const eventDateLayout = "2006-01-02"

// BookingEvent is the message published for every committed booking change
type BookingEvent struct {
	Type       bookings.EventType `json:"type"`
	BookingID  uuid.UUID          `json:"booking_id"`
	BookingRef string             `json:"booking_ref"`
	SpotID     uuid.UUID          `json:"spot_id"`
	UserID     uuid.UUID          `json:"user_id"`
	Status     bookings.Status    `json:"status"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	TotalPrice string             `json:"total_price"`
	Currency   string             `json:"currency"`
	OccurredAt time.Time          `json:"occurred_at"`

	// Guest contact, filled in when a user lookup is configured
	GuestEmail string `json:"guest_email,omitempty"`
	GuestName  string `json:"guest_name,omitempty"`
}

func NewBookingEvent(eventType bookings.EventType, b *bookings.Booking, at time.Time) *BookingEvent {
	stay := b.Range()
	return &BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		BookingRef: b.BookingRef,
		SpotID:     b.SpotID,
		UserID:     b.UserID,
		Status:     b.Status,
		StartDate:  stay.Start.Format(eventDateLayout),
		EndDate:    stay.End.Format(eventDateLayout),
		TotalPrice: b.TotalPrice.StringFixed(2),
		Currency:   b.Currency,
		OccurredAt: at.UTC(),
	}
}

// PartitionKey keeps every event of one spot on the same partition, in order
func (e *BookingEvent) PartitionKey() string {
	return e.SpotID.String()
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

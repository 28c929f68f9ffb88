package bookings

import (
	"time"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookingRef string     `json:"booking_ref"`
	SpotID     uuid.UUID  `json:"camping_spot_id"`
	UserID     uuid.UUID  `json:"user_id"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Nights     int        `json:"nights"`
	GuestCount int        `json:"guest_count"`
	TotalPrice string     `json:"total_price"` // fixed two decimals, e.g. "150.00"
	Currency   string     `json:"currency"`
	Status     Status     `json:"status"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Count    int               `json:"count"`
}

func ToBookingResponse(b *Booking) BookingResponse {
	stay := b.Range()
	return BookingResponse{
		ID:         b.ID,
		BookingRef: b.BookingRef,
		SpotID:     b.SpotID,
		UserID:     b.UserID,
		StartDate:  stay.Start.Format(dateLayout),
		EndDate:    stay.End.Format(dateLayout),
		Nights:     stay.Nights(),
		GuestCount: b.GuestCount,
		TotalPrice: b.TotalPrice.StringFixed(2),
		Currency:   b.Currency,
		Status:     b.Status,
		DecidedAt:  b.DecidedAt,
		CreatedAt:  b.CreatedAt,
	}
}

func ToBookingListResponse(list []Booking) BookingListResponse {
	out := make([]BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, ToBookingResponse(&list[i]))
	}
	return BookingListResponse{Bookings: out, Count: len(out)}
}

package bookings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Booking is a guest's request to stay at a camping spot
type Booking struct {
	ID         uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingRef string          `gorm:"uniqueIndex;not null" json:"booking_ref"`
	SpotID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"camping_spot_id"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	StartDate  datatypes.Date  `gorm:"not null" json:"start_date"`
	EndDate    datatypes.Date  `gorm:"not null;check:chk_bookings_dates,end_date > start_date" json:"end_date"`
	GuestCount int             `gorm:"not null;check:chk_bookings_guests,guest_count > 0" json:"guest_count"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	Currency   string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	Status     Status          `gorm:"type:varchar(20);index;not null;default:'PENDING';check:chk_bookings_status,status IN ('PENDING','ACCEPTED','DECLINED')" json:"status"`
	DecidedAt  *time.Time      `json:"decided_at,omitempty"`
	CreatedAt  time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Range returns the booked stay as a DateRange
func (b *Booking) Range() DateRange {
	return DateRange{
		Start: toDate(time.Time(b.StartDate)),
		End:   toDate(time.Time(b.EndDate)),
	}
}

// SpotInfo is what the ledger needs to know about a camping spot
type SpotInfo struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	NightlyRate decimal.Decimal
	Capacity    int
}

type EventType string

const (
	EventBookingRequested EventType = "booking.requested"
	EventBookingAccepted  EventType = "booking.accepted"
	EventBookingDeclined  EventType = "booking.declined"
)

func (b *Booking) setRange(r DateRange) {
	b.StartDate = datatypes.Date(r.Start)
	b.EndDate = datatypes.Date(r.End)
}

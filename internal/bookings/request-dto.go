package bookings

// CreateBookingRequest is the body of POST /bookings. Dates are YYYY-MM-DD.
type CreateBookingRequest struct {
	SpotID     string `json:"camping_spot_id" validate:"required,uuid"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
	GuestCount int    `json:"guest_count" validate:"required,min=1"`
}

// LegacyBookingRequest is the camelCase body older clients send to
// POST /my-bookings. userId and totalPrice are ignored: the caller comes from
// the token and the price is always computed.
type LegacyBookingRequest struct {
	CampingSpotID string `json:"campingSpotId" validate:"required,uuid"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	GuestCount    int    `json:"guestCount" validate:"omitempty,min=1"`
}

// ToCreateRequest defaults the guest count to one
func (r *LegacyBookingRequest) ToCreateRequest() *CreateBookingRequest {
	guests := r.GuestCount
	if guests == 0 {
		guests = 1
	}
	return &CreateBookingRequest{
		SpotID:     r.CampingSpotID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		GuestCount: guests,
	}
}

package analytics

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Rows scanned from the aggregate queries

type ownerOverviewRow struct {
	TotalSpots       int             `db:"total_spots"`
	AverageRating    float64         `db:"avg_rating"`
	PendingBookings  int             `db:"pending"`
	AcceptedBookings int             `db:"accepted"`
	DeclinedBookings int             `db:"declined"`
	AcceptedRevenue  decimal.Decimal `db:"accepted_revenue"`
	UpcomingStays    int             `db:"upcoming_stays"`
}

type spotPerformanceRow struct {
	SpotID         string          `db:"spot_id"`
	Name           string          `db:"name"`
	ActiveBookings int             `db:"active_bookings"`
	NightsBooked   int             `db:"nights_booked"`
	Revenue        decimal.Decimal `db:"revenue"`
	AverageRating  float64         `db:"avg_rating"`
}

type dailyBookingRow struct {
	Day      string `db:"day"`
	Requests int    `db:"requests"`
	Accepted int    `db:"accepted"`
}

type guestSummaryRow struct {
	TotalBookings int             `db:"total"`
	Pending       int             `db:"pending"`
	Accepted      int             `db:"accepted"`
	Declined      int             `db:"declined"`
	NightsBooked  int             `db:"nights"`
	TotalSpent    decimal.Decimal `db:"spent"`
	NextStay      sql.NullTime    `db:"next_stay"`
}

// Owner dashboard

type OwnerDashboard struct {
	Overview      OwnerOverview       `json:"overview"`
	Spots         []SpotPerformance   `json:"spots"`
	DailyBookings []DailyBookingStats `json:"daily_bookings"`
	GeneratedAt   time.Time           `json:"generated_at"`
}

type OwnerOverview struct {
	TotalSpots       int     `json:"total_spots"`
	PendingBookings  int     `json:"pending_bookings"`
	AcceptedBookings int     `json:"accepted_bookings"`
	DeclinedBookings int     `json:"declined_bookings"`
	AcceptanceRate   float64 `json:"acceptance_rate"` // percent of decided requests
	AcceptedRevenue  string  `json:"accepted_revenue"`
	Currency         string  `json:"currency"`
	UpcomingStays    int     `json:"upcoming_stays"`
	AverageRating    float64 `json:"average_rating"`
}

type SpotPerformance struct {
	SpotID         string  `json:"camping_spot_id"`
	Name           string  `json:"name"`
	ActiveBookings int     `json:"active_bookings"`
	NightsBooked   int     `json:"nights_booked"`
	Revenue        string  `json:"revenue"`
	AverageRating  float64 `json:"average_rating"`
}

type DailyBookingStats struct {
	Date     string `json:"date"`
	Requests int    `json:"requests"`
	Accepted int    `json:"accepted"`
}

// Guest-facing

type PersonalAnalytics struct {
	TotalBookings int     `json:"total_bookings"`
	Pending       int     `json:"pending"`
	Accepted      int     `json:"accepted"`
	Declined      int     `json:"declined"`
	NightsBooked  int     `json:"nights_booked"`
	TotalSpent    string  `json:"total_spent"`
	Currency      string  `json:"currency"`
	NextStay      *string `json:"next_stay,omitempty"`
}

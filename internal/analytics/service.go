package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/BluezConcepts/API-backend/internal/shared/constants"
	"github.com/BluezConcepts/API-backend/pkg/cache"

	"github.com/google/uuid"
)

const (
	defaultDays = 30
	maxDays     = 365
)

type Service interface {
	GetOwnerDashboard(ctx context.Context, ownerID uuid.UUID, days int) (*OwnerDashboard, error)
	GetPersonalAnalytics(ctx context.Context, userID uuid.UUID) (*PersonalAnalytics, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	currency     string
	now          func() time.Time
}

func NewService(repo Repository, cacheService cache.Service, currency string) Service {
	return &service{
		repo:         repo,
		cacheService: cacheService,
		currency:     currency,
		now:          time.Now,
	}
}

// GetOwnerDashboard is cached briefly per owner and window; booking
// decisions show up once the entry expires
func (s *service) GetOwnerDashboard(ctx context.Context, ownerID uuid.UUID, days int) (*OwnerDashboard, error) {
	days = clampDays(days)

	var dashboard OwnerDashboard
	err := s.cacheService.GetOrSet(ctx, constants.BuildOwnerDashboardKey(ownerID.String(), days), constants.TTL_OWNER_DASHBOARD,
		func() (interface{}, error) {
			return s.buildOwnerDashboard(ctx, ownerID, days)
		}, &dashboard)
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *service) buildOwnerDashboard(ctx context.Context, ownerID uuid.UUID, days int) (*OwnerDashboard, error) {
	now := s.now().UTC()
	today := truncateDay(now)

	overview, err := s.repo.OwnerOverview(ctx, ownerID, today)
	if err != nil {
		return nil, err
	}
	perf, err := s.repo.SpotPerformance(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	daily, err := s.repo.DailyBookingStats(ctx, ownerID, today.AddDate(0, 0, -(days-1)))
	if err != nil {
		return nil, err
	}

	dashboard := &OwnerDashboard{
		Overview: OwnerOverview{
			TotalSpots:       overview.TotalSpots,
			PendingBookings:  overview.PendingBookings,
			AcceptedBookings: overview.AcceptedBookings,
			DeclinedBookings: overview.DeclinedBookings,
			AcceptanceRate:   acceptanceRate(overview.AcceptedBookings, overview.DeclinedBookings),
			AcceptedRevenue:  overview.AcceptedRevenue.StringFixed(2),
			Currency:         s.currency,
			UpcomingStays:    overview.UpcomingStays,
			AverageRating:    overview.AverageRating,
		},
		Spots:         make([]SpotPerformance, 0, len(perf)),
		DailyBookings: fillDays(daily, today, days),
		GeneratedAt:   now,
	}
	for _, p := range perf {
		dashboard.Spots = append(dashboard.Spots, SpotPerformance{
			SpotID:         p.SpotID,
			Name:           p.Name,
			ActiveBookings: p.ActiveBookings,
			NightsBooked:   p.NightsBooked,
			Revenue:        p.Revenue.StringFixed(2),
			AverageRating:  p.AverageRating,
		})
	}
	return dashboard, nil
}

func (s *service) GetPersonalAnalytics(ctx context.Context, userID uuid.UUID) (*PersonalAnalytics, error) {
	row, err := s.repo.GuestSummary(ctx, userID, truncateDay(s.now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("failed to get personal analytics: %w", err)
	}

	result := &PersonalAnalytics{
		TotalBookings: row.TotalBookings,
		Pending:       row.Pending,
		Accepted:      row.Accepted,
		Declined:      row.Declined,
		NightsBooked:  row.NightsBooked,
		TotalSpent:    row.TotalSpent.StringFixed(2),
		Currency:      s.currency,
	}
	if row.NextStay.Valid {
		next := row.NextStay.Time.Format("2006-01-02")
		result.NextStay = &next
	}
	return result, nil
}

// acceptanceRate is the share of decided requests that were accepted, in
// percent with one decimal
func acceptanceRate(accepted, declined int) float64 {
	decided := accepted + declined
	if decided == 0 {
		return 0
	}
	return math.Round(float64(accepted)/float64(decided)*1000) / 10
}

// fillDays returns one entry per day ending today, zero where nothing happened
func fillDays(rows []dailyBookingRow, today time.Time, days int) []DailyBookingStats {
	byDay := make(map[string]dailyBookingRow, len(rows))
	for _, r := range rows {
		byDay[r.Day] = r
	}

	out := make([]DailyBookingStats, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		r := byDay[day]
		out = append(out, DailyBookingStats{Date: day, Requests: r.Requests, Accepted: r.Accepted})
	}
	return out
}

func clampDays(days int) int {
	switch {
	case days <= 0:
		return defaultDays
	case days > maxDays:
		return maxDays
	default:
		return days
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

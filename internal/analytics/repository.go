package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository runs the reporting queries on the read pool
type Repository interface {
	OwnerOverview(ctx context.Context, ownerID uuid.UUID, today time.Time) (*ownerOverviewRow, error)
	SpotPerformance(ctx context.Context, ownerID uuid.UUID) ([]spotPerformanceRow, error)
	DailyBookingStats(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]dailyBookingRow, error)
	GuestSummary(ctx context.Context, userID uuid.UUID, today time.Time) (*guestSummaryRow, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const ownerOverviewQuery = `
SELECT
    (SELECT COUNT(*) FROM camping_spots WHERE owner_id = ?) AS total_spots,
    (SELECT COALESCE(ROUND(AVG(r.rating)::numeric, 2)::float8, 0)
       FROM reviews r JOIN camping_spots s ON s.id = r.spot_id
      WHERE s.owner_id = ?) AS avg_rating,
    COUNT(b.id) FILTER (WHERE b.status = 'PENDING')  AS pending,
    COUNT(b.id) FILTER (WHERE b.status = 'ACCEPTED') AS accepted,
    COUNT(b.id) FILTER (WHERE b.status = 'DECLINED') AS declined,
    COALESCE(SUM(b.total_price) FILTER (WHERE b.status = 'ACCEPTED'), 0) AS accepted_revenue,
    COUNT(b.id) FILTER (WHERE b.status = 'ACCEPTED' AND b.start_date >= ?) AS upcoming_stays
FROM bookings b
JOIN camping_spots cs ON cs.id = b.spot_id
WHERE cs.owner_id = ?`

func (r *repository) OwnerOverview(ctx context.Context, ownerID uuid.UUID, today time.Time) (*ownerOverviewRow, error) {
	var row ownerOverviewRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(ownerOverviewQuery), ownerID, ownerID, today, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner overview: %w", err)
	}
	return &row, nil
}

const spotPerformanceQuery = `
SELECT
    cs.id::text AS spot_id,
    cs.name,
    COUNT(b.id) FILTER (WHERE b.status IN ('PENDING', 'ACCEPTED')) AS active_bookings,
    COALESCE(SUM(b.end_date - b.start_date) FILTER (WHERE b.status = 'ACCEPTED'), 0) AS nights_booked,
    COALESCE(SUM(b.total_price) FILTER (WHERE b.status = 'ACCEPTED'), 0) AS revenue,
    COALESCE((SELECT ROUND(AVG(r.rating)::numeric, 2)::float8 FROM reviews r WHERE r.spot_id = cs.id), 0) AS avg_rating
FROM camping_spots cs
LEFT JOIN bookings b ON b.spot_id = cs.id
WHERE cs.owner_id = ?
GROUP BY cs.id, cs.name
ORDER BY revenue DESC, cs.name ASC`

func (r *repository) SpotPerformance(ctx context.Context, ownerID uuid.UUID) ([]spotPerformanceRow, error) {
	var rows []spotPerformanceRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(spotPerformanceQuery), ownerID); err != nil {
		return nil, fmt.Errorf("failed to load spot performance: %w", err)
	}
	return rows, nil
}

const dailyBookingQuery = `
SELECT
    to_char(date_trunc('day', b.created_at), 'YYYY-MM-DD') AS day,
    COUNT(*) AS requests,
    COUNT(*) FILTER (WHERE b.status = 'ACCEPTED') AS accepted
FROM bookings b
JOIN camping_spots cs ON cs.id = b.spot_id
WHERE cs.owner_id = ? AND b.created_at >= ?
GROUP BY day
ORDER BY day`

func (r *repository) DailyBookingStats(ctx context.Context, ownerID uuid.UUID, since time.Time) ([]dailyBookingRow, error) {
	var rows []dailyBookingRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(dailyBookingQuery), ownerID, since); err != nil {
		return nil, fmt.Errorf("failed to load daily booking stats: %w", err)
	}
	return rows, nil
}

const guestSummaryQuery = `
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE status = 'PENDING')  AS pending,
    COUNT(*) FILTER (WHERE status = 'ACCEPTED') AS accepted,
    COUNT(*) FILTER (WHERE status = 'DECLINED') AS declined,
    COALESCE(SUM(end_date - start_date) FILTER (WHERE status = 'ACCEPTED'), 0) AS nights,
    COALESCE(SUM(total_price) FILTER (WHERE status = 'ACCEPTED'), 0) AS spent,
    MIN(start_date) FILTER (WHERE status = 'ACCEPTED' AND start_date >= ?) AS next_stay
FROM bookings
WHERE user_id = ?`

func (r *repository) GuestSummary(ctx context.Context, userID uuid.UUID, today time.Time) (*guestSummaryRow, error) {
	var row guestSummaryRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(guestSummaryQuery), today, userID); err != nil {
		return nil, fmt.Errorf("failed to load guest summary: %w", err)
	}
	return &row, nil
}

package spots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// SpotSummary is one row of the catalog aggregate query
type SpotSummary struct {
	ID            uuid.UUID       `db:"id"`
	OwnerID       uuid.UUID       `db:"owner_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Location      string          `db:"location"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Capacity      int             `db:"capacity"`
	CreatedAt     time.Time       `db:"created_at"`
	AverageRating float64         `db:"avg_rating"`
	ReviewCount   int             `db:"review_count"`
	ImageURL      sql.NullString  `db:"image_url"`
	Tags          pq.StringArray  `db:"tags"`
	Amenities     pq.StringArray  `db:"amenities"`
}

// ListFilter is the normalised form of SpotListQuery
type ListFilter struct {
	Search    string
	Location  string
	TagSlugs  []string
	MinGuests int
	Page      int
	Limit     int
}

func (f ListFilter) offset() int {
	return (f.Page - 1) * f.Limit
}

type ReadModel interface {
	ListSpots(ctx context.Context, filter ListFilter) ([]SpotSummary, int, error)
	GetSpot(ctx context.Context, id uuid.UUID) (*SpotSummary, error)
	Featured(ctx context.Context, limit int) ([]SpotSummary, error)
	OwnerSpots(ctx context.Context, ownerID uuid.UUID) ([]SpotSummary, error)
}

type readModel struct {
	db *sqlx.DB
}

// NewReadModel builds the catalog queries on top of a lib/pq sqlx handle
func NewReadModel(db *sqlx.DB) ReadModel {
	return &readModel{db: db}
}

const summarySelect = `
SELECT cs.id, cs.owner_id, cs.name, cs.description, cs.location,
       cs.price_per_night, cs.capacity, cs.created_at,
       COALESCE(rv.avg_rating, 0)   AS avg_rating,
       COALESCE(rv.review_count, 0) AS review_count,
       img.image_url,
       COALESCE(tg.tags, '{}')      AS tags,
       COALESCE(am.amenities, '{}') AS amenities
FROM camping_spots cs
LEFT JOIN LATERAL (
    SELECT ROUND(AVG(r.rating)::numeric, 2)::float8 AS avg_rating, COUNT(*) AS review_count
    FROM reviews r WHERE r.spot_id = cs.id
) rv ON TRUE
LEFT JOIN LATERAL (
    SELECT i.image_url FROM camping_spot_images i
    WHERE i.spot_id = cs.id
    ORDER BY i.upload_date DESC, i.id DESC
    LIMIT 1
) img ON TRUE
LEFT JOIN LATERAL (
    SELECT array_agg(t.name ORDER BY t.name) AS tags
    FROM camping_spot_tags st JOIN tags t ON t.id = st.tag_id
    WHERE st.spot_id = cs.id
) tg ON TRUE
LEFT JOIN LATERAL (
    SELECT array_agg(a.name ORDER BY a.name) AS amenities
    FROM camping_spot_amenities sa JOIN amenities a ON a.id = sa.amenity_id
    WHERE sa.spot_id = cs.id
) am ON TRUE
`

// buildWhere returns the filter clause with ? placeholders and its arguments
func buildWhere(f ListFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		conds = append(conds, "(cs.name ILIKE ? OR cs.description ILIKE ? OR cs.location ILIKE ?)")
		args = append(args, like, like, like)
	}
	if f.Location != "" {
		conds = append(conds, "cs.location ILIKE ?")
		args = append(args, "%"+f.Location+"%")
	}
	if f.MinGuests > 0 {
		conds = append(conds, "cs.capacity >= ?")
		args = append(args, f.MinGuests)
	}
	if len(f.TagSlugs) > 0 {
		// every requested tag must be present
		conds = append(conds, `(SELECT COUNT(DISTINCT t.slug) FROM camping_spot_tags st
            JOIN tags t ON t.id = st.tag_id
            WHERE st.spot_id = cs.id AND t.slug = ANY(?)) = ?`)
		args = append(args, pq.Array(f.TagSlugs), len(f.TagSlugs))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *readModel) ListSpots(ctx context.Context, filter ListFilter) ([]SpotSummary, int, error) {
	where, args := buildWhere(filter)

	var total int
	countQuery := r.db.Rebind("SELECT COUNT(*) FROM camping_spots cs" + where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count camping spots: %w", err)
	}

	query := r.db.Rebind(summarySelect + where +
		" ORDER BY avg_rating DESC, cs.created_at ASC, cs.id ASC LIMIT ? OFFSET ?")
	args = append(args, filter.Limit, filter.offset())

	spots := []SpotSummary{}
	if err := r.db.SelectContext(ctx, &spots, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list camping spots: %w", err)
	}
	return spots, total, nil
}

func (r *readModel) GetSpot(ctx context.Context, id uuid.UUID) (*SpotSummary, error) {
	var spot SpotSummary
	err := r.db.GetContext(ctx, &spot, r.db.Rebind(summarySelect+" WHERE cs.id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpotNotFound
		}
		return nil, fmt.Errorf("failed to get camping spot: %w", err)
	}
	return &spot, nil
}

func (r *readModel) Featured(ctx context.Context, limit int) ([]SpotSummary, error) {
	spots := []SpotSummary{}
	query := r.db.Rebind(summarySelect + " ORDER BY cs.created_at ASC, cs.id ASC LIMIT ?")
	if err := r.db.SelectContext(ctx, &spots, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list featured camping spots: %w", err)
	}
	return spots, nil
}

func (r *readModel) OwnerSpots(ctx context.Context, ownerID uuid.UUID) ([]SpotSummary, error) {
	spots := []SpotSummary{}
	query := r.db.Rebind(summarySelect + " WHERE cs.owner_id = ? ORDER BY cs.created_at DESC")
	if err := r.db.SelectContext(ctx, &spots, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list owner camping spots: %w", err)
	}
	return spots, nil
}

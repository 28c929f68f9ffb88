package bookings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLSTATE raised by the no-overlap exclusion constraint
const pgExclusionViolation = "23P01"

type Repository interface {
	// WithSpotLock runs fn in a transaction holding a row lock on the spot.
	// The Repository passed to fn is bound to that transaction.
	WithSpotLock(ctx context.Context, spotID uuid.UUID, fn func(tx Repository) error) error

	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	// TransitionStatus moves a booking from one status to another only if it is still in from
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to Status, at time.Time) (*Booking, error)

	ListActiveForSpot(ctx context.Context, spotID uuid.UUID, within DateRange) ([]Booking, error)
	// ListWindows reads the spot's unavailability windows on this repository's
	// connection, so inside WithSpotLock it sees the locked snapshot
	ListWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithSpotLock(ctx context.Context, spotID uuid.UUID, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var spot struct {
			ID uuid.UUID `gorm:"column:id"`
		}

		err := tx.Table("camping_spots").
			Select("id").
			Where("id = ?", spotID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&spot).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSpotNotFound
			}
			return storageError("lock spot", err)
		}

		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return ErrSlotUnavailable
		}
		return storageError("create booking", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, storageError("get booking", err)
	}
	return &booking, nil
}

func (r *repository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to Status, at time.Time) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Booking{}).
			Where("id = ? AND status = ?", id, from).
			Updates(map[string]interface{}{
				"status":     to,
				"decided_at": at,
				"updated_at": at,
			})
		if result.Error != nil {
			return storageError("transition booking", result.Error)
		}

		if err := tx.Where("id = ?", id).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return storageError("reload booking", err)
		}

		// the row exists but someone else already moved it
		if result.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) ListActiveForSpot(ctx context.Context, spotID uuid.UUID, within DateRange) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Where("status IN ?", ActiveStatuses()).
		Where("start_date < ? AND end_date > ?", within.End, within.Start).
		Order("start_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, storageError("list active bookings", err)
	}
	return bookings, nil
}

type windowRow struct {
	StartDate datatypes.Date
	EndDate   datatypes.Date
}

func (r *repository) ListWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error) {
	var rows []windowRow
	err := r.db.WithContext(ctx).
		Table("unavailability_windows").
		Select("start_date, end_date").
		Where("spot_id = ?", spotID).
		Order("start_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storageError("list unavailability windows", err)
	}

	windows := make([]UnavailabilityWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, UnavailabilityWindow{
			SpotID: spotID,
			Range: DateRange{
				Start: toDate(time.Time(row.StartDate)),
				End:   toDate(time.Time(row.EndDate)),
			},
		})
	}
	return windows, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, storageError("list user bookings", err)
	}
	return bookings, nil
}

func (r *repository) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("created_at ASC, id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, storageError("list spot bookings", err)
	}
	return bookings, nil
}

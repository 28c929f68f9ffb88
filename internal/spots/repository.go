package spots

import (
	"context"
	"errors"
	"fmt"

	"github.com/BluezConcepts/API-backend/internal/bookings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the write side of the catalog
type Repository interface {
	Create(ctx context.Context, spot *Spot) error
	GetByID(ctx context.Context, id uuid.UUID) (*Spot, error)
	Update(ctx context.Context, spot *Spot) error
	// Delete fails with ErrSpotHasActiveBookings while PENDING or ACCEPTED bookings exist
	Delete(ctx context.Context, id uuid.UUID) error

	AddImage(ctx context.Context, image *Image) error
	ListImages(ctx context.Context, spotID uuid.UUID) ([]Image, error)

	// CreateWindow takes the same spot row lock as booking creation
	CreateWindow(ctx context.Context, window *UnavailabilityWindow) error
	DeleteWindow(ctx context.Context, spotID, windowID uuid.UUID) error
	ListWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error)

	CreateReview(ctx context.Context, review *Review) error
	ListReviews(ctx context.Context, spotID uuid.UUID) ([]Review, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, spot *Spot) error {
	if err := r.db.WithContext(ctx).Create(spot).Error; err != nil {
		return fmt.Errorf("failed to create camping spot: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Spot, error) {
	var spot Spot
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("upload_date DESC")
		}).
		Where("id = ?", id).
		First(&spot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSpotNotFound
		}
		return nil, fmt.Errorf("failed to get camping spot: %w", err)
	}
	return &spot, nil
}

func (r *repository) Update(ctx context.Context, spot *Spot) error {
	result := r.db.WithContext(ctx).Model(&Spot{}).
		Where("id = ?", spot.ID).
		Updates(map[string]interface{}{
			"name":            spot.Name,
			"description":     spot.Description,
			"location":        spot.Location,
			"price_per_night": spot.PricePerNight,
			"capacity":        spot.Capacity,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update camping spot: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSpotNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSpot(tx, id); err != nil {
			return err
		}

		var active int64
		err := tx.Model(&bookings.Booking{}).
			Where("spot_id = ? AND status IN ?", id, bookings.ActiveStatuses()).
			Count(&active).Error
		if err != nil {
			return fmt.Errorf("failed to count active bookings: %w", err)
		}
		if active > 0 {
			return ErrSpotHasActiveBookings
		}

		if err := tx.Where("id = ?", id).Delete(&Spot{}).Error; err != nil {
			return fmt.Errorf("failed to delete camping spot: %w", err)
		}
		return nil
	})
}

func (r *repository) AddImage(ctx context.Context, image *Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to add image: %w", err)
	}
	return nil
}

func (r *repository) ListImages(ctx context.Context, spotID uuid.UUID) ([]Image, error) {
	var images []Image
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("upload_date DESC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

func (r *repository) CreateWindow(ctx context.Context, window *UnavailabilityWindow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockSpot(tx, window.SpotID); err != nil {
			return err
		}

		var overlapping int64
		err := tx.Model(&bookings.Booking{}).
			Where("spot_id = ? AND status IN ?", window.SpotID, bookings.ActiveStatuses()).
			Where("start_date < ? AND end_date > ?", window.EndDate, window.StartDate).
			Count(&overlapping).Error
		if err != nil {
			return fmt.Errorf("failed to check bookings: %w", err)
		}
		if overlapping > 0 {
			return ErrWindowConflict
		}

		if err := tx.Omit("Spot").Create(window).Error; err != nil {
			return fmt.Errorf("failed to create unavailability window: %w", err)
		}
		return nil
	})
}

func (r *repository) DeleteWindow(ctx context.Context, spotID, windowID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND spot_id = ?", windowID, spotID).
		Delete(&UnavailabilityWindow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete unavailability window: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWindowNotFound
	}
	return nil
}

func (r *repository) ListWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error) {
	var windows []UnavailabilityWindow
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("start_date ASC").
		Find(&windows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unavailability windows: %w", err)
	}
	return windows, nil
}

func (r *repository) CreateReview(ctx context.Context, review *Review) error {
	if err := r.db.WithContext(ctx).Omit("Spot").Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *repository) ListReviews(ctx context.Context, spotID uuid.UUID) ([]Review, error) {
	var reviews []Review
	err := r.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// lockSpot takes the row lock that serialises bookings and windows per spot
func lockSpot(tx *gorm.DB, spotID uuid.UUID) error {
	var spot Spot
	err := tx.Select("id").
		Where("id = ?", spotID).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Take(&spot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSpotNotFound
		}
		return fmt.Errorf("failed to lock camping spot: %w", err)
	}
	return nil
}

package tags

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListTags(ctx context.Context) ([]Tag, error)
	ListAmenities(ctx context.Context) ([]Amenity, error)

	// EnsureTags returns the tags with the given names, creating missing ones
	EnsureTags(ctx context.Context, names []string) ([]Tag, error)
	EnsureAmenities(ctx context.Context, names []string) ([]Amenity, error)

	ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, tagIDs []uuid.UUID) error
	ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, amenityIDs []uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListTags(ctx context.Context) ([]Tag, error) {
	var out []Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return out, nil
}

func (r *repository) ListAmenities(ctx context.Context) ([]Amenity, error) {
	var out []Amenity
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	return out, nil
}

func (r *repository) EnsureTags(ctx context.Context, names []string) ([]Tag, error) {
	return ensureLabels(ctx, r.db, names, func(name, slug string) Tag {
		return Tag{Name: name, Slug: slug}
	})
}

func (r *repository) EnsureAmenities(ctx context.Context, names []string) ([]Amenity, error) {
	return ensureLabels(ctx, r.db, names, func(name, slug string) Amenity {
		return Amenity{Name: name, Slug: slug}
	})
}

// ensureLabels inserts missing rows (ignoring slug conflicts) and reads them all back
func ensureLabels[T Tag | Amenity](ctx context.Context, db *gorm.DB, names []string, build func(name, slug string) T) ([]T, error) {
	names = CleanNames(names)
	if len(names) == 0 {
		return nil, nil
	}

	rows := make([]T, 0, len(names))
	slugs := make([]string, 0, len(names))
	for _, name := range names {
		slug := GenerateSlug(name)
		rows = append(rows, build(name, slug))
		slugs = append(slugs, slug)
	}

	var out []T
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
		return tx.Where("slug IN ?", slugs).Order("name ASC").Find(&out).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure labels: %w", err)
	}
	return out, nil
}

func (r *repository) ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, tagIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("spot_id = ?", spotID).Delete(&SpotTag{}).Error; err != nil {
			return fmt.Errorf("failed to clear spot tags: %w", err)
		}
		if len(tagIDs) == 0 {
			return nil
		}

		links := make([]SpotTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			links = append(links, SpotTag{SpotID: spotID, TagID: id})
		}
		if err := tx.Omit("Tag").Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link spot tags: %w", err)
		}
		return nil
	})
}

func (r *repository) ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, amenityIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("spot_id = ?", spotID).Delete(&SpotAmenity{}).Error; err != nil {
			return fmt.Errorf("failed to clear spot amenities: %w", err)
		}
		if len(amenityIDs) == 0 {
			return nil
		}

		links := make([]SpotAmenity, 0, len(amenityIDs))
		for _, id := range amenityIDs {
			links = append(links, SpotAmenity{SpotID: spotID, AmenityID: id})
		}
		if err := tx.Omit("Amenity").Create(&links).Error; err != nil {
			return fmt.Errorf("failed to link spot amenities: %w", err)
		}
		return nil
	})
}

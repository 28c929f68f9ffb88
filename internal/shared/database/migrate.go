package database

import (
	"fmt"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/internal/spots"
	"github.com/BluezConcepts/API-backend/internal/tags"
	"github.com/BluezConcepts/API-backend/internal/users"

	"gorm.io/gorm"
)

// Migrate creates extensions, tables and the constraints GORM cannot express
func Migrate(db *gorm.DB) error {
	if err := CreateExtensions(db); err != nil {
		return err
	}

	err := db.AutoMigrate(
		&users.User{},
		&tags.Tag{},
		&tags.Amenity{},
		&spots.Spot{},
		&spots.Image{},
		&spots.Review{},
		&spots.UnavailabilityWindow{},
		&bookings.Booking{},
		&tags.SpotTag{},
		&tags.SpotAmenity{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return MigrateConstraints(db)
}

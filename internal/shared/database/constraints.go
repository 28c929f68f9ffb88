package database

import (
	"fmt"

	"gorm.io/gorm"
)

// CreateExtensions installs uuid generation and the gist operator classes
// the booking exclusion constraint needs
func CreateExtensions(db *gorm.DB) error {
	for _, ext := range []string{"uuid-ossp", "btree_gist"} {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "` + ext + `"`).Error; err != nil {
			return fmt.Errorf("create extension %s: %w", ext, err)
		}
	}
	return nil
}

// constraint is added only when pg_constraint has no row with that name
type constraint struct {
	name string
	ddl  string
}

var constraints = []constraint{
	{
		// no two active bookings of a spot may share a night
		name: "bookings_no_overlap",
		ddl: `ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
			EXCLUDE USING gist (
				spot_id WITH =,
				daterange(start_date, end_date, '[)') WITH &&
			) WHERE (status IN ('PENDING', 'ACCEPTED'))`,
	},
	{
		name: "fk_bookings_spot",
		ddl: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_spot
			FOREIGN KEY (spot_id) REFERENCES camping_spots(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_bookings_user",
		ddl: `ALTER TABLE bookings ADD CONSTRAINT fk_bookings_user
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_camping_spots_owner",
		ddl: `ALTER TABLE camping_spots ADD CONSTRAINT fk_camping_spots_owner
			FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_images_spot",
		ddl: `ALTER TABLE camping_spot_images ADD CONSTRAINT fk_images_spot
			FOREIGN KEY (spot_id) REFERENCES camping_spots(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_reviews_spot",
		ddl: `ALTER TABLE reviews ADD CONSTRAINT fk_reviews_spot
			FOREIGN KEY (spot_id) REFERENCES camping_spots(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_reviews_user",
		ddl: `ALTER TABLE reviews ADD CONSTRAINT fk_reviews_user
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_windows_spot",
		ddl: `ALTER TABLE unavailability_windows ADD CONSTRAINT fk_windows_spot
			FOREIGN KEY (spot_id) REFERENCES camping_spots(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_spot_tags_spot",
		ddl: `ALTER TABLE camping_spot_tags ADD CONSTRAINT fk_spot_tags_spot
			FOREIGN KEY (spot_id) REFERENCES camping_spots(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_spot_tags_tag",
		ddl: `ALTER TABLE camping_spot_tags ADD CONSTRAINT fk_spot_tags_tag
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_spot_amenities_spot",
		ddl: `ALTER TABLE camping_spot_amenities ADD CONSTRAINT fk_spot_amenities_spot
			FOREIGN KEY (spot_id) REFERENCES camping_spots(id) ON DELETE CASCADE`,
	},
	{
		name: "fk_spot_amenities_amenity",
		ddl: `ALTER TABLE camping_spot_amenities ADD CONSTRAINT fk_spot_amenities_amenity
			FOREIGN KEY (amenity_id) REFERENCES amenities(id) ON DELETE CASCADE`,
	},
}

// MigrateConstraints adds the foreign keys and the booking exclusion constraint
func MigrateConstraints(db *gorm.DB) error {
	for _, c := range constraints {
		var exists bool
		err := db.Raw(`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)`, c.name).Scan(&exists).Error
		if err != nil {
			return fmt.Errorf("check constraint %s: %w", c.name, err)
		}
		if exists {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}

	err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_spot_dates
		ON bookings (spot_id, start_date, end_date)`).Error
	if err != nil {
		return fmt.Errorf("create booking range index: %w", err)
	}
	return nil
}

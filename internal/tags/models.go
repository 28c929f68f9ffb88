package tags

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a free-form label such as "lakeside" or "pet friendly"
type Tag struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Amenity is a facility offered at a spot, e.g. "showers"
type Amenity struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// SpotTag links a camping spot to a tag
type SpotTag struct {
	SpotID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Tag    Tag       `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE;"`
}

// SpotAmenity links a camping spot to an amenity
type SpotAmenity struct {
	SpotID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	AmenityID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Amenity   Amenity   `gorm:"foreignKey:AmenityID;constraint:OnDelete:CASCADE;"`
}

func (Tag) TableName() string {
	return "tags"
}

func (Amenity) TableName() string {
	return "amenities"
}

func (SpotTag) TableName() string {
	return "camping_spot_tags"
}

func (SpotAmenity) TableName() string {
	return "camping_spot_amenities"
}

func (t *Tag) ToResponse() LabelResponse {
	return LabelResponse{ID: t.ID.String(), Name: t.Name, Slug: t.Slug}
}

func (a *Amenity) ToResponse() LabelResponse {
	return LabelResponse{ID: a.ID.String(), Name: a.Name, Slug: a.Slug}
}

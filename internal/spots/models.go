package spots

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Spot is a camping spot offered by an owner
type Spot struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	OwnerID       uuid.UUID       `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name          string          `json:"name" gorm:"not null;size:255"`
	Description   string          `json:"description" gorm:"type:text"`
	Location      string          `json:"location" gorm:"not null;size:255;index"`
	PricePerNight decimal.Decimal `json:"price_per_night" gorm:"type:numeric(10,2);not null;check:chk_camping_spots_price,price_per_night > 0"`
	Capacity      int             `json:"capacity" gorm:"not null;check:chk_camping_spots_capacity,capacity > 0"`

	Images []Image `json:"images,omitempty" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Image struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SpotID     uuid.UUID `json:"camping_spot_id" gorm:"type:uuid;not null;index"`
	ImageURL   string    `json:"image_url" gorm:"not null;size:1000"`
	UploadDate time.Time `json:"upload_date" gorm:"autoCreateTime"`
}

type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SpotID    uuid.UUID `json:"camping_spot_id" gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Rating    int       `json:"rating" gorm:"not null;check:chk_reviews_rating,rating BETWEEN 1 AND 5"`
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Spot *Spot `json:"-" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE;"`
}

// UnavailabilityWindow blocks a half-open date range on a spot
type UnavailabilityWindow struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	SpotID    uuid.UUID      `json:"camping_spot_id" gorm:"type:uuid;not null;index"`
	StartDate datatypes.Date `json:"start_date" gorm:"not null"`
	EndDate   datatypes.Date `json:"end_date" gorm:"not null;check:chk_unavailability_dates,end_date > start_date"`
	Reason    string         `json:"reason" gorm:"size:500"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`

	Spot *Spot `json:"-" gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE;"`
}

func (Spot) TableName() string {
	return "camping_spots"
}

func (Image) TableName() string {
	return "camping_spot_images"
}

func (Review) TableName() string {
	return "reviews"
}

func (UnavailabilityWindow) TableName() string {
	return "unavailability_windows"
}

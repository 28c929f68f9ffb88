package spots

import "github.com/shopspring/decimal"

type SpotListQuery struct {
	Search    string `form:"search"`
	Location  string `form:"location"`
	Tags      string `form:"tags"` // comma separated tag names or slugs
	MinGuests int    `form:"min_guests" binding:"omitempty,min=1"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type CreateSpotRequest struct {
	Name          string          `json:"name" binding:"required,min=3,max=255"`
	Description   string          `json:"description" binding:"max=5000"`
	Location      string          `json:"location" binding:"required,max=255"`
	PricePerNight decimal.Decimal `json:"price_per_night" binding:"required"`
	Capacity      int             `json:"capacity" binding:"required,min=1"`
	Tags          []string        `json:"tags"`
	Amenities     []string        `json:"amenities"`
	ImageURLs     []string        `json:"image_urls" binding:"omitempty,dive,url"`
}

// UpdateSpotRequest applies only the fields that are present
type UpdateSpotRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=3,max=255"`
	Description   *string          `json:"description" binding:"omitempty,max=5000"`
	Location      *string          `json:"location" binding:"omitempty,max=255"`
	PricePerNight *decimal.Decimal `json:"price_per_night"`
	Capacity      *int             `json:"capacity" binding:"omitempty,min=1"`
	Tags          *[]string        `json:"tags"`
	Amenities     *[]string        `json:"amenities"`
}

type AddImageRequest struct {
	ImageURL string `json:"image_url" binding:"required,url,max=1000"`
}

type CreateUnavailabilityRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=500"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

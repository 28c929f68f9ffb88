package spots

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SpotSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight string    `json:"price_per_night"`
	Capacity      int       `json:"capacity"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
	ImageURL      string    `json:"image_url"`
	Tags          []string  `json:"tags"`
	Amenities     []string  `json:"amenities"`
	CreatedAt     time.Time `json:"created_at"`
}

type SpotDetailResponse struct {
	SpotSummaryResponse
	Images []ImageResponse `json:"images"`
}

type SpotListResponse struct {
	Spots      []SpotSummaryResponse `json:"spots"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"total_pages"`
}

type ImageResponse struct {
	ID         uuid.UUID `json:"id"`
	ImageURL   string    `json:"image_url"`
	UploadDate time.Time `json:"upload_date"`
}

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type WindowResponse struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"camping_spot_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
}

func formatPrice(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (s *SpotSummary) ToResponse(placeholder string) SpotSummaryResponse {
	image := placeholder
	if s.ImageURL.Valid && s.ImageURL.String != "" {
		image = s.ImageURL.String
	}
	return SpotSummaryResponse{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Description:   s.Description,
		Location:      s.Location,
		PricePerNight: formatPrice(s.PricePerNight),
		Capacity:      s.Capacity,
		AverageRating: s.AverageRating,
		ReviewCount:   s.ReviewCount,
		ImageURL:      image,
		Tags:          nonNil(s.Tags),
		Amenities:     nonNil(s.Amenities),
		CreatedAt:     s.CreatedAt,
	}
}

func (i *Image) ToResponse() ImageResponse {
	return ImageResponse{ID: i.ID, ImageURL: i.ImageURL, UploadDate: i.UploadDate}
}

func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func (w *UnavailabilityWindow) ToResponse() WindowResponse {
	return WindowResponse{
		ID:        w.ID,
		SpotID:    w.SpotID,
		StartDate: time.Time(w.StartDate).Format(dateLayout),
		EndDate:   time.Time(w.EndDate).Format(dateLayout),
		Reason:    w.Reason,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

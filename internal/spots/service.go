package spots

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/BluezConcepts/API-backend/internal/bookings"
	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/internal/shared/constants"
	"github.com/BluezConcepts/API-backend/internal/tags"
	"github.com/BluezConcepts/API-backend/pkg/cache"
	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	dateLayout   = "2006-01-02"
	defaultPage  = 1
	defaultLimit = 10
)

// LabelService attaches tags and amenities to a spot
type LabelService interface {
	ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, names []string) error
	ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, names []string) error
}

type Service interface {
	ListSpots(ctx context.Context, query SpotListQuery) (*SpotListResponse, error)
	GetSpot(ctx context.Context, spotID uuid.UUID) (*SpotDetailResponse, error)
	GetFeatured(ctx context.Context) ([]SpotSummaryResponse, error)
	GetOwnerSpots(ctx context.Context, ownerID uuid.UUID) ([]SpotSummaryResponse, error)

	CreateSpot(ctx context.Context, ownerID uuid.UUID, req *CreateSpotRequest) (*SpotDetailResponse, error)
	UpdateSpot(ctx context.Context, ownerID, spotID uuid.UUID, req *UpdateSpotRequest) (*SpotDetailResponse, error)
	DeleteSpot(ctx context.Context, ownerID, spotID uuid.UUID) error
	AddImage(ctx context.Context, ownerID, spotID uuid.UUID, req *AddImageRequest) (*ImageResponse, error)

	GetUnavailability(ctx context.Context, spotID uuid.UUID) ([]WindowResponse, error)
	AddUnavailability(ctx context.Context, ownerID, spotID uuid.UUID, req *CreateUnavailabilityRequest) (*WindowResponse, error)
	RemoveUnavailability(ctx context.Context, ownerID, spotID, windowID uuid.UUID) error

	GetReviews(ctx context.Context, spotID uuid.UUID) ([]ReviewResponse, error)
	AddReview(ctx context.Context, userID, spotID uuid.UUID, req *CreateReviewRequest) (*ReviewResponse, error)
}

type service struct {
	repo   Repository
	reads  ReadModel
	labels LabelService
	cache  cache.Service
	cfg    config.BookingConfig
	log    *logger.Logger
}

func NewService(repo Repository, reads ReadModel, labels LabelService, cacheService cache.Service, cfg config.BookingConfig) Service {
	return &service{
		repo:   repo,
		reads:  reads,
		labels: labels,
		cache:  cacheService,
		cfg:    cfg,
		log:    logger.GetDefault(),
	}
}

// normaliseQuery applies paging defaults and turns the tag list into slugs
func normaliseQuery(q SpotListQuery) ListFilter {
	f := ListFilter{
		Search:    strings.TrimSpace(q.Search),
		Location:  strings.TrimSpace(q.Location),
		MinGuests: q.MinGuests,
		Page:      q.Page,
		Limit:     q.Limit,
	}
	if f.Page <= 0 {
		f.Page = defaultPage
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if q.Tags != "" {
		for _, name := range tags.CleanNames(strings.Split(q.Tags, ",")) {
			f.TagSlugs = append(f.TagSlugs, tags.GenerateSlug(name))
		}
		// every tag must match, so order does not change the result set
		slices.Sort(f.TagSlugs)
	}
	return f
}

func (s *service) ListSpots(ctx context.Context, query SpotListQuery) (*SpotListResponse, error) {
	filter := normaliseQuery(query)
	key := constants.BuildSpotListKey(filter.Page, filter.Limit, filter.MinGuests, filter.Search, filter.Location, filter.TagSlugs)

	var out SpotListResponse
	err := s.cache.GetOrSet(ctx, key, constants.TTL_SPOTS_LIST, func() (interface{}, error) {
		rows, total, err := s.reads.ListSpots(ctx, filter)
		if err != nil {
			return nil, err
		}
		return &SpotListResponse{
			Spots:      s.summaries(rows),
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		}, nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) GetSpot(ctx context.Context, spotID uuid.UUID) (*SpotDetailResponse, error) {
	var out SpotDetailResponse
	err := s.cache.GetOrSet(ctx, constants.BuildSpotDetailKey(spotID.String()), constants.TTL_SPOT_DETAIL, func() (interface{}, error) {
		row, err := s.reads.GetSpot(ctx, spotID)
		if err != nil {
			return nil, err
		}
		images, err := s.repo.ListImages(ctx, spotID)
		if err != nil {
			return nil, err
		}

		detail := SpotDetailResponse{
			SpotSummaryResponse: row.ToResponse(s.cfg.PlaceholderImageURL),
			Images:              make([]ImageResponse, 0, len(images)),
		}
		for i := range images {
			detail.Images = append(detail.Images, images[i].ToResponse())
		}
		return detail, nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) GetFeatured(ctx context.Context) ([]SpotSummaryResponse, error) {
	limit := s.cfg.FeaturedLimit
	if limit <= 0 {
		limit = 5
	}

	var out []SpotSummaryResponse
	err := s.cache.GetOrSet(ctx, constants.BuildFeaturedSpotsKey(limit), constants.TTL_SPOTS_FEATURED, func() (interface{}, error) {
		rows, err := s.reads.Featured(ctx, limit)
		if err != nil {
			return nil, err
		}
		return s.summaries(rows), nil
	}, &out)
	return out, err
}

// GetOwnerSpots is never cached, owners expect to see their edits immediately
func (s *service) GetOwnerSpots(ctx context.Context, ownerID uuid.UUID) ([]SpotSummaryResponse, error) {
	rows, err := s.reads.OwnerSpots(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.summaries(rows), nil
}

func (s *service) CreateSpot(ctx context.Context, ownerID uuid.UUID, req *CreateSpotRequest) (*SpotDetailResponse, error) {
	if !req.PricePerNight.IsPositive() {
		return nil, ErrInvalidPrice
	}

	spot := &Spot{
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Location:      strings.TrimSpace(req.Location),
		PricePerNight: req.PricePerNight.Round(2),
		Capacity:      req.Capacity,
	}
	for _, url := range req.ImageURLs {
		spot.Images = append(spot.Images, Image{ImageURL: url})
	}

	if err := s.repo.Create(ctx, spot); err != nil {
		return nil, err
	}
	if err := s.labels.ReplaceSpotTags(ctx, spot.ID, req.Tags); err != nil {
		return nil, err
	}
	if err := s.labels.ReplaceSpotAmenities(ctx, spot.ID, req.Amenities); err != nil {
		return nil, err
	}

	s.invalidateSpot(ctx, spot.ID)
	s.log.InfoContext(ctx, "camping spot created", "spot_id", spot.ID.String(), "owner_id", ownerID.String())
	return s.GetSpot(ctx, spot.ID)
}

func (s *service) UpdateSpot(ctx context.Context, ownerID, spotID uuid.UUID, req *UpdateSpotRequest) (*SpotDetailResponse, error) {
	spot, err := s.ownedSpot(ctx, ownerID, spotID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		spot.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		spot.Description = *req.Description
	}
	if req.Location != nil {
		spot.Location = strings.TrimSpace(*req.Location)
	}
	if req.PricePerNight != nil {
		if !req.PricePerNight.IsPositive() {
			return nil, ErrInvalidPrice
		}
		spot.PricePerNight = req.PricePerNight.Round(2)
	}
	if req.Capacity != nil {
		spot.Capacity = *req.Capacity
	}

	if err := s.repo.Update(ctx, spot); err != nil {
		return nil, err
	}
	if req.Tags != nil {
		if err := s.labels.ReplaceSpotTags(ctx, spotID, *req.Tags); err != nil {
			return nil, err
		}
	}
	if req.Amenities != nil {
		if err := s.labels.ReplaceSpotAmenities(ctx, spotID, *req.Amenities); err != nil {
			return nil, err
		}
	}

	s.invalidateSpot(ctx, spotID)
	return s.GetSpot(ctx, spotID)
}

func (s *service) DeleteSpot(ctx context.Context, ownerID, spotID uuid.UUID) error {
	if _, err := s.ownedSpot(ctx, ownerID, spotID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, spotID); err != nil {
		return err
	}

	s.invalidateSpot(ctx, spotID)
	s.deleteKeys(ctx,
		constants.BuildSpotWindowsKey(spotID.String()),
		constants.BuildSpotReviewsKey(spotID.String()),
	)
	return nil
}

func (s *service) AddImage(ctx context.Context, ownerID, spotID uuid.UUID, req *AddImageRequest) (*ImageResponse, error) {
	if _, err := s.ownedSpot(ctx, ownerID, spotID); err != nil {
		return nil, err
	}

	image := &Image{SpotID: spotID, ImageURL: req.ImageURL}
	if err := s.repo.AddImage(ctx, image); err != nil {
		return nil, err
	}

	s.invalidateSpot(ctx, spotID)
	resp := image.ToResponse()
	return &resp, nil
}

func (s *service) GetUnavailability(ctx context.Context, spotID uuid.UUID) ([]WindowResponse, error) {
	var out []WindowResponse
	err := s.cache.GetOrSet(ctx, constants.BuildSpotWindowsKey(spotID.String()), constants.TTL_SPOT_WINDOWS, func() (interface{}, error) {
		if _, err := s.repo.GetByID(ctx, spotID); err != nil {
			return nil, err
		}
		windows, err := s.repo.ListWindows(ctx, spotID)
		if err != nil {
			return nil, err
		}
		resp := make([]WindowResponse, 0, len(windows))
		for i := range windows {
			resp = append(resp, windows[i].ToResponse())
		}
		return resp, nil
	}, &out)
	return out, err
}

func (s *service) AddUnavailability(ctx context.Context, ownerID, spotID uuid.UUID, req *CreateUnavailabilityRequest) (*WindowResponse, error) {
	if _, err := s.ownedSpot(ctx, ownerID, spotID); err != nil {
		return nil, err
	}

	stay, err := bookings.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidRange) {
			return nil, ErrInvalidWindow
		}
		return nil, err
	}

	window := &UnavailabilityWindow{
		SpotID:    spotID,
		StartDate: datatypes.Date(stay.Start),
		EndDate:   datatypes.Date(stay.End),
		Reason:    strings.TrimSpace(req.Reason),
	}
	if err := s.repo.CreateWindow(ctx, window); err != nil {
		return nil, err
	}

	s.deleteKeys(ctx, constants.BuildSpotWindowsKey(spotID.String()))
	s.log.InfoContext(ctx, "unavailability window added",
		"spot_id", spotID.String(), "range", stay.String())

	resp := window.ToResponse()
	return &resp, nil
}

func (s *service) RemoveUnavailability(ctx context.Context, ownerID, spotID, windowID uuid.UUID) error {
	if _, err := s.ownedSpot(ctx, ownerID, spotID); err != nil {
		return err
	}
	if err := s.repo.DeleteWindow(ctx, spotID, windowID); err != nil {
		return err
	}
	s.deleteKeys(ctx, constants.BuildSpotWindowsKey(spotID.String()))
	return nil
}

func (s *service) GetReviews(ctx context.Context, spotID uuid.UUID) ([]ReviewResponse, error) {
	var out []ReviewResponse
	err := s.cache.GetOrSet(ctx, constants.BuildSpotReviewsKey(spotID.String()), constants.TTL_SPOT_REVIEWS, func() (interface{}, error) {
		if _, err := s.repo.GetByID(ctx, spotID); err != nil {
			return nil, err
		}
		reviews, err := s.repo.ListReviews(ctx, spotID)
		if err != nil {
			return nil, err
		}
		resp := make([]ReviewResponse, 0, len(reviews))
		for i := range reviews {
			resp = append(resp, reviews[i].ToResponse())
		}
		return resp, nil
	}, &out)
	return out, err
}

func (s *service) AddReview(ctx context.Context, userID, spotID uuid.UUID, req *CreateReviewRequest) (*ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.repo.GetByID(ctx, spotID); err != nil {
		return nil, err
	}

	review := &Review{
		SpotID:  spotID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	// average rating feeds list ordering
	s.invalidateSpot(ctx, spotID)
	s.deleteKeys(ctx, constants.BuildSpotReviewsKey(spotID.String()))

	resp := review.ToResponse()
	return &resp, nil
}

func (s *service) ownedSpot(ctx context.Context, ownerID, spotID uuid.UUID) (*Spot, error) {
	spot, err := s.repo.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}
	if spot.OwnerID != ownerID {
		return nil, ErrNotSpotOwner
	}
	return spot, nil
}

func (s *service) summaries(rows []SpotSummary) []SpotSummaryResponse {
	out := make([]SpotSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToResponse(s.cfg.PlaceholderImageURL))
	}
	return out
}

// invalidateSpot drops the detail entry and every cached listing
func (s *service) invalidateSpot(ctx context.Context, spotID uuid.UUID) {
	s.deleteKeys(ctx, constants.BuildSpotDetailKey(spotID.String()))
	for _, pattern := range []string{constants.PATTERN_INVALIDATE_SPOT_LISTS, constants.PATTERN_INVALIDATE_FEATURED} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			s.log.WarnContext(ctx, "cache invalidation failed", "pattern", pattern, "error", err)
		}
	}
}

func (s *service) deleteKeys(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.WarnContext(ctx, "cache delete failed", "keys", keys, "error", err)
	}
}


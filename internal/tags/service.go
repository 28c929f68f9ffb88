package tags

import (
	"context"
	"fmt"

	"github.com/BluezConcepts/API-backend/internal/shared/constants"
	"github.com/BluezConcepts/API-backend/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	GetTags(ctx context.Context) ([]LabelResponse, error)
	GetAmenities(ctx context.Context) ([]LabelResponse, error)

	// Replace* attach the named labels to a spot, creating unknown names on the fly
	ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, names []string) error
	ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, names []string) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) GetTags(ctx context.Context) ([]LabelResponse, error) {
	var out []LabelResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_TAGS_ALL, constants.TTL_TAGS_ALL, func() (interface{}, error) {
		list, err := s.repo.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]LabelResponse, 0, len(list))
		for i := range list {
			resp = append(resp, list[i].ToResponse())
		}
		return resp, nil
	}, &out)
	return out, err
}

func (s *service) GetAmenities(ctx context.Context) ([]LabelResponse, error) {
	var out []LabelResponse
	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_AMENITIES_ALL, constants.TTL_AMENITIES_ALL, func() (interface{}, error) {
		list, err := s.repo.ListAmenities(ctx)
		if err != nil {
			return nil, err
		}
		resp := make([]LabelResponse, 0, len(list))
		for i := range list {
			resp = append(resp, list[i].ToResponse())
		}
		return resp, nil
	}, &out)
	return out, err
}

func (s *service) ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, names []string) error {
	created, err := s.repo.EnsureTags(ctx, names)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(created))
	for _, t := range created {
		ids = append(ids, t.ID)
	}
	if err := s.repo.ReplaceSpotTags(ctx, spotID, ids); err != nil {
		return err
	}
	return s.invalidate(ctx, constants.CACHE_KEY_TAGS_ALL)
}

func (s *service) ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, names []string) error {
	created, err := s.repo.EnsureAmenities(ctx, names)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(created))
	for _, a := range created {
		ids = append(ids, a.ID)
	}
	if err := s.repo.ReplaceSpotAmenities(ctx, spotID, ids); err != nil {
		return err
	}
	return s.invalidate(ctx, constants.CACHE_KEY_AMENITIES_ALL)
}

func (s *service) invalidate(ctx context.Context, key string) error {
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate %s: %w", key, err)
	}
	return nil
}

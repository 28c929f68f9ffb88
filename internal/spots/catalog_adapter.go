package spots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BluezConcepts/API-backend/internal/bookings"

	"github.com/google/uuid"
)

// CatalogAdapter exposes spots to the booking ledger. It reads straight
// from the database since it runs inside the spot lock.
type CatalogAdapter struct {
	repo Repository
}

func NewCatalogAdapter(repo Repository) *CatalogAdapter {
	return &CatalogAdapter{repo: repo}
}

func (a *CatalogAdapter) GetSpot(ctx context.Context, spotID uuid.UUID) (*bookings.SpotInfo, error) {
	spot, err := a.repo.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			return nil, bookings.ErrSpotNotFound
		}
		return nil, err
	}
	return &bookings.SpotInfo{
		ID:          spot.ID,
		OwnerID:     spot.OwnerID,
		NightlyRate: spot.PricePerNight,
		Capacity:    spot.Capacity,
	}, nil
}

func (a *CatalogAdapter) GetUnavailabilityWindows(ctx context.Context, spotID uuid.UUID) ([]bookings.UnavailabilityWindow, error) {
	windows, err := a.repo.ListWindows(ctx, spotID)
	if err != nil {
		return nil, err
	}

	out := make([]bookings.UnavailabilityWindow, 0, len(windows))
	for i := range windows {
		r, err := bookings.NewDateRange(time.Time(windows[i].StartDate), time.Time(windows[i].EndDate))
		if err != nil {
			return nil, fmt.Errorf("corrupt unavailability window %s: %w", windows[i].ID, err)
		}
		out = append(out, bookings.UnavailabilityWindow{SpotID: spotID, Range: r})
	}
	return out, nil
}

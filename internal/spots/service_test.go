package spots

import (
	"context"
	"testing"

	"github.com/BluezConcepts/API-backend/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpot(t *testing.T) {
	f := newServiceFixture(t)

	spot := f.createSpot(t, "Lakeside Meadow", 4)

	assert.Equal(t, "Lakeside Meadow", spot.Name)
	assert.Equal(t, "25.50", spot.PricePerNight)
	assert.Equal(t, placeholderURL, spot.ImageURL)
	assert.Zero(t, spot.AverageRating)
	assert.Empty(t, spot.Images)
	assert.Equal(t, []string{"Forest"}, f.labels.tags[spot.ID])
	assert.Equal(t, []string{"Showers"}, f.labels.amenities[spot.ID])
}

func TestCreateSpotRejectsNonPositivePrice(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.svc.CreateSpot(context.Background(), f.owner, &CreateSpotRequest{
		Name:          "Free Field",
		Location:      "Drenthe",
		PricePerNight: decimal.Zero,
		Capacity:      2,
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestOnlyOwnerMayMutate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	spot := f.createSpot(t, "Pine Hollow", 3)
	stranger := uuid.New()

	name := "Hijacked"
	_, err := f.svc.UpdateSpot(ctx, stranger, spot.ID, &UpdateSpotRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotSpotOwner)

	err = f.svc.DeleteSpot(ctx, stranger, spot.ID)
	assert.ErrorIs(t, err, ErrNotSpotOwner)

	_, err = f.svc.AddImage(ctx, stranger, spot.ID, &AddImageRequest{ImageURL: "https://img.example.com/a.jpg"})
	assert.ErrorIs(t, err, ErrNotSpotOwner)

	_, err = f.svc.AddUnavailability(ctx, stranger, spot.ID, &CreateUnavailabilityRequest{StartDate: "2024-07-01", EndDate: "2024-07-05"})
	assert.ErrorIs(t, err, ErrNotSpotOwner)
}

func TestUpdateSpotAppliesPresentFields(t *testing.T) {
	f := newServiceFixture(t)
	spot := f.createSpot(t, "River Bend", 2)

	price := decimal.RequireFromString("40")
	capacity := 6
	noTags := []string{}
	updated, err := f.svc.UpdateSpot(context.Background(), f.owner, spot.ID, &UpdateSpotRequest{
		PricePerNight: &price,
		Capacity:      &capacity,
		Tags:          &noTags,
	})
	require.NoError(t, err)

	assert.Equal(t, "River Bend", updated.Name)
	assert.Equal(t, "40.00", updated.PricePerNight)
	assert.Equal(t, 6, updated.Capacity)
	assert.Empty(t, f.labels.tags[spot.ID])
	assert.Equal(t, []string{"Showers"}, f.labels.amenities[spot.ID])
}

func TestDeleteSpotWithActiveBookings(t *testing.T) {
	f := newServiceFixture(t)
	spot := f.createSpot(t, "Dune Camp", 2)
	f.repo.busy[spot.ID] = true

	err := f.svc.DeleteSpot(context.Background(), f.owner, spot.ID)
	assert.ErrorIs(t, err, ErrSpotHasActiveBookings)

	f.repo.busy[spot.ID] = false
	require.NoError(t, f.svc.DeleteSpot(context.Background(), f.owner, spot.ID))

	_, err = f.svc.GetSpot(context.Background(), spot.ID)
	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestSpotDetailIsCachedUntilChanged(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	spot := f.createSpot(t, "Heather Field", 4)

	key := constants.BuildSpotDetailKey(spot.ID.String())
	assert.True(t, f.redis.Exists(key))

	before := f.reads.calls
	_, err := f.svc.GetSpot(ctx, spot.ID)
	require.NoError(t, err)
	assert.Equal(t, before, f.reads.calls, "second read should be served from redis")

	_, err = f.svc.AddImage(ctx, f.owner, spot.ID, &AddImageRequest{ImageURL: "https://img.example.com/heather.jpg"})
	require.NoError(t, err)

	detail, err := f.svc.GetSpot(ctx, spot.ID)
	require.NoError(t, err)
	require.Len(t, detail.Images, 1)
	assert.Equal(t, "https://img.example.com/heather.jpg", detail.Images[0].ImageURL)
}

func TestListSpotsCachesPerFilter(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.createSpot(t, "Small", 2)
	f.createSpot(t, "Large", 8)

	all, err := f.svc.ListSpots(ctx, SpotListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 10, all.Limit)
	assert.Equal(t, 1, all.TotalPages)

	big, err := f.svc.ListSpots(ctx, SpotListQuery{MinGuests: 5})
	require.NoError(t, err)
	require.Len(t, big.Spots, 1)
	assert.Equal(t, "Large", big.Spots[0].Name)

	f.createSpot(t, "Huge", 12)
	again, err := f.svc.ListSpots(ctx, SpotListQuery{MinGuests: 5})
	require.NoError(t, err)
	assert.Len(t, again.Spots, 2, "creating a spot invalidates cached listings")
}

func TestNormaliseQuery(t *testing.T) {
	f := normaliseQuery(SpotListQuery{Search: "  lake ", Tags: "Pet Friendly, forest,,pet-friendly"})

	assert.Equal(t, "lake", f.Search)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)
	assert.Equal(t, []string{"forest", "pet-friendly"}, f.TagSlugs)
}

func TestUnavailabilityWindows(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	spot := f.createSpot(t, "Moor View", 2)

	t.Run("inverted range", func(t *testing.T) {
		_, err := f.svc.AddUnavailability(ctx, f.owner, spot.ID, &CreateUnavailabilityRequest{StartDate: "2024-07-05", EndDate: "2024-07-01"})
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("add and list", func(t *testing.T) {
		window, err := f.svc.AddUnavailability(ctx, f.owner, spot.ID, &CreateUnavailabilityRequest{
			StartDate: "2024-07-01",
			EndDate:   "2024-07-05",
			Reason:    "maintenance",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-07-01", window.StartDate)
		assert.Equal(t, "2024-07-05", window.EndDate)

		list, err := f.svc.GetUnavailability(ctx, spot.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)

		require.NoError(t, f.svc.RemoveUnavailability(ctx, f.owner, spot.ID, window.ID))
		list, err = f.svc.GetUnavailability(ctx, spot.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("overlapping active booking", func(t *testing.T) {
		f.repo.busy[spot.ID] = true
		defer func() { f.repo.busy[spot.ID] = false }()

		_, err := f.svc.AddUnavailability(ctx, f.owner, spot.ID, &CreateUnavailabilityRequest{StartDate: "2024-08-01", EndDate: "2024-08-03"})
		assert.ErrorIs(t, err, ErrWindowConflict)
	})

	t.Run("unknown window", func(t *testing.T) {
		err := f.svc.RemoveUnavailability(ctx, f.owner, spot.ID, uuid.New())
		assert.ErrorIs(t, err, ErrWindowNotFound)
	})

	t.Run("unknown spot", func(t *testing.T) {
		_, err := f.svc.GetUnavailability(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrSpotNotFound)
	})
}

func TestReviewsUpdateAverage(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	spot := f.createSpot(t, "Birch Grove", 4)

	_, err := f.svc.AddReview(ctx, uuid.New(), spot.ID, &CreateReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = f.svc.AddReview(ctx, uuid.New(), spot.ID, &CreateReviewRequest{Rating: 5, Comment: "quiet"})
	require.NoError(t, err)
	_, err = f.svc.AddReview(ctx, uuid.New(), spot.ID, &CreateReviewRequest{Rating: 4})
	require.NoError(t, err)

	detail, err := f.svc.GetSpot(ctx, spot.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, detail.AverageRating, 0.001)
	assert.Equal(t, 2, detail.ReviewCount)

	reviews, err := f.svc.GetReviews(ctx, spot.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	_, err = f.svc.AddReview(ctx, uuid.New(), uuid.New(), &CreateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, ErrSpotNotFound)
}

func TestGetOwnerSpots(t *testing.T) {
	f := newServiceFixture(t)
	f.createSpot(t, "Mine", 2)

	list, err := f.svc.GetOwnerSpots(context.Background(), f.owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.svc.GetOwnerSpots(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list)
}

package tags

import (
	"context"
	"testing"

	"github.com/BluezConcepts/API-backend/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	tags      map[string]Tag
	amenities map[string]Amenity
	spotTags  map[uuid.UUID][]uuid.UUID
	spotAmen  map[uuid.UUID][]uuid.UUID
	listCalls int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		tags:      map[string]Tag{},
		amenities: map[string]Amenity{},
		spotTags:  map[uuid.UUID][]uuid.UUID{},
		spotAmen:  map[uuid.UUID][]uuid.UUID{},
	}
}

func (m *memoryRepository) ListTags(ctx context.Context) ([]Tag, error) {
	m.listCalls++
	var out []Tag
	for _, t := range m.tags {
		out = append(out, t)
	}
	return out, nil
}

func (m *memoryRepository) ListAmenities(ctx context.Context) ([]Amenity, error) {
	var out []Amenity
	for _, a := range m.amenities {
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryRepository) EnsureTags(ctx context.Context, names []string) ([]Tag, error) {
	var out []Tag
	for _, name := range CleanNames(names) {
		slug := GenerateSlug(name)
		t, ok := m.tags[slug]
		if !ok {
			t = Tag{ID: uuid.New(), Name: name, Slug: slug}
			m.tags[slug] = t
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memoryRepository) EnsureAmenities(ctx context.Context, names []string) ([]Amenity, error) {
	var out []Amenity
	for _, name := range CleanNames(names) {
		slug := GenerateSlug(name)
		a, ok := m.amenities[slug]
		if !ok {
			a = Amenity{ID: uuid.New(), Name: name, Slug: slug}
			m.amenities[slug] = a
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memoryRepository) ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, ids []uuid.UUID) error {
	m.spotTags[spotID] = ids
	return nil
}

func (m *memoryRepository) ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, ids []uuid.UUID) error {
	m.spotAmen[spotID] = ids
	return nil
}

func newTestService(t *testing.T) (Service, *memoryRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newMemoryRepository()
	return NewService(repo, cache.NewService(client)), repo
}

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "pet-friendly", GenerateSlug("  Pet Friendly "))
	assert.Equal(t, "lake-view", GenerateSlug("Lake_View!"))
	assert.Equal(t, "", GenerateSlug("   "))
}

func TestCleanNames(t *testing.T) {
	got := CleanNames([]string{"Showers", " showers ", "", "Wi-Fi", "Fire Pit"})
	assert.Equal(t, []string{"Showers", "Wi-Fi", "Fire Pit"}, got)
}

func TestReplaceSpotTagsCreatesOnDemand(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	spot := uuid.New()

	require.NoError(t, svc.ReplaceSpotTags(ctx, spot, []string{"Lakeside", "Forest", "lakeside"}))
	assert.Len(t, repo.tags, 2)
	assert.Len(t, repo.spotTags[spot], 2)

	require.NoError(t, svc.ReplaceSpotTags(ctx, spot, []string{"Forest"}))
	assert.Len(t, repo.tags, 2)
	assert.Len(t, repo.spotTags[spot], 1)

	require.NoError(t, svc.ReplaceSpotAmenities(ctx, spot, []string{"Showers"}))
	assert.Len(t, repo.spotAmen[spot], 1)
}

func TestGetTagsIsCachedAndInvalidated(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ReplaceSpotTags(ctx, uuid.New(), []string{"Beach"}))

	first, err := svc.GetTags(ctx)
	require.NoError(t, err)
	_, err = svc.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, repo.listCalls)

	require.NoError(t, svc.ReplaceSpotTags(ctx, uuid.New(), []string{"Mountain"}))
	after, err := svc.GetTags(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
	assert.Equal(t, 2, repo.listCalls)
}

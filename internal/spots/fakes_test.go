package spots

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BluezConcepts/API-backend/internal/shared/config"
	"github.com/BluezConcepts/API-backend/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type memoryRepository struct {
	mu      sync.Mutex
	spots   map[uuid.UUID]*Spot
	images  []Image
	windows []UnavailabilityWindow
	reviews []Review

	// spots with pending or accepted bookings
	busy map[uuid.UUID]bool
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		spots: make(map[uuid.UUID]*Spot),
		busy:  make(map[uuid.UUID]bool),
	}
}

func (m *memoryRepository) Create(ctx context.Context, spot *Spot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	spot.ID = uuid.New()
	spot.CreatedAt = time.Now()
	for i := range spot.Images {
		spot.Images[i].ID = uuid.New()
		spot.Images[i].SpotID = spot.ID
		m.images = append(m.images, spot.Images[i])
	}
	cp := *spot
	m.spots[spot.ID] = &cp
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Spot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	spot, ok := m.spots[id]
	if !ok {
		return nil, ErrSpotNotFound
	}
	cp := *spot
	return &cp, nil
}

func (m *memoryRepository) Update(ctx context.Context, spot *Spot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.spots[spot.ID]; !ok {
		return ErrSpotNotFound
	}
	cp := *spot
	m.spots[spot.ID] = &cp
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy[id] {
		return ErrSpotHasActiveBookings
	}
	delete(m.spots, id)
	return nil
}

func (m *memoryRepository) AddImage(ctx context.Context, image *Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	image.ID = uuid.New()
	image.UploadDate = time.Now()
	m.images = append(m.images, *image)
	return nil
}

func (m *memoryRepository) ListImages(ctx context.Context, spotID uuid.UUID) ([]Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Image
	for _, img := range m.images {
		if img.SpotID == spotID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (m *memoryRepository) CreateWindow(ctx context.Context, window *UnavailabilityWindow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.spots[window.SpotID]; !ok {
		return ErrSpotNotFound
	}
	if m.busy[window.SpotID] {
		return ErrWindowConflict
	}
	window.ID = uuid.New()
	m.windows = append(m.windows, *window)
	return nil
}

func (m *memoryRepository) DeleteWindow(ctx context.Context, spotID, windowID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, w := range m.windows {
		if w.ID == windowID && w.SpotID == spotID {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			return nil
		}
	}
	return ErrWindowNotFound
}

func (m *memoryRepository) ListWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []UnavailabilityWindow
	for _, w := range m.windows {
		if w.SpotID == spotID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memoryRepository) CreateReview(ctx context.Context, review *Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	review.ID = uuid.New()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memoryRepository) ListReviews(ctx context.Context, spotID uuid.UUID) ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Review
	for _, r := range m.reviews {
		if r.SpotID == spotID {
			out = append(out, r)
		}
	}
	return out, nil
}

// memoryReadModel derives summaries from the memory repository
type memoryReadModel struct {
	repo  *memoryRepository
	calls int
}

func (m *memoryReadModel) summary(s *Spot) SpotSummary {
	out := SpotSummary{
		ID:            s.ID,
		OwnerID:       s.OwnerID,
		Name:          s.Name,
		Location:      s.Location,
		PricePerNight: s.PricePerNight,
		Capacity:      s.Capacity,
		CreatedAt:     s.CreatedAt,
	}
	var sum int
	for _, r := range m.repo.reviews {
		if r.SpotID == s.ID {
			sum += r.Rating
			out.ReviewCount++
		}
	}
	if out.ReviewCount > 0 {
		out.AverageRating = float64(sum) / float64(out.ReviewCount)
	}
	return out
}

func (m *memoryReadModel) ListSpots(ctx context.Context, filter ListFilter) ([]SpotSummary, int, error) {
	m.repo.mu.Lock()
	defer m.repo.mu.Unlock()
	m.calls++
	var out []SpotSummary
	for _, s := range m.repo.spots {
		if filter.MinGuests > 0 && s.Capacity < filter.MinGuests {
			continue
		}
		out = append(out, m.summary(s))
	}
	return out, len(out), nil
}

func (m *memoryReadModel) GetSpot(ctx context.Context, id uuid.UUID) (*SpotSummary, error) {
	m.repo.mu.Lock()
	defer m.repo.mu.Unlock()
	m.calls++
	s, ok := m.repo.spots[id]
	if !ok {
		return nil, ErrSpotNotFound
	}
	out := m.summary(s)
	return &out, nil
}

func (m *memoryReadModel) Featured(ctx context.Context, limit int) ([]SpotSummary, error) {
	list, _, err := m.ListSpots(ctx, ListFilter{})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, err
}

func (m *memoryReadModel) OwnerSpots(ctx context.Context, ownerID uuid.UUID) ([]SpotSummary, error) {
	list, _, err := m.ListSpots(ctx, ListFilter{})
	var out []SpotSummary
	for _, s := range list {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, err
}

type recordingLabels struct {
	tags      map[uuid.UUID][]string
	amenities map[uuid.UUID][]string
}

func newRecordingLabels() *recordingLabels {
	return &recordingLabels{
		tags:      make(map[uuid.UUID][]string),
		amenities: make(map[uuid.UUID][]string),
	}
}

func (l *recordingLabels) ReplaceSpotTags(ctx context.Context, spotID uuid.UUID, names []string) error {
	l.tags[spotID] = names
	return nil
}

func (l *recordingLabels) ReplaceSpotAmenities(ctx context.Context, spotID uuid.UUID, names []string) error {
	l.amenities[spotID] = names
	return nil
}

type serviceFixture struct {
	svc    Service
	repo   *memoryRepository
	reads  *memoryReadModel
	labels *recordingLabels
	redis  *miniredis.Miniredis
	owner  uuid.UUID
}

const placeholderURL = "https://via.placeholder.com/300x200"

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newMemoryRepository()
	f := &serviceFixture{
		repo:   repo,
		reads:  &memoryReadModel{repo: repo},
		labels: newRecordingLabels(),
		redis:  mr,
		owner:  uuid.New(),
	}
	f.svc = NewService(f.repo, f.reads, f.labels, cache.NewService(client), config.BookingConfig{
		Currency:            "EUR",
		PlaceholderImageURL: placeholderURL,
		FeaturedLimit:       5,
	})
	return f
}

func (f *serviceFixture) createSpot(t *testing.T, name string, capacity int) *SpotDetailResponse {
	t.Helper()
	spot, err := f.svc.CreateSpot(context.Background(), f.owner, &CreateSpotRequest{
		Name:          name,
		Location:      "Veluwe",
		PricePerNight: decimal.RequireFromString("25.5"),
		Capacity:      capacity,
		Tags:          []string{"Forest"},
		Amenities:     []string{"Showers"},
	})
	if err != nil {
		t.Fatalf("create spot: %v", err)
	}
	return spot
}

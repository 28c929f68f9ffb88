package bookings

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memoryRepository is an in-memory Repository; WithSpotLock serialises per spot
type memoryRepository struct {
	mu        sync.Mutex
	spotLocks map[uuid.UUID]*sync.Mutex
	bookings  map[uuid.UUID]Booking
	windows   []UnavailabilityWindow
	seq       int
	createErr error

	// held counts WithSpotLock callbacks currently running
	held atomic.Int32
}

func newMemoryRepository(spotIDs ...uuid.UUID) *memoryRepository {
	repo := &memoryRepository{
		spotLocks: make(map[uuid.UUID]*sync.Mutex),
		bookings:  make(map[uuid.UUID]Booking),
	}
	for _, id := range spotIDs {
		repo.spotLocks[id] = &sync.Mutex{}
	}
	return repo
}

func (m *memoryRepository) WithSpotLock(ctx context.Context, spotID uuid.UUID, fn func(tx Repository) error) error {
	m.mu.Lock()
	lock, ok := m.spotLocks[spotID]
	m.mu.Unlock()
	if !ok {
		return ErrSpotNotFound
	}

	lock.Lock()
	defer lock.Unlock()
	m.held.Add(1)
	defer m.held.Add(-1)
	return fn(m)
}

func (m *memoryRepository) Create(ctx context.Context, booking *Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return storageError("create booking", m.createErr)
	}

	m.seq++
	booking.CreatedAt = time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	m.bookings[booking.ID] = *booking
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (m *memoryRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to Status, at time.Time) (*Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if b.Status != from {
		return nil, ErrInvalidTransition
	}
	b.Status = to
	b.DecidedAt = &at
	m.bookings[id] = b
	return &b, nil
}

func (m *memoryRepository) ListActiveForSpot(ctx context.Context, spotID uuid.UUID, within DateRange) ([]Booking, error) {
	return m.filter(func(b Booking) bool {
		return b.SpotID == spotID && b.Status.IsActive() && Overlaps(b.Range(), within)
	}), nil
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

func (m *memoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return m.filter(func(b Booking) bool { return b.UserID == userID }), nil
}

func (m *memoryRepository) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]Booking, error) {
	return m.filter(func(b Booking) bool { return b.SpotID == spotID }), nil
}

func (m *memoryRepository) filter(keep func(Booking) bool) []Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Booking
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *memoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

type staticCatalog struct {
	spots   map[uuid.UUID]*SpotInfo
	windows []UnavailabilityWindow

	// lockedBy, when set, makes the catalog count calls made while a spot lock is held
	lockedBy  *memoryRepository
	underLock atomic.Int32
}

func newStaticCatalog(spots ...*SpotInfo) *staticCatalog {
	c := &staticCatalog{spots: make(map[uuid.UUID]*SpotInfo)}
	for _, s := range spots {
		c.spots[s.ID] = s
	}
	return c
}

func (c *staticCatalog) observe() {
	if c.lockedBy != nil && c.lockedBy.held.Load() > 0 {
		c.underLock.Add(1)
	}
}

func (c *staticCatalog) GetSpot(ctx context.Context, spotID uuid.UUID) (*SpotInfo, error) {
	c.observe()
	s, ok := c.spots[spotID]
	if !ok {
		return nil, ErrSpotNotFound
	}
	return s, nil
}

func (c *staticCatalog) GetUnavailabilityWindows(ctx context.Context, spotID uuid.UUID) ([]UnavailabilityWindow, error) {
	c.observe()
	var out []UnavailabilityWindow
	for _, w := range c.windows {
		if w.SpotID == spotID {
			out = append(out, w)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []EventType
	err    error
}

func (p *recordingPublisher) PublishBookingEvent(ctx context.Context, eventType EventType, booking *Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return p.err
}

type countingRecorder struct {
	mu          sync.Mutex
	created     int
	rejected    map[string]int
	transitions map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{rejected: map[string]int{}, transitions: map[string]int{}}
}

func (r *countingRecorder) BookingCreated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *countingRecorder) BookingRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected[reason]++
}

func (r *countingRecorder) BookingTransitioned(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions[status]++
}

func testSpot(capacity int, rate string) *SpotInfo {
	return &SpotInfo{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		NightlyRate: decimal.RequireFromString(rate),
		Capacity:    capacity,
	}
}

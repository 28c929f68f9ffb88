package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/BluezConcepts/API-backend/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error)
	AcceptBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	DeclineBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	ListBookingsForSpot(ctx context.Context, spotID uuid.UUID) ([]Booking, error)

	// Access-checked variants used by the HTTP layer
	GetBookingForUser(ctx context.Context, bookingID, userID uuid.UUID) (*Booking, error)
	ListBookingsForOwnedSpot(ctx context.Context, ownerID, spotID uuid.UUID) ([]Booking, error)
	DecideAsOwner(ctx context.Context, ownerID, bookingID uuid.UUID, to Status) (*Booking, error)
}

type service struct {
	repo      Repository
	catalog   SpotCatalog
	publisher EventPublisher
	metrics   Recorder
	currency  string
	log       *logger.Logger
	now       func() time.Time
}

// NewService wires the booking ledger. publisher and metrics may be nil.
func NewService(repo Repository, catalog SpotCatalog, publisher EventPublisher, metrics Recorder, currency string) Service {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &service{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		metrics:   metrics,
		currency:  currency,
		log:       logger.GetDefault(),
		now:       time.Now,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	booking, err := s.createBooking(ctx, userID, req)
	if err != nil {
		reason := rejectionReason(err)
		s.metrics.BookingRejected(reason)
		s.log.LogBookingRejected(ctx, req.SpotID, userID.String(), reason)
		return nil, err
	}

	s.metrics.BookingCreated()
	s.log.LogBookingCreated(ctx, booking.ID.String(), booking.SpotID.String(), userID.String())
	s.publish(ctx, EventBookingRequested, booking)

	return booking, nil
}

func (s *service) createBooking(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	stay, err := ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.GuestCount < 1 {
		return nil, ErrInvalidGuestCount
	}

	spotID, err := uuid.Parse(req.SpotID)
	if err != nil {
		return nil, ErrSpotNotFound
	}

	spot, err := s.catalog.GetSpot(ctx, spotID)
	if err != nil {
		return nil, asStorage("load spot", err)
	}
	if req.GuestCount > spot.Capacity {
		return nil, ErrCapacityExceeded
	}

	total, err := ComputePrice(spot.NightlyRate, stay)
	if err != nil {
		return nil, err
	}

	ref, err := generateBookingReference(s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	booking := &Booking{
		ID:         uuid.New(),
		BookingRef: ref,
		SpotID:     spotID,
		UserID:     userID,
		GuestCount: req.GuestCount,
		TotalPrice: total,
		Currency:   s.currency,
		Status:     StatusPending,
	}
	booking.setRange(stay)

	// Blocked dates are refused before taking the lock. The check is repeated
	// inside it, since a window can be added in between.
	windows, err := s.catalog.GetUnavailabilityWindows(ctx, spotID)
	if err != nil {
		return nil, asStorage("load unavailability windows", err)
	}
	if !IsAvailable(spotID, stay, nil, windows) {
		return nil, ErrSlotUnavailable
	}

	// Everything read under the lock goes through tx: a second pooled
	// connection here can starve against requests queued on the same row.
	err = s.repo.WithSpotLock(ctx, spotID, func(tx Repository) error {
		existing, err := tx.ListActiveForSpot(ctx, spotID, stay)
		if err != nil {
			return err
		}
		windows, err := tx.ListWindows(ctx, spotID)
		if err != nil {
			return err
		}

		if !IsAvailable(spotID, stay, existing, windows) {
			return ErrSlotUnavailable
		}

		return tx.Create(ctx, booking)
	})
	if err != nil {
		return nil, asStorage("create booking", err)
	}

	return booking, nil
}

func (s *service) AcceptBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.transition(ctx, bookingID, StatusAccepted)
}

func (s *service) DeclineBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.transition(ctx, bookingID, StatusDeclined)
}

func (s *service) transition(ctx context.Context, bookingID uuid.UUID, to Status) (*Booking, error) {
	current, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(to) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.repo.TransitionStatus(ctx, bookingID, current.Status, to, s.now())
	if err != nil {
		return nil, err
	}

	s.metrics.BookingTransitioned(to.String())
	s.log.LogBookingStatusChanged(ctx, bookingID.String(), current.Status.String(), to.String())

	eventType := EventBookingAccepted
	if to == StatusDeclined {
		eventType = EventBookingDeclined
	}
	s.publish(ctx, eventType, updated)

	return updated, nil
}

func (s *service) GetBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	return s.repo.GetByID(ctx, bookingID)
}

func (s *service) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListBookingsForSpot(ctx context.Context, spotID uuid.UUID) ([]Booking, error) {
	return s.repo.ListBySpot(ctx, spotID)
}

// GetBookingForUser allows the guest who booked and the owner of the spot
func (s *service) GetBookingForUser(ctx context.Context, bookingID, userID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID == userID {
		return booking, nil
	}

	if err := s.ensureSpotOwner(ctx, booking.SpotID, userID); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *service) ListBookingsForOwnedSpot(ctx context.Context, ownerID, spotID uuid.UUID) ([]Booking, error) {
	if err := s.ensureSpotOwner(ctx, spotID, ownerID); err != nil {
		return nil, err
	}
	return s.repo.ListBySpot(ctx, spotID)
}

func (s *service) DecideAsOwner(ctx context.Context, ownerID, bookingID uuid.UUID, to Status) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSpotOwner(ctx, booking.SpotID, ownerID); err != nil {
		return nil, err
	}
	return s.transition(ctx, bookingID, to)
}

func (s *service) ensureSpotOwner(ctx context.Context, spotID, userID uuid.UUID) error {
	spot, err := s.catalog.GetSpot(ctx, spotID)
	if err != nil {
		if errors.Is(err, ErrSpotNotFound) {
			return ErrForbidden
		}
		return asStorage("load spot", err)
	}
	if spot.OwnerID != userID {
		return ErrForbidden
	}
	return nil
}

func (s *service) publish(ctx context.Context, eventType EventType, booking *Booking) {
	if err := s.publisher.PublishBookingEvent(ctx, eventType, booking); err != nil {
		s.log.WithError(err).WarnContext(ctx, "failed to publish booking event",
			"event_type", string(eventType),
			"booking_id", booking.ID.String(),
		)
	}
}

// generateBookingReference builds CMP-YYYYMMDD-XXXXXX with six random letters
func generateBookingReference(now time.Time) (string, error) {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("CMP-%s-%s", now.UTC().Format("20060102"), randomPart), nil
}

var domainErrors = []error{
	ErrInvalidRange,
	ErrInvalidRate,
	ErrInvalidGuestCount,
	ErrSpotNotFound,
	ErrCapacityExceeded,
	ErrSlotUnavailable,
	ErrBookingNotFound,
	ErrInvalidTransition,
	ErrForbidden,
}

// asStorage leaves domain errors untouched and wraps anything else as a StorageError
func asStorage(op string, err error) error {
	if IsStorageError(err) {
		return err
	}
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return storageError(op, err)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, ErrInvalidGuestCount):
		return "invalid_guest_count"
	case errors.Is(err, ErrSpotNotFound):
		return "spot_not_found"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrSlotUnavailable):
		return "slot_unavailable"
	case errors.Is(err, ErrInvalidRate):
		return "invalid_rate"
	default:
		return "storage_failure"
	}
}

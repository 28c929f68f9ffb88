package bookings

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// DateRange is a half-open stay [Start, End) measured in whole calendar days
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalises both ends to UTC midnight of their calendar date
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: toDate(start), End: toDate(end)}
	if !r.Start.Before(r.End) {
		return DateRange{}, ErrInvalidRange
	}
	return r, nil
}

// ParseDateRange accepts YYYY-MM-DD or RFC 3339 timestamps
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidRange
}

const secondsPerDay = 24 * 60 * 60

// Nights is the number of whole days between Start and End. Counted on Unix
// seconds since time.Duration tops out at about 292 years.
func (r DateRange) Nights() int {
	return int((toDate(r.End).Unix() - toDate(r.Start).Unix()) / secondsPerDay)
}

func (r DateRange) String() string {
	return "[" + r.Start.Format(dateLayout) + ", " + r.End.Format(dateLayout) + ")"
}

// Overlaps is symmetric and false for back-to-back ranges
func Overlaps(a, b DateRange) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// UnavailabilityWindow is an owner-declared block on a spot's calendar
type UnavailabilityWindow struct {
	SpotID uuid.UUID
	Range  DateRange
}

// IsAvailable reports whether requested is free on spotID given the existing
// bookings and windows. Only pending and accepted bookings of the same spot block.
func IsAvailable(spotID uuid.UUID, requested DateRange, existing []Booking, windows []UnavailabilityWindow) bool {
	for i := range existing {
		b := &existing[i]
		if b.SpotID != spotID || !b.Status.IsActive() {
			continue
		}
		if Overlaps(requested, b.Range()) {
			return false
		}
	}

	for _, w := range windows {
		if w.SpotID != spotID {
			continue
		}
		if Overlaps(requested, w.Range) {
			return false
		}
	}

	return true
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

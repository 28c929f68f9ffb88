package bookings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(day(start), day(end))
	require.NoError(t, err)
	return r
}

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name  string
		rate  string
		start string
		end   string
		want  string
	}{
		{"three nights", "50.00", "2024-06-01", "2024-06-04", "150.00"},
		{"single night", "42.50", "2024-06-01", "2024-06-02", "42.50"},
		{"across month end", "10", "2024-01-30", "2024-02-02", "30.00"},
		{"leap day", "20", "2024-02-28", "2024-03-01", "40.00"},
		{"half cent rounds to even down", "0.125", "2024-06-01", "2024-06-02", "0.12"},
		{"half cent rounds to even up", "0.135", "2024-06-01", "2024-06-02", "0.14"},
		{"four centuries", "1", "1700-01-01", "2100-01-01", "146097.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(decimal.RequireFromString(tt.rate), mustRange(t, tt.start, tt.end))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputePriceIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	r, err := NewDateRange(
		time.Date(2024, 6, 1, 23, 30, 0, 0, loc),
		time.Date(2024, 6, 4, 0, 15, 0, 0, loc),
	)
	require.NoError(t, err)

	got, err := ComputePrice(decimal.RequireFromString("50.00"), r)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Nights())
	assert.Equal(t, "150.00", got.StringFixed(2))
}

func TestNightsBeyondDurationRange(t *testing.T) {
	r := mustRange(t, "1700-01-01", "2100-01-01")
	assert.Equal(t, 146097, r.Nights())

	r = mustRange(t, "0001-01-01", "9999-12-31")
	assert.Equal(t, 3652058, r.Nights())
}

func TestComputePriceErrors(t *testing.T) {
	_, err := ComputePrice(decimal.RequireFromString("50"), DateRange{})
	assert.ErrorIs(t, err, ErrInvalidRange)

	r := mustRange(t, "2024-06-01", "2024-06-03")
	_, err = ComputePrice(decimal.Zero, r)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = ComputePrice(decimal.RequireFromString("-5"), r)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestComputePriceIsDeterministic(t *testing.T) {
	rate := decimal.RequireFromString("33.33")
	r := mustRange(t, "2024-07-01", "2024-07-08")

	first, err := ComputePrice(rate, r)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputePrice(rate, r)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
	assert.Equal(t, "233.31", first.StringFixed(2))
}

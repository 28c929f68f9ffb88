package bookings

import (
	"github.com/shopspring/decimal"
)

// ComputePrice returns nights * nightlyRate rounded half-even to cents
func ComputePrice(nightlyRate decimal.Decimal, r DateRange) (decimal.Decimal, error) {
	nights := r.Nights()
	if nights <= 0 {
		return decimal.Zero, ErrInvalidRange
	}
	if !nightlyRate.IsPositive() {
		return decimal.Zero, ErrInvalidRate
	}

	return nightlyRate.Mul(decimal.NewFromInt(int64(nights))).RoundBank(2), nil
}

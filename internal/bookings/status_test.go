package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusAccepted))
	assert.True(t, StatusPending.CanTransitionTo(StatusDeclined))
	assert.False(t, StatusPending.CanTransitionTo(StatusPending))

	for _, terminal := range []Status{StatusAccepted, StatusDeclined} {
		assert.True(t, terminal.IsTerminal())
		for _, target := range []Status{StatusPending, StatusAccepted, StatusDeclined} {
			assert.False(t, terminal.CanTransitionTo(target), "%s -> %s", terminal, target)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusAccepted.IsActive())
	assert.False(t, StatusDeclined.IsActive())

	assert.True(t, Status("PENDING").IsValid())
	assert.False(t, Status("CONFIRMED").IsValid())
	assert.False(t, StatusPending.IsTerminal())
}

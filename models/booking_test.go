package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", BookingPending, BookingConfirmed, true},
		{"confirmed to in_progress", BookingConfirmed, BookingInProgress, true},
		{"in_progress to completed", BookingInProgress, BookingCompleted, true},

		{"pending skips to in_progress", BookingPending, BookingInProgress, false},
		{"pending skips to completed", BookingPending, BookingCompleted, false},
		{"confirmed back to pending", BookingConfirmed, BookingPending, false},
		{"completed to confirmed", BookingCompleted, BookingConfirmed, false},
		{"completed to in_progress", BookingCompleted, BookingInProgress, false},

		{"cancel from pending", BookingPending, BookingCancelled, true},
		{"cancel from confirmed", BookingConfirmed, BookingCancelled, true},
		{"cancel from in_progress", BookingInProgress, BookingCancelled, true},
		{"cancel from completed", BookingCompleted, BookingCancelled, false},
		{"revive cancelled", BookingCancelled, BookingPending, false},

		{"same state is a no-op", BookingConfirmed, BookingConfirmed, true},
		{"same terminal state is a no-op", BookingCompleted, BookingCompleted, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.False(t, BookingInProgress.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingPending.Valid())
	assert.True(t, BookingCancelled.Valid())
	assert.False(t, BookingStatus("shipped").Valid())
	assert.False(t, BookingStatus("").Valid())
}

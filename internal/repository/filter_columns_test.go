package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The allow-list check runs before any SQL is built, so a nil *sql.DB is
// enough: reaching the database would panic and fail the test.

func TestBookingGetAllByRejectsUnknownColumn(t *testing.T) {
	repo := NewBookingRepo(nil, time.Second)

	tests := []struct {
		name   string
		column string
	}{
		{"injection attempt", "1=1;DROP TABLE clients;--"},
		{"quoted injection", "status' OR '1'='1"},
		{"unknown column", "password_hash"},
		{"empty column", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.GetAllBy(context.Background(), tt.column, "x")
			assert.ErrorIs(t, err, ErrColumnNotAllowed)
		})
	}
}

func TestPaymentGetAllByRejectsUnknownColumn(t *testing.T) {
	repo := NewPaymentRepo(nil, time.Second)

	_, err := repo.GetAllBy(context.Background(), "amount; DELETE FROM payments", "x")
	assert.ErrorIs(t, err, ErrColumnNotAllowed)
}

func TestReviewGetAllByRejectsUnknownColumn(t *testing.T) {
	repo := NewReviewRepo(nil, time.Second)

	_, err := repo.GetAllBy(context.Background(), "comment", "x")
	assert.ErrorIs(t, err, ErrColumnNotAllowed)
}

func TestBookingGetAllByBadUUIDIsEmpty(t *testing.T) {
	repo := NewBookingRepo(nil, time.Second)

	// an id-typed filter with a malformed uuid cannot match anything, so
	// no query runs at all
	bookings, err := repo.GetAllBy(context.Background(), "client_id", "not-a-uuid")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

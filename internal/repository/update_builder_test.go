package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBuilderEmpty(t *testing.T) {
	b := newUpdateBuilder("clients")
	assert.True(t, b.Empty())

	b.Set("name", "Ada")
	assert.False(t, b.Empty())
}

func TestUpdateBuilderPlaceholderOrder(t *testing.T) {
	b := newUpdateBuilder("technicians")
	b.Set("name", "Ada")
	b.Set("experience_years", 7)
	b.Set("is_available", true)

	query, args := b.Query("technician_id", "abc-123")

	assert.Equal(t,
		"UPDATE technicians SET name = $1, experience_years = $2, is_available = $3 WHERE technician_id = $4",
		query)
	require.Len(t, args, 4)
	assert.Equal(t, "Ada", args[0])
	assert.Equal(t, 7, args[1])
	assert.Equal(t, true, args[2])
	assert.Equal(t, "abc-123", args[3])
}

func TestUpdateBuilderIDBoundLast(t *testing.T) {
	b := newUpdateBuilder("bookings")
	b.Set("price", 150.0)

	query, args := b.Query("booking_id", "id-1")

	assert.Contains(t, query, "WHERE booking_id = $2")
	assert.Equal(t, "id-1", args[len(args)-1])
}

func TestSetLocationBothNilIsNoOp(t *testing.T) {
	b := newUpdateBuilder("clients")
	b.setLocation(nil, nil)
	assert.True(t, b.Empty())
}

func TestSetLocationEmitsCoalesceMerge(t *testing.T) {
	lat, lon := 41.31, 69.28
	b := newUpdateBuilder("clients")
	b.setLocation(&lat, &lon)

	query, args := b.Query("client_id", "id-1")

	assert.Equal(t,
		"UPDATE clients SET location = ST_SetSRID(ST_MakePoint("+
			"COALESCE($1, ST_X(location::geometry)), "+
			"COALESCE($2, ST_Y(location::geometry))), 4326)::geography "+
			"WHERE client_id = $3",
		query)
	// longitude is X, latitude is Y
	require.Len(t, args, 3)
	assert.Equal(t, &lon, args[0])
	assert.Equal(t, &lat, args[1])
}

func TestSetLocationSingleComponentKeepsOther(t *testing.T) {
	lat := 41.31
	b := newUpdateBuilder("clients")
	b.setLocation(&lat, nil)

	_, args := b.Query("client_id", "id-1")

	// the missing longitude rides along as a NULL argument so COALESCE
	// falls back to the stored X component
	require.Len(t, args, 3)
	assert.Equal(t, (*float64)(nil), args[0])
	assert.Equal(t, &lat, args[1])
}

func TestSetLocationAfterOtherFields(t *testing.T) {
	lat := 41.31
	b := newUpdateBuilder("technicians")
	b.Set("name", "Ada")
	b.setLocation(&lat, nil)
	b.Set("experience_years", 3)

	query, args := b.Query("technician_id", "id-1")

	assert.Contains(t, query, "name = $1")
	assert.Contains(t, query, "COALESCE($2, ST_X(location::geometry))")
	assert.Contains(t, query, "COALESCE($3, ST_Y(location::geometry))")
	assert.Contains(t, query, "experience_years = $4")
	assert.Contains(t, query, "WHERE technician_id = $5")
	assert.Len(t, args, 5)
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{"one degree of longitude at the equator", 0, 0, 0, 1, 111.19, 0.1},
		{"one degree of latitude", 0, 0, 1, 0, 111.19, 0.1},
		{"tashkent to samarkand", 41.2995, 69.2401, 39.6542, 66.9597, 261.0, 5.0},
		{"tashkent to sydney long haul", 41.2995, 69.2401, -33.8688, 151.2093, 11820.0, 5.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKm, got, tt.tolerance)
		})
	}
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.Zero(t, HaversineKm(41.2995, 69.2401, 41.2995, 69.2401))
}

func TestHaversineSymmetric(t *testing.T) {
	forward := HaversineKm(41.2995, 69.2401, 39.6542, 66.9597)
	backward := HaversineKm(39.6542, 66.9597, 41.2995, 69.2401)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 12.35, RoundKm(12.346))
	assert.Equal(t, 12.34, RoundKm(12.344))
	assert.Equal(t, 0.0, RoundKm(0))
}

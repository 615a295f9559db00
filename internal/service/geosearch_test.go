package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/places"
)

type fakeSearcher struct {
	results []places.Place
	err     error
	gotLat  float64
	gotLon  float64
}

func (f *fakeSearcher) NearbySearch(ctx context.Context, keyword string, radiusMeters int, lat, lon float64) ([]places.Place, error) {
	f.gotLat, f.gotLon = lat, lon
	return f.results, f.err
}

type fakeLocator struct {
	lat, lon float64
	err      error
}

func (f *fakeLocator) CurrentLocation(ctx context.Context) (float64, float64, error) {
	return f.lat, f.lon, f.err
}

func TestSearchNearbySortsByDistance(t *testing.T) {
	searcher := &fakeSearcher{results: []places.Place{
		{Name: "Far", Lat: 41.40, Lng: 69.40},
		{Name: "Near", Lat: 41.30, Lng: 69.25},
		{Name: "Mid", Lat: 41.35, Lng: 69.30},
	}}
	svc := NewGeoSearchService(searcher, &fakeLocator{})

	origin := &models.SearchLocation{Lat: 41.2995, Lng: 69.2401}
	results, err := svc.SearchNearby(context.Background(), "plumber", 5000, origin)
	require.NoError(t, err)
	require.Len(t, results.Results, 3)

	assert.Equal(t, "Near", results.Results[0].Name)
	assert.Equal(t, "Mid", results.Results[1].Name)
	assert.Equal(t, "Far", results.Results[2].Name)

	// distances are rounded and non-decreasing
	assert.LessOrEqual(t, results.Results[0].DistanceKm, results.Results[1].DistanceKm)
	assert.LessOrEqual(t, results.Results[1].DistanceKm, results.Results[2].DistanceKm)
}

func TestSearchNearbyUsesGeolocationWhenNoOrigin(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := NewGeoSearchService(searcher, &fakeLocator{lat: 41.2995, lon: 69.2401})

	_, err := svc.SearchNearby(context.Background(), "electrician", 1000, nil)
	require.NoError(t, err)

	assert.Equal(t, 41.2995, searcher.gotLat)
	assert.Equal(t, 69.2401, searcher.gotLon)
}

func TestSearchNearbyProviderFailureIsUpstream(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("dial tcp: timeout")}
	svc := NewGeoSearchService(searcher, &fakeLocator{})

	_, err := svc.SearchNearby(context.Background(), "plumber", 1000, &models.SearchLocation{})
	require.Error(t, err)

	appErr := apperror.From(err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", appErr.Code)
	assert.True(t, appErr.Retryable)
}

func TestCurrentLocationProviderFailureIsUpstream(t *testing.T) {
	svc := NewGeoSearchService(&fakeSearcher{}, &fakeLocator{err: errors.New("403")})

	_, err := svc.CurrentLocation(context.Background())
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", apperror.From(err).Code)
}

func TestSearchNearbyEmptyResult(t *testing.T) {
	svc := NewGeoSearchService(&fakeSearcher{}, &fakeLocator{})

	results, err := svc.SearchNearby(context.Background(), "unicorn groomer", 1000, &models.SearchLocation{})
	require.NoError(t, err)
	assert.Empty(t, results.Results)
}

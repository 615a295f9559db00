package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	c := NewClient("test-key", time.Second)
	c.baseURL = url
	return c
}

func TestNearbySearchParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/nearbysearch/json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "plumber", q.Get("keyword"))
		assert.Equal(t, "5000", q.Get("radius"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"name": "Fast Fix Plumbing",
					"vicinity": "12 Amir Temur Ave",
					"rating": 4.6,
					"geometry": {"location": {"lat": 41.31, "lng": 69.28}}
				},
				{
					"geometry": {"location": {"lat": 41.32, "lng": 69.25}}
				}
			]
		}`))
	}))
	defer srv.Close()

	results, err := newTestClient(srv.URL).NearbySearch(context.Background(), "plumber", 5000, 41.2995, 69.2401)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Fast Fix Plumbing", results[0].Name)
	assert.Equal(t, "12 Amir Temur Ave", results[0].Address)
	assert.Equal(t, "4.6", results[0].Rating)
	assert.Equal(t, 41.31, results[0].Lat)
	assert.Equal(t, 69.28, results[0].Lng)

	// missing fields fall back to placeholders
	assert.Equal(t, "N/A", results[1].Name)
	assert.Equal(t, "N/A", results[1].Address)
	assert.Equal(t, "No rating", results[1].Rating)
}

func TestNearbySearchZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	results, err := newTestClient(srv.URL).NearbySearch(context.Background(), "unicorn groomer", 1000, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbySearchProviderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).NearbySearch(context.Background(), "plumber", 1000, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestNearbySearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).NearbySearch(context.Background(), "plumber", 1000, 0, 0)
	assert.Error(t, err)
}

func TestCurrentLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/geolocate", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Write([]byte(`{"location": {"lat": 41.2995, "lng": 69.2401}, "accuracy": 1500}`))
	}))
	defer srv.Close()

	c := NewGeolocationClient("test-key", time.Second)
	c.baseURL = srv.URL

	lat, lon, err := c.CurrentLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 41.2995, lat)
	assert.Equal(t, 69.2401, lon)
}

func TestCurrentLocationProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewGeolocationClient("bad-key", time.Second)
	c.baseURL = srv.URL

	_, _, err := c.CurrentLocation(context.Background())
	assert.Error(t, err)
}

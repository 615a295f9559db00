package service

import (
	"context"
	"sort"

	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
	"jobconnect-backend/pkg/geo"
	"jobconnect-backend/pkg/places"
)

// NearbySearcher - the slice of the places client this service needs.
type NearbySearcher interface {
	NearbySearch(ctx context.Context, keyword string, radiusMeters int, lat, lon float64) ([]places.Place, error)
}

// Locator - resolves the caller's coordinates.
type Locator interface {
	CurrentLocation(ctx context.Context) (lat, lon float64, err error)
}

// GeoSearchService - nearby business search backed by external providers.
// When the caller supplies no origin, the current location is resolved by
// IP geolocation.
type GeoSearchService struct {
	places      NearbySearcher
	geolocation Locator
}

func NewGeoSearchService(placesClient NearbySearcher, geolocation Locator) *GeoSearchService {
	return &GeoSearchService{places: placesClient, geolocation: geolocation}
}

// CurrentLocation - the caller's approximate coordinates by IP.
func (s *GeoSearchService) CurrentLocation(ctx context.Context) (*models.SearchLocation, error) {
	lat, lon, err := s.geolocation.CurrentLocation(ctx)
	if err != nil {
		return nil, apperror.NewUpstream("Geolocation service unavailable", err)
	}
	return &models.SearchLocation{Lat: lat, Lng: lon}, nil
}

// SearchNearby - businesses matching keyword around the origin, nearest
// first, each annotated with its great-circle distance. A nil origin
// resolves to the caller's IP location.
func (s *GeoSearchService) SearchNearby(ctx context.Context, keyword string, radiusMeters int, origin *models.SearchLocation) (*models.BusinessSearchResults, error) {
	if origin == nil {
		loc, err := s.CurrentLocation(ctx)
		if err != nil {
			return nil, err
		}
		origin = loc
	}

	hits, err := s.places.NearbySearch(ctx, keyword, radiusMeters, origin.Lat, origin.Lng)
	if err != nil {
		return nil, apperror.NewUpstream("Places search unavailable", err)
	}

	results := make([]models.BusinessResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, models.BusinessResult{
			Name:       h.Name,
			Address:    h.Address,
			Rating:     h.Rating,
			DistanceKm: geo.RoundKm(geo.HaversineKm(origin.Lat, origin.Lng, h.Lat, h.Lng)),
			Location:   models.SearchLocation{Lat: h.Lat, Lng: h.Lng},
		})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return &models.BusinessSearchResults{Results: results}, nil
}

package handlers

import (
	"net/http"
	"strconv"

	"jobconnect-backend/internal/service"
	"jobconnect-backend/models"
	"jobconnect-backend/pkg/apperror"
)

// ============================================
// GEO SEARCH HANDLERS
// ============================================

const defaultSearchRadiusKm = 5.0

// SearchNearby - GET /api/v1/search/nearby?keyword=&radius_km=&lat=&lon=
// Missing coordinates fall back to IP geolocation.
func SearchNearby(svc *service.GeoSearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}

		q := r.URL.Query()
		keyword := q.Get("keyword")
		if keyword == "" {
			writeError(w, r, apperror.NewValidation("keyword query parameter is required"))
			return
		}

		radiusKm := defaultSearchRadiusKm
		if raw := q.Get("radius_km"); raw != "" {
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || parsed <= 0 {
				writeError(w, r, apperror.NewValidation("radius_km must be a positive number"))
				return
			}
			radiusKm = parsed
		}

		var origin *models.SearchLocation
		rawLat, rawLon := q.Get("lat"), q.Get("lon")
		if rawLat != "" || rawLon != "" {
			lat, latErr := strconv.ParseFloat(rawLat, 64)
			lon, lonErr := strconv.ParseFloat(rawLon, 64)
			if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
				writeError(w, r, apperror.NewValidation("lat and lon must be valid coordinates"))
				return
			}
			origin = &models.SearchLocation{Lat: lat, Lng: lon}
		}

		results, err := svc.SearchNearby(r.Context(), keyword, int(radiusKm*1000), origin)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

// CurrentLocation - GET /api/v1/search/current-location
func CurrentLocation(svc *service.GeoSearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		location, err := svc.CurrentLocation(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, location)
	}
}

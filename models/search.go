package models

// SearchLocation - coordinate pair in provider order (lat, lng)
type SearchLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BusinessResult - one nearby-search hit with the computed distance
type BusinessResult struct {
	Name       string         `json:"name"`
	Address    string         `json:"address"`
	Rating     string         `json:"rating"`
	DistanceKm float64        `json:"distance_km"`
	Location   SearchLocation `json:"location"`
}

// BusinessSearchResults - nearby-search response body
type BusinessSearchResults struct {
	Results []BusinessResult `json:"results"`
}

// ErrorResponse - error body for all failed requests
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultResponse - body for delete/boolean operations
type ResultResponse struct {
	Result bool `json:"result"`
}

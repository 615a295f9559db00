package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const placesBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client - nearby-search provider client. The provider protocol is treated
// as an opaque external collaborator; this client only shapes requests and
// decodes responses.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// Place - a single result from the provider.
type Place struct {
	Name     string
	Address  string
	Rating   string
	Lat      float64
	Lng      float64
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
		Rating   any    `json:"rating"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewClient - provider client with an enforced request timeout.
func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: placesBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NearbySearch - look up places around (lat, lon) matching keyword within
// radiusMeters. Provider errors and timeouts come back as plain errors; the
// caller decides how to surface them.
func (c *Client) NearbySearch(ctx context.Context, keyword string, radiusMeters int, lat, lon float64) ([]Place, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("keyword", keyword)
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("location", fmt.Sprintf("%f,%f", lat, lon))

	endpoint := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build nearby search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearby search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nearby search response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nearby search: provider returned %d", resp.StatusCode)
	}

	var decoded nearbyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode nearby search response: %w", err)
	}
	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby search: provider status %s", decoded.Status)
	}

	results := make([]Place, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		place := Place{
			Name:    "N/A",
			Address: "N/A",
			Rating:  "No rating",
			Lat:     r.Geometry.Location.Lat,
			Lng:     r.Geometry.Location.Lng,
		}
		if r.Name != "" {
			place.Name = r.Name
		}
		if r.Vicinity != "" {
			place.Address = r.Vicinity
		}
		if r.Rating != nil {
			place.Rating = fmt.Sprintf("%v", r.Rating)
		}
		results = append(results, place)
	}
	return results, nil
}

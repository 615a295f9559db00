package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const geolocationBaseURL = "https://www.googleapis.com/geolocation/v1"

// GeolocationClient - resolves the caller's approximate coordinates from an
// IP-geolocation provider.
type GeolocationClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type geolocationResponse struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}

// NewGeolocationClient - provider client with an enforced request timeout.
func NewGeolocationClient(apiKey string, timeout time.Duration) *GeolocationClient {
	return &GeolocationClient{
		apiKey:  apiKey,
		baseURL: geolocationBaseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentLocation - resolve the coordinate pair for the calling IP.
func (c *GeolocationClient) CurrentLocation(ctx context.Context) (lat, lon float64, err error) {
	payload, err := json.Marshal(map[string]bool{"considerIp": true})
	if err != nil {
		return 0, 0, fmt.Errorf("build geolocation payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/geolocate?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, 0, fmt.Errorf("build geolocation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geolocation: provider returned %d", resp.StatusCode)
	}

	var decoded geolocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return 0, 0, fmt.Errorf("decode geolocation response: %w", err)
	}
	return decoded.Location.Lat, decoded.Location.Lng, nil
}

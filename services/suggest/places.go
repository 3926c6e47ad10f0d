package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tradecall/models"
)

// placesResponse represents the structure of the response from the Google
// Places Autocomplete API.
type placesResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		Description string `json:"description"`
	} `json:"predictions"`
}

// GooglePlacesClient fetches address predictions from the Places Autocomplete
// API, restricted to one country and to address-type results.
type GooglePlacesClient struct {
	APIKey     string
	Country    string
	HTTPClient *http.Client
}

func NewGooglePlacesClient(apiKey, country string) *GooglePlacesClient {
	return &GooglePlacesClient{
		APIKey:     apiKey,
		Country:    country,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (g *GooglePlacesClient) Suggestions(ctx context.Context, partial string) ([]models.PlaceSuggestion, error) {
	if g.APIKey == "" {
		return nil, fmt.Errorf("places API key not configured")
	}

	endpoint := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/place/autocomplete/json?input=%s&types=address&components=country:%s&key=%s",
		url.QueryEscape(partial), g.Country, g.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API returned status %s", parsed.Status)
	}

	suggestions := make([]models.PlaceSuggestion, 0, len(parsed.Predictions))
	for _, p := range parsed.Predictions {
		suggestions = append(suggestions, models.PlaceSuggestion{Description: p.Description})
	}
	return suggestions, nil
}

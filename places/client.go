package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vibedine/api-go/config"
	"github.com/vibedine/api-go/types"
)

const defaultBaseURL = "https://places.googleapis.com"

// Field masks keep the provider payload down to what the normalizer reads.
const (
	searchFieldMask = "places.id,places.displayName,places.formattedAddress,places.rating,places.userRatingCount,places.priceLevel,places.editorialSummary,places.photos,places.types,places.primaryType,places.currentOpeningHours,places.location,places.googleMapsUri,nextPageToken"
	detailFieldMask = "id,displayName,formattedAddress,rating,userRatingCount,priceLevel,editorialSummary,photos,types,primaryType,currentOpeningHours,location,googleMapsUri,reviews"
)

// UpstreamError is a non-success response from the places provider. The
// status and body are logged server-side only; clients get a generic 500.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("google places api error (%d): %s", e.StatusCode, e.Body)
}

// Client wraps the Google Places API (New).
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	PageSize   int
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		PageSize:   config.PageSize,
	}
}

// SearchCity fetches one Text Search page of restaurants for a city.
// pageToken is empty for the first page. Single attempt, no retries.
func (c *Client) SearchCity(ctx context.Context, city types.City, pageToken string) (*types.TextSearchResponse, error) {
	body := types.TextSearchRequest{
		TextQuery:    fmt.Sprintf("best restaurants in %s, India", city),
		LanguageCode: "en",
		PageSize:     c.PageSize,
		PageToken:    pageToken,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/places:searchText", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", searchFieldMask)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result types.TextSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}

	return &result, nil
}

// SearchRestaurants pages through Text Search results for a city, stopping
// after config.MaxPages pages, once maxResults places are accumulated, or
// when the provider stops returning a continuation token — whichever comes
// first. This bounds worst-case latency and upstream cost.
func (c *Client) SearchRestaurants(ctx context.Context, city types.City, maxResults int) ([]types.Place, error) {
	var all []types.Place
	pageToken := ""

	for page := 0; page < config.MaxPages && len(all) < maxResults; page++ {
		resp, err := c.SearchCity(ctx, city, pageToken)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Places...)
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(all) > maxResults {
		all = all[:maxResults]
	}
	return all, nil
}

// GetPlaceByID fetches the full detail record for a single place.
func (c *Client) GetPlaceByID(ctx context.Context, id string) (*types.Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/places/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.APIKey)
	req.Header.Set("X-Goog-FieldMask", detailFieldMask)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var place types.Place
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}

	return &place, nil
}

package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/leadradar/leadgen-api/internal/apperrors"
	"github.com/leadradar/leadgen-api/pkg/config"
)

// API is the Places surface the search orchestrator depends on.
type API interface {
	Geocode(ctx context.Context, locationText string) (LatLng, error)
	NearbySearch(ctx context.Context, location LatLng, radius int, category string) ([]PlaceSummary, error)
	TextSearch(ctx context.Context, query string, location LatLng, radius int) ([]PlaceSummary, error)
	PlaceDetails(ctx context.Context, placeID string) (PlaceDetail, error)
}

// Client talks to the Google Maps web service API
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a new Google Maps API client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:  cfg.GoogleMapsAPIKey,
		baseURL: cfg.GoogleMapsBaseURL,
	}
}

// Geocode resolves free-form location text to coordinates.
func (c *Client) Geocode(ctx context.Context, locationText string) (LatLng, error) {
	params := url.Values{}
	params.Set("address", locationText)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return LatLng{}, err
	}
	if err := statusError(resp.Status, resp.ErrorMessage); err != nil {
		return LatLng{}, err
	}
	if len(resp.Results) == 0 {
		return LatLng{}, apperrors.LocationNotFound(fmt.Sprintf("no results for location %q", locationText), nil)
	}
	return resp.Results[0].Geometry.Location, nil
}

// NearbySearch finds places of the given category around a coordinate.
func (c *Client) NearbySearch(ctx context.Context, location LatLng, radius int, category string) ([]PlaceSummary, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(location))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", category)

	var resp searchResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := statusError(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// TextSearch runs a free-text place query biased to a coordinate.
func (c *Client) TextSearch(ctx context.Context, query string, location LatLng, radius int) ([]PlaceSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", formatLatLng(location))
	params.Set("radius", strconv.Itoa(radius))

	var resp searchResponse
	if err := c.get(ctx, "/place/textsearch/json", params, &resp); err != nil {
		return nil, err
	}
	if err := statusError(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// PlaceDetails fetches the contact fields for a single place.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (PlaceDetail, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,formatted_phone_number,website,rating,user_ratings_total")

	var resp detailsResponse
	if err := c.get(ctx, "/place/details/json", params, &resp); err != nil {
		return PlaceDetail{}, err
	}
	if err := statusError(resp.Status, resp.ErrorMessage); err != nil {
		return PlaceDetail{}, err
	}
	return resp.Result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	requestURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return apperrors.ServiceError("failed to create places request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.ServiceError("places request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.ServiceError("failed to read places response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return apperrors.ServiceError(fmt.Sprintf("places API returned status %d", resp.StatusCode), nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.ServiceError("failed to parse places response", err)
	}
	return nil
}

// statusError maps the API-level status field to application errors. OK and
// ZERO_RESULTS on search endpoints are not errors; geocode handles its own
// empty-result case.
func statusError(status, errorMessage string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "OVER_QUERY_LIMIT":
		return apperrors.QuotaExceeded("places API quota exceeded", nil)
	case "REQUEST_DENIED":
		return apperrors.CredentialsRejected("places API rejected the credentials", nil).WithDetails(errorMessage)
	case "NOT_FOUND":
		return apperrors.NotFound("place not found", nil)
	default:
		return apperrors.ServiceError(fmt.Sprintf("places API status %s", status), nil).WithDetails(errorMessage)
	}
}

func formatLatLng(l LatLng) string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

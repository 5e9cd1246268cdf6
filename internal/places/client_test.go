package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadradar/leadgen-api/internal/apperrors"
	"github.com/leadradar/leadgen-api/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.Config{
		GoogleMapsAPIKey:  "test-key",
		GoogleMapsBaseURL: server.URL,
	})
}

func TestGeocode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "São Paulo, SP", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": -23.5505, "lng": -46.6333}}}]
		}`))
	})

	loc, err := client.Geocode(context.Background(), "São Paulo, SP")
	require.NoError(t, err)
	assert.InDelta(t, -23.5505, loc.Lat, 1e-9)
	assert.InDelta(t, -46.6333, loc.Lng, 1e-9)
}

func TestGeocode_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeLocationNotFound))
}

func TestNearbySearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
		assert.Equal(t, "5000", r.URL.Query().Get("radius"))
		assert.Equal(t, "-23.5505,-46.6333", r.URL.Query().Get("location"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "Café X", "vicinity": "Rua A, 1", "rating": 4.8, "user_ratings_total": 40},
				{"place_id": "p2", "name": "Padaria Central", "vicinity": "Rua B, 22", "rating": 4.1, "user_ratings_total": 12}
			]
		}`))
	})

	results, err := client.NearbySearch(context.Background(), LatLng{Lat: -23.5505, Lng: -46.6333}, 5000, "restaurant")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Café X", results[0].Name)
	assert.Equal(t, 4.8, results[0].Rating)
	assert.Equal(t, 40, results[0].UserRatingsTotal)
}

func TestTextSearch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/textsearch/json", r.URL.Path)
		assert.Equal(t, "pizzaria", r.URL.Query().Get("query"))

		w.Write([]byte(`{
			"status": "OK",
			"results": [{"place_id": "p3", "name": "Pizzaria Napoli", "formatted_address": "Av. C, 3"}]
		}`))
	})

	results, err := client.TextSearch(context.Background(), "pizzaria", LatLng{Lat: 1, Lng: 2}, 5000)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Pizzaria Napoli", results[0].Name)
}

func TestPlaceDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))

		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Café X",
				"formatted_address": "Rua A, 1 - São Paulo",
				"formatted_phone_number": "(11) 99999-0000",
				"website": "https://cafex.com.br",
				"rating": 4.8,
				"user_ratings_total": 40
			}
		}`))
	})

	detail, err := client.PlaceDetails(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Café X", detail.Name)
	assert.Equal(t, "(11) 99999-0000", detail.FormattedPhone)
	assert.Equal(t, "https://cafex.com.br", detail.Website)
}

func TestStatusErrorMapping(t *testing.T) {
	testCases := []struct {
		status   string
		wantCode string
	}{
		{status: "OVER_QUERY_LIMIT", wantCode: apperrors.ErrCodeQuotaExceeded},
		{status: "REQUEST_DENIED", wantCode: apperrors.ErrCodeCredentialsRejected},
		{status: "NOT_FOUND", wantCode: apperrors.ErrCodeNotFound},
		{status: "UNKNOWN_ERROR", wantCode: apperrors.ErrCodeServiceError},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "` + tc.status + `", "results": []}`))
			})

			_, err := client.NearbySearch(context.Background(), LatLng{}, 1000, "gym")
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, tc.wantCode), "got %v", err)
		})
	}
}

func TestNearbySearch_ZeroResultsIsEmptyNotError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	results, err := client.NearbySearch(context.Background(), LatLng{}, 1000, "gym")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestClient_HTTPErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Geocode(context.Background(), "São Paulo, SP")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeServiceError))
}

func TestClient_ContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.NearbySearch(ctx, LatLng{}, 1000, "gym")
	require.Error(t, err)
}

package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestNearbySearch(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"place_id": "p1", "name": "Luigi's", "vicinity": "12 Mott St", "rating": 4.5, "price_level": 2},
				{"place_id": "p2", "name": "Taqueria", "vicinity": "9 Grand St"}
			]
		}`))
	})

	results, err := client.NearbySearch(context.Background(), NearbySearchRequest{
		Location: LatLng{Lat: 40.7128, Lng: -74.0060},
		Radius:   2000,
		OpenNow:  true,
		Type:     "restaurant",
		Keyword:  "pizza",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Luigi's", results[0].Name)
	require.NotNil(t, results[0].Rating)
	assert.Equal(t, 4.5, *results[0].Rating)
	assert.Nil(t, results[1].Rating)

	assert.Equal(t, "40.712800,-74.006000", gotQuery.Get("location"))
	assert.Equal(t, "2000", gotQuery.Get("radius"))
	assert.Equal(t, "restaurant", gotQuery.Get("type"))
	assert.Equal(t, "true", gotQuery.Get("opennow"))
	assert.Equal(t, "pizza", gotQuery.Get("keyword"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))
}

func TestNearbySearchDefaults(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	_, err := client.NearbySearch(context.Background(), NearbySearchRequest{})
	require.NoError(t, err)

	assert.Equal(t, "1000", gotQuery.Get("radius"))
	assert.Equal(t, "restaurant", gotQuery.Get("type"))
	assert.Empty(t, gotQuery.Get("opennow"))
	assert.Empty(t, gotQuery.Get("keyword"))
}

func TestNearbySearchZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	results, err := client.NearbySearch(context.Background(), NearbySearchRequest{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbySearchBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	})

	_, err := client.NearbySearch(context.Background(), NearbySearchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
	assert.Contains(t, err.Error(), "API key is invalid")
}

func TestNearbySearchTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.NearbySearch(context.Background(), NearbySearchRequest{})
	assert.Error(t, err)
}

func TestDetails(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"name": "Luigi's",
				"formatted_address": "12 Mott St, New York, NY",
				"formatted_phone_number": "(212) 555-0101",
				"website": "https://luigis.example.com",
				"rating": 4.5,
				"price_level": 3,
				"opening_hours": {"open_now": true, "weekday_text": ["Monday: 11:00 AM - 10:00 PM"]}
			}
		}`))
	})

	detail, err := client.Details(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Luigi's", detail.Name)
	assert.Equal(t, "12 Mott St, New York, NY", detail.FormattedAddress)
	require.NotNil(t, detail.OpeningHours)
	assert.Equal(t, []string{"Monday: 11:00 AM - 10:00 PM"}, detail.OpeningHours.WeekdayText)

	assert.Equal(t, "p1", gotQuery.Get("place_id"))
	assert.Equal(t, detailFields, gotQuery.Get("fields"))
}

func TestDetailsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	})

	detail, err := client.Details(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGeocode(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 48.8566, "lng": 2.3522}}}]
		}`))
	})

	location, err := client.Geocode(context.Background(), "Paris, France")
	require.NoError(t, err)
	require.NotNil(t, location)

	assert.Equal(t, 48.8566, location.Lat)
	assert.Equal(t, 2.3522, location.Lng)
	assert.Equal(t, "Paris, France", gotQuery.Get("address"))
}

func TestGeocodeNoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	location, err := client.Geocode(context.Background(), "nowhere at all")
	require.NoError(t, err)
	assert.Nil(t, location)
}

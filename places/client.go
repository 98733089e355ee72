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
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Backend statuses that mean "nothing matched" rather than "the call failed".
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

// detailFields is the fixed field set requested from the details endpoint.
const detailFields = "name,formatted_address,formatted_phone_number,opening_hours,website,rating,reviews,price_level,photos,geometry"

// NearbySearchRequest configures a nearby search call.
type NearbySearchRequest struct {
	Location LatLng
	Radius   int
	OpenNow  bool
	Type     string
	Keyword  string
}

// Client calls the Google Maps web services. It does not retry or suppress
// transport and auth failures; callers decide how to surface them.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("places api key is required")
	}

	client := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// NearbySearch returns the raw result records for places matching the request,
// in backend order. An empty slice is a valid non-error result.
func (c *Client) NearbySearch(ctx context.Context, req NearbySearchRequest) ([]Place, error) {
	if req.Radius <= 0 {
		req.Radius = 1000
	}
	if req.Type == "" {
		req.Type = "restaurant"
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", req.Location.Lat, req.Location.Lng))
	params.Set("radius", strconv.Itoa(req.Radius))
	params.Set("type", req.Type)
	if req.OpenNow {
		params.Set("opennow", "true")
	}
	if req.Keyword != "" {
		params.Set("keyword", req.Keyword)
	}

	var parsed nearbySearchResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &parsed); err != nil {
		return nil, err
	}

	if err := checkStatus(parsed.Status, parsed.ErrorMessage); err != nil {
		return nil, err
	}

	return parsed.Results, nil
}

// Details fetches the full record for one place. It returns nil when the
// backend has nothing for the identifier.
func (c *Client) Details(ctx context.Context, placeID string) (*PlaceDetail, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)

	var parsed placeDetailsResponse
	if err := c.get(ctx, "/place/details/json", params, &parsed); err != nil {
		return nil, err
	}

	if err := checkStatus(parsed.Status, parsed.ErrorMessage); err != nil {
		return nil, err
	}

	return parsed.Result, nil
}

// Geocode resolves an address to coordinates. A nil result with a nil error
// means the backend found no match.
func (c *Client) Geocode(ctx context.Context, address string) (*LatLng, error) {
	params := url.Values{}
	params.Set("address", address)

	var parsed geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &parsed); err != nil {
		return nil, err
	}

	if err := checkStatus(parsed.Status, parsed.ErrorMessage); err != nil {
		return nil, err
	}

	if len(parsed.Results) == 0 {
		return nil, nil
	}

	location := parsed.Results[0].Geometry.Location
	return &location, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read places response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places api error (%d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode places response: %w", err)
	}

	return nil
}

func checkStatus(status, message string) error {
	switch status {
	case statusOK, statusZeroResults, statusNotFound:
		return nil
	default:
		if message != "" {
			return fmt.Errorf("places api status %s: %s", status, message)
		}
		return fmt.Errorf("places api status %s", status)
	}
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/tools"

	"github.com/findmydinner/find-my-dinner/places"
)

const defaultRadiusMeters = 1000

// FindNearbyRestaurantsInput is the argument set for the nearby-restaurants
// tool. Location is required; Radius and Keyword are optional.
type FindNearbyRestaurantsInput struct {
	Location string `json:"location"`
	Radius   string `json:"radius"`
	Keyword  string `json:"keyword"`
}

// FindNearbyRestaurants finds restaurants that are currently open near a
// location given as an address or as "lat,lng".
type FindNearbyRestaurants struct {
	service PlacesService
}

var _ tools.Tool = &FindNearbyRestaurants{}

func NewFindNearbyRestaurants(service PlacesService) *FindNearbyRestaurants {
	return &FindNearbyRestaurants{service: service}
}

func (t *FindNearbyRestaurants) Name() string {
	return "find_nearby_restaurants"
}

func (t *FindNearbyRestaurants) Description() string {
	return `Find restaurants that are currently open near a specified location.
Input is a JSON object with keys:
  "location": address or "latitude,longitude" (required)
  "radius": search radius in meters, or with units like "5 km" (default "1000")
  "keyword": optional keyword to filter results (e.g. "pizza", "italian")`
}

// Call resolves the location, searches for open restaurants and renders the
// results as one text block. Backend misses (no geocode match, no results)
// come back as explanatory text; transport failures are returned as errors.
func (t *FindNearbyRestaurants) Call(ctx context.Context, input string) (string, error) {
	args, err := parseNearbyInput(input)
	if err != nil {
		return err.Error(), nil
	}

	radiusMeters, ok := places.ParseDistance(args.Radius)
	if !ok {
		radiusMeters = defaultRadiusMeters
	}

	location, direct := parseCoordinates(args.Location)
	if !direct {
		location, err = t.service.Geocode(ctx, args.Location)
		if err != nil {
			return "", fmt.Errorf("geocode %q: %w", args.Location, err)
		}
		if location == nil {
			return fmt.Sprintf("Could not geocode address: %s", args.Location), nil
		}
	}

	slog.Info("searching nearby restaurants",
		"location", args.Location,
		"radius_meters", radiusMeters,
		"keyword", args.Keyword,
	)

	results, err := t.service.NearbySearch(ctx, places.NearbySearchRequest{
		Location: *location,
		Radius:   radiusMeters,
		OpenNow:  true,
		Type:     "restaurant",
		Keyword:  args.Keyword,
	})
	if err != nil {
		return "", fmt.Errorf("nearby search failed: %w", err)
	}

	if len(results) == 0 {
		return fmt.Sprintf("No open restaurants found near %s within %s", args.Location, args.Radius), nil
	}

	var out strings.Builder
	fmt.Fprintf(&out, "Found %d open restaurants near %s:\n\n", len(results), args.Location)

	for i, place := range results {
		summary := places.Summarize(place)
		fmt.Fprintf(&out, "%d. %s\n", i+1, summary.Name)
		fmt.Fprintf(&out, "   Address: %s\n", summary.Address)
		fmt.Fprintf(&out, "   Rating: %s stars\n", summary.Rating)
		fmt.Fprintf(&out, "   Price: %s\n\n", summary.PriceLevel)
	}

	out.WriteString("To get more details about a specific restaurant, use the get_restaurant_details tool with the place_id.")

	return out.String(), nil
}

func parseNearbyInput(input string) (FindNearbyRestaurantsInput, error) {
	args := FindNearbyRestaurantsInput{Radius: strconv.Itoa(defaultRadiusMeters)}

	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") {
		var raw struct {
			FindNearbyRestaurantsInput
			Arg1 string `json:"__arg1"`
		}
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return args, fmt.Errorf("could not resolve tool input: %v", err)
		}
		if raw.Location != "" {
			args.Location = raw.Location
		} else {
			args.Location = raw.Arg1
		}
		if raw.Radius != "" {
			args.Radius = raw.Radius
		}
		args.Keyword = raw.Keyword
	} else {
		// Bare input is the location itself.
		args.Location = trimmed
	}

	if args.Location == "" {
		return args, fmt.Errorf("could not resolve tool input: location is required")
	}

	return args, nil
}

// parseCoordinates recognizes the "lat,lng" form: exactly two comma-separated
// tokens that each parse as a number.
func parseCoordinates(location string) (*places.LatLng, bool) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return nil, false
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return nil, false
	}

	return &places.LatLng{Lat: lat, Lng: lng}, true
}

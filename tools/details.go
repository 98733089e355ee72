package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/tools"

	"github.com/findmydinner/find-my-dinner/places"
)

// GetRestaurantDetails fetches the full record for one restaurant by its
// place identifier.
type GetRestaurantDetails struct {
	service PlacesService
}

var _ tools.Tool = &GetRestaurantDetails{}

func NewGetRestaurantDetails(service PlacesService) *GetRestaurantDetails {
	return &GetRestaurantDetails{service: service}
}

func (t *GetRestaurantDetails) Name() string {
	return "get_restaurant_details"
}

func (t *GetRestaurantDetails) Description() string {
	return `Get detailed information about a specific restaurant by its place_id.
Input is either the place_id string itself or a JSON object {"place_id": "..."}.`
}

func (t *GetRestaurantDetails) Call(ctx context.Context, input string) (string, error) {
	placeID, err := parseDetailsInput(input)
	if err != nil {
		return err.Error(), nil
	}

	detail, err := t.service.Details(ctx, placeID)
	if err != nil {
		return "", fmt.Errorf("fetch details for %q: %w", placeID, err)
	}

	if detail == nil {
		return fmt.Sprintf("No details found for place_id: %s", placeID), nil
	}

	formatted := places.FormatDetails(*detail)

	var out strings.Builder
	fmt.Fprintf(&out, "Details for %s:\n\n", formatted.Name)
	fmt.Fprintf(&out, "Address: %s\n", formatted.Address)
	fmt.Fprintf(&out, "Phone: %s\n", formatted.Phone)
	fmt.Fprintf(&out, "Website: %s\n", formatted.Website)
	fmt.Fprintf(&out, "Rating: %s stars\n", formatted.Rating)
	fmt.Fprintf(&out, "Price: %s\n\n", formatted.PriceLevel)

	if len(formatted.OpeningHours.WeekdayText) > 0 {
		out.WriteString("Opening Hours:\n")
		for _, hours := range formatted.OpeningHours.WeekdayText {
			fmt.Fprintf(&out, "- %s\n", hours)
		}
	}

	return out.String(), nil
}

func parseDetailsInput(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "{") {
		var raw struct {
			PlaceID string `json:"place_id"`
			Arg1    string `json:"__arg1"`
		}
		if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
			return "", fmt.Errorf("could not resolve tool input: %v", err)
		}
		if raw.PlaceID != "" {
			return raw.PlaceID, nil
		}
		trimmed = raw.Arg1
	}

	if trimmed == "" {
		return "", fmt.Errorf("could not resolve tool input: place_id is required")
	}

	return trimmed, nil
}

package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findmydinner/find-my-dinner/places"
)

func boolPtr(b bool) *bool { return &b }

func TestGetDetails(t *testing.T) {
	service := &fakePlacesService{
		detailResult: &places.PlaceDetail{
			Name:                 "Luigi's",
			FormattedAddress:     "12 Mott St, New York, NY",
			FormattedPhoneNumber: "(212) 555-0101",
			Website:              "https://luigis.example.com",
			Rating:               rating(4.5),
			PriceLevel:           price(2),
			OpeningHours: &places.OpeningHours{
				OpenNow:     boolPtr(true),
				WeekdayText: []string{"Monday: 11:00 AM - 10:00 PM", "Tuesday: Closed"},
			},
		},
	}
	tool := NewGetRestaurantDetails(service)

	out, err := tool.Call(context.Background(), `{"place_id": "p1"}`)
	require.NoError(t, err)

	assert.Equal(t, "p1", service.lastDetailID)
	assert.Contains(t, out, "Details for Luigi's:")
	assert.Contains(t, out, "Address: 12 Mott St, New York, NY")
	assert.Contains(t, out, "Phone: (212) 555-0101")
	assert.Contains(t, out, "Website: https://luigis.example.com")
	assert.Contains(t, out, "Rating: 4.5 stars")
	assert.Contains(t, out, "Price: $$")
	assert.Contains(t, out, "Opening Hours:")
	assert.Contains(t, out, "- Monday: 11:00 AM - 10:00 PM")
	assert.Contains(t, out, "- Tuesday: Closed")
}

func TestGetDetailsWithoutHours(t *testing.T) {
	service := &fakePlacesService{
		detailResult: &places.PlaceDetail{Name: "Luigi's"},
	}
	tool := NewGetRestaurantDetails(service)

	out, err := tool.Call(context.Background(), "p1")
	require.NoError(t, err)

	assert.Contains(t, out, "Details for Luigi's:")
	assert.NotContains(t, out, "Opening Hours:")
	assert.Contains(t, out, "Phone: No phone number available")
	assert.Contains(t, out, "Website: No website available")
}

func TestGetDetailsMiss(t *testing.T) {
	tool := NewGetRestaurantDetails(&fakePlacesService{})

	out, err := tool.Call(context.Background(), "unknown-id")
	require.NoError(t, err)

	assert.Equal(t, "No details found for place_id: unknown-id", out)
}

func TestGetDetailsBareInput(t *testing.T) {
	service := &fakePlacesService{detailResult: &places.PlaceDetail{Name: "Luigi's"}}
	tool := NewGetRestaurantDetails(service)

	_, err := tool.Call(context.Background(), "  p42  ")
	require.NoError(t, err)

	assert.Equal(t, "p42", service.lastDetailID)
}

func TestGetDetailsMissingID(t *testing.T) {
	tool := NewGetRestaurantDetails(&fakePlacesService{})

	out, err := tool.Call(context.Background(), "{}")
	require.NoError(t, err)

	assert.Contains(t, out, "place_id is required")
}

func TestGetDetailsErrorPropagates(t *testing.T) {
	service := &fakePlacesService{detailErr: assert.AnError}
	tool := NewGetRestaurantDetails(service)

	_, err := tool.Call(context.Background(), "p1")
	assert.ErrorIs(t, err, assert.AnError)
}

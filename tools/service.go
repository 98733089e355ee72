// Package tools exposes the two places-backed actions the conversational
// agent can invoke: finding nearby open restaurants and fetching details for
// one restaurant.
package tools

import (
	"context"

	"github.com/findmydinner/find-my-dinner/places"
)

// PlacesService is the slice of the places client the tools depend on.
type PlacesService interface {
	Geocode(ctx context.Context, address string) (*places.LatLng, error)
	NearbySearch(ctx context.Context, req places.NearbySearchRequest) ([]places.Place, error)
	Details(ctx context.Context, placeID string) (*places.PlaceDetail, error)
}

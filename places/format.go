package places

import (
	"strconv"
	"strings"
)

// Display defaults used when a backend record omits a field.
const (
	noName    = "Unknown"
	noAddress = "No address available"
	noRating  = "No rating"
	noPrice   = "Price not available"
	noPhone   = "No phone number available"
	noWebsite = "No website available"
)

// Summary is a display-ready view of a nearby-search result.
type Summary struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Rating     string   `json:"rating"`
	PriceLevel string   `json:"price_level"`
	PlaceID    string   `json:"place_id"`
	Types      []string `json:"types"`
	Location   LatLng   `json:"location"`
}

// Details is a display-ready view of a place-details record.
type Details struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Website      string    `json:"website"`
	Rating       string    `json:"rating"`
	PriceLevel   string    `json:"price_level"`
	OpeningHours HoursInfo `json:"opening_hours"`
	Location     LatLng    `json:"location"`
}

// HoursInfo carries opening hours for display. It is zero valued when the
// backend did not report both the open-now flag and the weekday lines.
type HoursInfo struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

// Summarize maps a raw search result into display fields, defaulting safely
// when the source omits a value.
func Summarize(place Place) Summary {
	summary := Summary{
		Name:       place.Name,
		Address:    place.Vicinity,
		Rating:     formatRating(place.Rating),
		PriceLevel: formatPriceLevel(place.PriceLevel),
		PlaceID:    place.PlaceID,
		Types:      place.Types,
	}

	if summary.Name == "" {
		summary.Name = noName
	}
	if summary.Address == "" {
		summary.Address = noAddress
	}
	if summary.Types == nil {
		summary.Types = []string{}
	}
	if place.Geometry != nil {
		summary.Location = place.Geometry.Location
	}

	return summary
}

// FormatDetails maps a raw detail record into display fields. The opening
// hours block is populated only when the source provided both the open-now
// flag and the per-weekday lines.
func FormatDetails(detail PlaceDetail) Details {
	details := Details{
		Name:       detail.Name,
		Address:    detail.FormattedAddress,
		Phone:      detail.FormattedPhoneNumber,
		Website:    detail.Website,
		Rating:     formatRating(detail.Rating),
		PriceLevel: formatPriceLevel(detail.PriceLevel),
	}

	if details.Name == "" {
		details.Name = noName
	}
	if details.Address == "" {
		details.Address = noAddress
	}
	if details.Phone == "" {
		details.Phone = noPhone
	}
	if details.Website == "" {
		details.Website = noWebsite
	}
	if detail.Geometry != nil {
		details.Location = detail.Geometry.Location
	}

	if detail.OpeningHours != nil && detail.OpeningHours.OpenNow != nil && len(detail.OpeningHours.WeekdayText) > 0 {
		details.OpeningHours = HoursInfo{
			OpenNow:     *detail.OpeningHours.OpenNow,
			WeekdayText: detail.OpeningHours.WeekdayText,
		}
	}

	return details
}

// FilterByType keeps only places carrying the given category tag. An empty
// type returns the input unchanged.
func FilterByType(results []Place, placeType string) []Place {
	if placeType == "" {
		return results
	}

	filtered := make([]Place, 0, len(results))
	for _, place := range results {
		for _, t := range place.Types {
			if strings.EqualFold(t, placeType) {
				filtered = append(filtered, place)
				break
			}
		}
	}

	return filtered
}

func formatRating(rating *float64) string {
	if rating == nil {
		return noRating
	}
	return strconv.FormatFloat(*rating, 'f', -1, 64)
}

func formatPriceLevel(level *int) string {
	if level == nil || *level == 0 {
		return noPrice
	}
	return strings.Repeat("$", *level)
}

package places

// Wire types for the Google Maps web services (Places nearby search, place
// details and geocoding). Optional numeric fields are pointers so that an
// absent rating or price level is distinguishable from zero.

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location LatLng `json:"location"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type Photo struct {
	Height         int    `json:"height"`
	Width          int    `json:"width"`
	PhotoReference string `json:"photo_reference"`
}

type Review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

// Place is a single nearby-search result.
type Place struct {
	PlaceID      string        `json:"place_id"`
	Name         string        `json:"name"`
	Vicinity     string        `json:"vicinity"`
	Rating       *float64      `json:"rating,omitempty"`
	PriceLevel   *int          `json:"price_level,omitempty"`
	Types        []string      `json:"types,omitempty"`
	Geometry     *Geometry     `json:"geometry,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
}

// PlaceDetail is the full record returned by the place-details endpoint.
type PlaceDetail struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	FormattedAddress     string        `json:"formatted_address"`
	FormattedPhoneNumber string        `json:"formatted_phone_number"`
	Website              string        `json:"website"`
	Rating               *float64      `json:"rating,omitempty"`
	PriceLevel           *int          `json:"price_level,omitempty"`
	OpeningHours         *OpeningHours `json:"opening_hours,omitempty"`
	Reviews              []Review      `json:"reviews,omitempty"`
	Photos               []Photo       `json:"photos,omitempty"`
	Geometry             *Geometry     `json:"geometry,omitempty"`
}

type nearbySearchResponse struct {
	Results      []Place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
}

type placeDetailsResponse struct {
	Result       *PlaceDetail `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
}

type geocodeResponse struct {
	Results []struct {
		Geometry Geometry `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

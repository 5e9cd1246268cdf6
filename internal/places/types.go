package places

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceSummary is the subset of a Places search result the search flow needs.
type PlaceSummary struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Vicinity         string  `json:"vicinity"`
	FormattedAddress string  `json:"formatted_address"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
}

// PlaceDetail carries the contact fields only the details endpoint returns.
type PlaceDetail struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	FormattedPhone   string  `json:"formatted_phone_number"`
	Website          string  `json:"website"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
}

type geometry struct {
	Location LatLng `json:"location"`
}

type geocodeResult struct {
	Geometry geometry `json:"geometry"`
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message"`
	Results      []geocodeResult `json:"results"`
}

type searchResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []PlaceSummary `json:"results"`
}

type detailsResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Result       PlaceDetail `json:"result"`
}

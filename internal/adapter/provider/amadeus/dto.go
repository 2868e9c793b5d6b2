package amadeus

// Wire types for the Amadeus self-service APIs. Field names follow the
// provider's camelCase JSON; only the fields the transformer reads are
// declared.

// flightOffersResponse is the body of GET /v2/shopping/flight-offers.
type flightOffersResponse struct {
	Meta         offersMeta    `json:"meta"`
	Data         []flightOffer `json:"data"`
	Dictionaries *dictionaries `json:"dictionaries,omitempty"`
}

// offersMeta carries the provider-reported total match count, which may be
// larger than the number of offers returned.
type offersMeta struct {
	Count int `json:"count"`
}

// flightOffer is a single priced itinerary bundle.
type flightOffer struct {
	ID                     string            `json:"id"`
	OneWay                 bool              `json:"oneWay"`
	Itineraries            []itinerary       `json:"itineraries"`
	Price                  offerPrice        `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
	TravelerPricings       []travelerPricing `json:"travelerPricings"`
}

// itinerary is one directional journey composed of segments.
type itinerary struct {
	Duration string    `json:"duration"`
	Segments []segment `json:"segments"`
}

// segment is one non-stop leg.
type segment struct {
	ID          string       `json:"id"`
	Departure   flightPoint  `json:"departure"`
	Arrival     flightPoint  `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Aircraft    aircraftCode `json:"aircraft"`
	Duration    string       `json:"duration"`
}

// flightPoint is a departure or arrival airport with its timestamp.
type flightPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// aircraftCode wraps the provider's aircraft type code.
type aircraftCode struct {
	Code string `json:"code"`
}

// offerPrice is the offer's price breakdown.
type offerPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	GrandTotal string `json:"grandTotal"`
}

// travelerPricing carries the per-traveler fare details.
type travelerPricing struct {
	FareDetailsBySegment []fareDetail `json:"fareDetailsBySegment"`
}

// fareDetail is the fare of one traveler on one segment.
type fareDetail struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
}

// dictionaries maps provider codes to display names.
type dictionaries struct {
	Carriers map[string]string `json:"carriers,omitempty"`
	Aircraft map[string]string `json:"aircraft,omitempty"`
}

// locationsResponse is the body of GET /v1/reference-data/locations.
type locationsResponse struct {
	Data []location `json:"data"`
}

// location is one airport or city entry. Names arrive upper-cased.
type location struct {
	SubType  string          `json:"subType"`
	Name     string          `json:"name"`
	IataCode string          `json:"iataCode"`
	Address  locationAddress `json:"address"`
}

// locationAddress holds the location's city and country.
type locationAddress struct {
	CityName    string `json:"cityName"`
	CountryName string `json:"countryName"`
	CountryCode string `json:"countryCode"`
}

// tokenResponse is the body of POST /v1/security/oauth2/token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// apiError is the provider's error envelope.
type apiError struct {
	Errors []apiErrorDetail `json:"errors"`

	// OAuth endpoints use a flat error shape instead of the envelope.
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// apiErrorDetail is one entry of the provider's error envelope.
type apiErrorDetail struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

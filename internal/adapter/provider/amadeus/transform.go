package amadeus

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// bestValueStopPenalty is the per-stop penalty of the ingestion-time
// best-value badge score (score = price + stops*penalty, lower is better).
// This badge flags a single standout flight when results are installed; the
// "best" sort option of the filter engine is a separate algorithm with its
// own weights, and the two must not be unified.
const bestValueStopPenalty = 50.0

// durationRegex matches the ISO-8601 duration subset the provider emits:
// hours and minutes only, either component optional.
var durationRegex = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseDuration converts an ISO-8601 H/M duration to total minutes.
//
//	"PT7H30M" -> 450, "PT45M" -> 45, "PT12H" -> 720
//
// Malformed or unmatched input yields 0. This leniency is a deliberate
// product decision: a missing duration must not fail a whole result set.
// Callers that care use the boolean to observe the fallback.
func ParseDuration(isoDuration string) (int, bool) {
	matches := durationRegex.FindStringSubmatch(isoDuration)
	if matches == nil || (matches[1] == "" && matches[2] == "") {
		return 0, false
	}

	hours := 0
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	minutes := 0
	if matches[2] != "" {
		minutes, _ = strconv.Atoi(matches[2])
	}

	return hours*60 + minutes, true
}

// TitleCase converts the provider's ALL CAPS names to title case:
// "DELTA AIR LINES" -> "Delta Air Lines".
func TitleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first letter of a word, handling apostrophes
// so "o'hare" becomes "O'Hare".
func capitalize(word string) string {
	if word == "" {
		return word
	}
	if strings.Contains(word, "'") {
		parts := strings.Split(word, "'")
		for i, part := range parts {
			if part != "" {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
		return strings.Join(parts, "'")
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// knownAirlineLogos maps major airline codes to bundled logo assets.
var knownAirlineLogos = map[string]string{
	"DL": "/airlines/delta.svg",
	"AA": "/airlines/american.svg",
	"UA": "/airlines/united.svg",
	"BA": "/airlines/british-airways.svg",
	"LH": "/airlines/lufthansa.svg",
	"AF": "/airlines/air-france.svg",
	"KL": "/airlines/klm.svg",
	"EK": "/airlines/emirates.svg",
	"QR": "/airlines/qatar.svg",
	"SQ": "/airlines/singapore.svg",
}

// airlineLogo returns the logo asset reference for an airline code.
func airlineLogo(code string) string {
	if logo, ok := knownAirlineLogos[code]; ok {
		return logo
	}
	return "/airlines/" + strings.ToLower(code) + ".svg"
}

// carrierName resolves an airline code through the response dictionaries,
// falling back to the code itself.
func carrierName(code string, dicts *dictionaries) string {
	if dicts != nil && dicts.Carriers != nil {
		if name, ok := dicts.Carriers[code]; ok {
			return TitleCase(name)
		}
	}
	return code
}

// aircraftName resolves an aircraft code through the response dictionaries,
// falling back to the code itself.
func aircraftName(code string, dicts *dictionaries) string {
	if dicts != nil && dicts.Aircraft != nil {
		if name, ok := dicts.Aircraft[code]; ok && name != "" {
			return TitleCase(name)
		}
	}
	return code
}

// isNextDay reports whether arrival falls on a different UTC calendar day
// than departure.
func isNextDay(departure, arrival time.Time) bool {
	dy, dm, dd := departure.UTC().Date()
	ay, am, ad := arrival.UTC().Date()
	return dy != ay || dm != am || dd != ad
}

// parseTime parses the provider's local-time timestamps. The offer search
// emits "2006-01-02T15:04:05" without an offset; RFC3339 is accepted too.
func parseTime(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

// transformStats counts the silent fallbacks taken during a transform so the
// caller can surface them.
type transformStats struct {
	malformedDurations int
}

// transformOffer converts one provider offer into a normalized Flight.
// Only the first itinerary (the outbound leg) is represented.
func transformOffer(offer flightOffer, dicts *dictionaries, stats *transformStats) (domain.Flight, bool) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return domain.Flight{}, false
	}

	itin := offer.Itineraries[0]
	segments := itin.Segments
	first := segments[0]
	last := segments[len(segments)-1]

	airlineCode := ""
	if len(offer.ValidatingAirlineCodes) > 0 {
		airlineCode = offer.ValidatingAirlineCodes[0]
	}

	duration, ok := ParseDuration(itin.Duration)
	if !ok {
		stats.malformedDurations++
	}

	stops := len(segments) - 1
	stopLocations := make([]string, 0, stops)
	for _, seg := range segments[:len(segments)-1] {
		stopLocations = append(stopLocations, seg.Arrival.IataCode)
	}

	price, _ := strconv.ParseFloat(offer.Price.GrandTotal, 64)

	cabin := "ECONOMY"
	if len(offer.TravelerPricings) > 0 && len(offer.TravelerPricings[0].FareDetailsBySegment) > 0 {
		if c := offer.TravelerPricings[0].FareDetailsBySegment[0].Cabin; c != "" {
			cabin = c
		}
	}

	departureTime := parseTime(first.Departure.At)
	arrivalTime := parseTime(last.Arrival.At)

	flightSegments := make([]domain.FlightSegment, 0, len(segments))
	for _, seg := range segments {
		segDuration, ok := ParseDuration(seg.Duration)
		if !ok {
			stats.malformedDurations++
		}
		flightSegments = append(flightSegments, domain.FlightSegment{
			Airline:       carrierName(seg.CarrierCode, dicts),
			FlightNumber:  seg.CarrierCode + " " + seg.Number,
			Origin:        seg.Departure.IataCode,
			Destination:   seg.Arrival.IataCode,
			DepartureTime: parseTime(seg.Departure.At),
			ArrivalTime:   parseTime(seg.Arrival.At),
			Duration:      segDuration,
			Aircraft:      aircraftName(seg.Aircraft.Code, dicts),
		})
	}

	return domain.Flight{
		ID: offer.ID,
		Airline: domain.Airline{
			Code: airlineCode,
			Name: carrierName(airlineCode, dicts),
			Logo: airlineLogo(airlineCode),
		},
		FlightNumber:  first.CarrierCode + " " + first.Number,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		Origin:        first.Departure.IataCode,
		Destination:   last.Arrival.IataCode,
		Duration:      duration,
		Stops:         stops,
		StopLocations: stopLocations,
		Price:         price,
		Currency:      offer.Price.Currency,
		CabinClass:    TitleCase(strings.ReplaceAll(cabin, "_", " ")),
		Aircraft:      aircraftName(first.Aircraft.Code, dicts),
		IsNextDay:     isNextDay(departureTime, arrivalTime),
		Segments:      flightSegments,
	}, true
}

// TransformOffers converts a provider offer-search response into the
// normalized FlightSearchResult:
//
//  1. every offer is mapped through transformOffer,
//  2. flights are sorted ascending by price (stable),
//  3. exactly one flight is badged best-value by minimal price + stops*50
//     (ties keep the first-seen flight),
//  4. airlines are deduplicated by code in first-seen order,
//  5. the price range is computed over the flights,
//  6. totalResults prefers the provider-reported count.
//
// A well-formed but empty response yields the canonical empty result, never
// an error.
func TransformOffers(resp flightOffersResponse) (domain.FlightSearchResult, transformStats) {
	var stats transformStats

	if len(resp.Data) == 0 {
		return domain.EmptyFlightSearchResult(), stats
	}

	flights := make([]domain.Flight, 0, len(resp.Data))
	for _, offer := range resp.Data {
		flight, ok := transformOffer(offer, resp.Dictionaries, &stats)
		if !ok {
			continue
		}
		flights = append(flights, flight)
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})

	markBestValue(flights)

	result := domain.FlightSearchResult{
		Flights:    flights,
		Airlines:   extractAirlines(flights),
		PriceRange: priceRangeOf(flights),
	}

	result.TotalResults = resp.Meta.Count
	if result.TotalResults == 0 {
		result.TotalResults = len(flights)
	}

	return result, stats
}

// MergeResults combines per-leg result sets of a multi-city search into one:
// flights are concatenated, re-sorted by price, re-badged, airlines
// re-deduplicated and totals summed.
func MergeResults(results ...domain.FlightSearchResult) domain.FlightSearchResult {
	var flights []domain.Flight
	total := 0
	for _, r := range results {
		for _, f := range r.Flights {
			f.IsBestValue = false
			flights = append(flights, f)
		}
		total += r.TotalResults
	}

	if len(flights) == 0 {
		return domain.EmptyFlightSearchResult()
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})
	markBestValue(flights)

	return domain.FlightSearchResult{
		Flights:      flights,
		Airlines:     extractAirlines(flights),
		PriceRange:   priceRangeOf(flights),
		TotalResults: total,
	}
}

// markBestValue sets IsBestValue on the single flight minimizing the badge
// score. Empty input leaves every flag false.
func markBestValue(flights []domain.Flight) {
	if len(flights) == 0 {
		return
	}

	bestIndex := 0
	bestScore := bestValueScore(flights[0])
	for i, f := range flights[1:] {
		if score := bestValueScore(f); score < bestScore {
			bestScore = score
			bestIndex = i + 1
		}
	}

	for i := range flights {
		flights[i].IsBestValue = i == bestIndex
	}
}

// bestValueScore is the ingestion-time badge score (lower is better).
func bestValueScore(f domain.Flight) float64 {
	return f.Price + float64(f.Stops)*bestValueStopPenalty
}

// extractAirlines deduplicates airlines by code in first-seen order.
// The first occurrence's name wins.
func extractAirlines(flights []domain.Flight) []domain.AirlineInfo {
	seen := make(map[string]struct{}, len(flights))
	airlines := make([]domain.AirlineInfo, 0, len(flights))
	for _, f := range flights {
		if _, ok := seen[f.Airline.Code]; ok {
			continue
		}
		seen[f.Airline.Code] = struct{}{}
		airlines = append(airlines, domain.AirlineInfo{
			Code: f.Airline.Code,
			Name: f.Airline.Name,
		})
	}
	return airlines
}

// priceRangeOf computes the min/max price over a flight list.
func priceRangeOf(flights []domain.Flight) domain.PriceRange {
	if len(flights) == 0 {
		return domain.PriceRange{}
	}

	pr := domain.PriceRange{Min: flights[0].Price, Max: flights[0].Price}
	for _, f := range flights[1:] {
		if f.Price < pr.Min {
			pr.Min = f.Price
		}
		if f.Price > pr.Max {
			pr.Max = f.Price
		}
	}
	return pr
}

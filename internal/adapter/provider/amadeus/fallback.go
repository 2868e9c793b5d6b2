package amadeus

import (
	"strings"

	"github.com/flightfinder/flight-finder-service/internal/domain"
)

// fallbackAirports is the embedded list of major international hubs used
// when the provider is unreachable, so autocomplete keeps working offline.
var fallbackAirports = []domain.Airport{
	// United States
	{Code: "JFK", Name: "John F Kennedy Intl", City: "New York", Country: "US"},
	{Code: "LAX", Name: "Los Angeles Intl", City: "Los Angeles", Country: "US"},
	{Code: "ORD", Name: "O'Hare Intl", City: "Chicago", Country: "US"},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta Intl", City: "Atlanta", Country: "US"},
	{Code: "SFO", Name: "San Francisco Intl", City: "San Francisco", Country: "US"},
	{Code: "MIA", Name: "Miami Intl", City: "Miami", Country: "US"},
	{Code: "DFW", Name: "Dallas/Fort Worth Intl", City: "Dallas", Country: "US"},
	{Code: "SEA", Name: "Seattle-Tacoma Intl", City: "Seattle", Country: "US"},
	{Code: "LAS", Name: "Harry Reid Intl", City: "Las Vegas", Country: "US"},
	{Code: "BOS", Name: "Logan Intl", City: "Boston", Country: "US"},
	{Code: "EWR", Name: "Newark Liberty Intl", City: "Newark", Country: "US"},
	{Code: "MCO", Name: "Orlando Intl", City: "Orlando", Country: "US"},
	{Code: "DEN", Name: "Denver Intl", City: "Denver", Country: "US"},
	{Code: "IAH", Name: "George Bush Intercontinental", City: "Houston", Country: "US"},
	{Code: "PHX", Name: "Phoenix Sky Harbor Intl", City: "Phoenix", Country: "US"},

	// Europe
	{Code: "LHR", Name: "Heathrow", City: "London", Country: "GB"},
	{Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "FR"},
	{Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "DE"},
	{Code: "AMS", Name: "Amsterdam Schiphol", City: "Amsterdam", Country: "NL"},
	{Code: "MAD", Name: "Adolfo Suárez Madrid-Barajas", City: "Madrid", Country: "ES"},
	{Code: "BCN", Name: "Barcelona-El Prat", City: "Barcelona", Country: "ES"},
	{Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "DE"},
	{Code: "FCO", Name: "Leonardo da Vinci-Fiumicino", City: "Rome", Country: "IT"},
	{Code: "LGW", Name: "Gatwick", City: "London", Country: "GB"},
	{Code: "ZRH", Name: "Zurich Airport", City: "Zurich", Country: "CH"},
	{Code: "VIE", Name: "Vienna Intl", City: "Vienna", Country: "AT"},
	{Code: "CPH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "DK"},

	// Asia Pacific
	{Code: "DXB", Name: "Dubai Intl", City: "Dubai", Country: "AE"},
	{Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "SG"},
	{Code: "HND", Name: "Tokyo Haneda", City: "Tokyo", Country: "JP"},
	{Code: "NRT", Name: "Narita Intl", City: "Tokyo", Country: "JP"},
	{Code: "ICN", Name: "Incheon Intl", City: "Seoul", Country: "KR"},
	{Code: "HKG", Name: "Hong Kong Intl", City: "Hong Kong", Country: "HK"},
	{Code: "BKK", Name: "Suvarnabhumi", City: "Bangkok", Country: "TH"},
	{Code: "KUL", Name: "Kuala Lumpur Intl", City: "Kuala Lumpur", Country: "MY"},
	{Code: "DEL", Name: "Indira Gandhi Intl", City: "New Delhi", Country: "IN"},
	{Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "AU"},
	{Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "AU"},

	// Middle East & Africa
	{Code: "DOH", Name: "Hamad Intl", City: "Doha", Country: "QA"},
	{Code: "AUH", Name: "Abu Dhabi Intl", City: "Abu Dhabi", Country: "AE"},
	{Code: "CAI", Name: "Cairo Intl", City: "Cairo", Country: "EG"},
	{Code: "JNB", Name: "O.R. Tambo Intl", City: "Johannesburg", Country: "ZA"},

	// Canada & Latin America
	{Code: "YYZ", Name: "Toronto Pearson Intl", City: "Toronto", Country: "CA"},
	{Code: "YVR", Name: "Vancouver Intl", City: "Vancouver", Country: "CA"},
	{Code: "MEX", Name: "Mexico City Intl", City: "Mexico City", Country: "MX"},
	{Code: "GRU", Name: "São Paulo-Guarulhos Intl", City: "São Paulo", Country: "BR"},
	{Code: "EZE", Name: "Ministro Pistarini Intl", City: "Buenos Aires", Country: "AR"},
}

// searchFallbackAirports filters the embedded list by substring match on
// code, name or city.
func searchFallbackAirports(keyword string) []domain.Airport {
	if len(keyword) < minKeywordLength {
		return []domain.Airport{}
	}

	term := strings.ToLower(keyword)
	result := make([]domain.Airport, 0, locationResultLimit)
	for _, a := range fallbackAirports {
		if strings.Contains(strings.ToLower(a.Code), term) ||
			strings.Contains(strings.ToLower(a.Name), term) ||
			strings.Contains(strings.ToLower(a.City), term) {
			result = append(result, a)
			if len(result) == locationResultLimit {
				break
			}
		}
	}
	return result
}

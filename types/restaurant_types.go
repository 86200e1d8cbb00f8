package types

import "strings"

// City is one of the markets the app serves. The set is closed: the
// upstream query template and the address skip-lists are tuned per city.
type City string

const (
	CityDelhi     City = "Delhi"
	CityBangalore City = "Bangalore"
	CityMumbai    City = "Mumbai"
)

var Cities = []City{CityDelhi, CityBangalore, CityMumbai}

// ValidCity reports whether s names a supported city.
func ValidCity(s string) bool {
	for _, c := range Cities {
		if string(c) == s {
			return true
		}
	}
	return false
}

// CityList returns the supported cities as a comma-separated string,
// used in validation error messages.
func CityList() string {
	names := make([]string, len(Cities))
	for i, c := range Cities {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Vibe is an atmosphere label assigned by the enrichment step.
type Vibe string

const (
	VibeDateNight Vibe = "Date Night"
	VibeParty     Vibe = "Party"
	VibeChill     Vibe = "Chill"
	VibeWork      Vibe = "Work"
)

var Vibes = []Vibe{VibeDateNight, VibeParty, VibeChill, VibeWork}

// ValidVibe reports whether s is one of the allowed vibe labels.
func ValidVibe(s string) bool {
	for _, v := range Vibes {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Restaurant is the list-view record served by GET /api/restaurants.
type Restaurant struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	City            City     `json:"city"`
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"userRatingCount"`
	PriceLevel      string   `json:"priceLevel"`
	Description     string   `json:"description"`
	ImageURL        *string  `json:"imageUrl"`
	Photos          []string `json:"photos"`
	Tags            []string `json:"tags"`
	Vibes           []Vibe   `json:"vibes,omitempty"`
	Address         string   `json:"address"`
	OpenNow         *bool    `json:"openNow"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	GoogleMapsURI   string   `json:"googleMapsUri"`
}

// RestaurantDetail is the single-place record served by GET /api/restaurants/:id.
type RestaurantDetail struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"userRatingCount"`
	PriceLevel      string   `json:"priceLevel"`
	Description     string   `json:"description"`
	Photos          []string `json:"photos"`
	OpenNow         *bool    `json:"openNow"`
	WeekdayHours    []string `json:"weekdayHours"`
	Lat             *float64 `json:"lat"`
	Lng             *float64 `json:"lng"`
	GoogleMapsURI   string   `json:"googleMapsUri"`
	Types           []string `json:"types"`
	Reviews         []Review `json:"reviews"`
}

// Review is a trimmed-down provider review excerpt.
type Review struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

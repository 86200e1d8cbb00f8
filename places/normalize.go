package places

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vibedine/api-go/types"
)

// Fallbacks applied when the provider omits a field. Partial upstream
// records degrade silently; missing fields are never an error.
const (
	DefaultName         = "Unknown"
	DefaultPriceLevel   = "₹₹"
	DefaultTag          = "Restaurant"
	DefaultReviewAuthor = "Anonymous"
)

const (
	listPhotoWidth   = 800
	detailPhotoWidth = 1200
	maxListPhotos    = 5
	maxDetailPhotos  = 6
	maxTags          = 3
	maxReviews       = 3
)

var priceLevelSymbols = map[string]string{
	"PRICE_LEVEL_INEXPENSIVE":    "₹",
	"PRICE_LEVEL_MODERATE":       "₹₹",
	"PRICE_LEVEL_EXPENSIVE":      "₹₹₹",
	"PRICE_LEVEL_VERY_EXPENSIVE": "₹₹₹₹",
}

var typeLabels = map[string]string{
	"restaurant":             "Restaurant",
	"cafe":                   "Cafe",
	"bar":                    "Bar",
	"bakery":                 "Bakery",
	"meal_delivery":          "Delivery",
	"meal_takeaway":          "Takeaway",
	"night_club":             "Nightlife",
	"fine_dining_restaurant": "Fine Dining",
	"indian_restaurant":      "Indian",
	"chinese_restaurant":     "Chinese",
	"italian_restaurant":     "Italian",
	"japanese_restaurant":    "Japanese",
	"seafood_restaurant":     "Seafood",
	"vegetarian_restaurant":  "Vegetarian",
	"vegan_restaurant":       "Vegan",
	"steak_house":            "Steakhouse",
	"pizza_restaurant":       "Pizza",
	"brunch_restaurant":      "Brunch",
	"ice_cream_shop":         "Desserts",
	"coffee_shop":            "Coffee",
}

// addressSkipWords are segments never usable as a neighborhood: state
// names, the country, and region abbreviations for the supported markets.
// The target city itself is added per call.
var addressSkipWords = []string{
	"India",
	"Maharashtra",
	"Karnataka",
	"Delhi",
	"New Delhi",
	"NCT",
}

// FormatPriceLevel maps the provider's price-level enum to a rupee-symbol
// tier. Total: any unknown or absent value maps to the moderate tier.
func FormatPriceLevel(priceLevel string) string {
	if symbol, ok := priceLevelSymbols[priceLevel]; ok {
		return symbol
	}
	return DefaultPriceLevel
}

// DeriveTags maps provider type enums to display labels, preserving input
// order and keeping the first three matches. Zero matches fall back to a
// single default tag, so the result always has between 1 and 3 entries.
func DeriveTags(placeTypes []string) []string {
	tags := make([]string, 0, maxTags)
	for _, t := range placeTypes {
		if label, ok := typeLabels[t]; ok {
			tags = append(tags, label)
			if len(tags) == maxTags {
				break
			}
		}
	}
	if len(tags) == 0 {
		return []string{DefaultTag}
	}
	return tags
}

// ExtractNeighborhood pulls a short location label out of a comma-separated
// formatted address: scanning from the end, it skips segments carrying
// digits (postal codes) or matching the skip-list, and returns the first
// survivor. Heuristic — quality depends on the source market's address
// formatting — with the city name as the fallback.
func ExtractNeighborhood(formattedAddress string, city types.City) string {
	parts := strings.Split(formattedAddress, ",")

	skipWords := append([]string{string(city)}, addressSkipWords...)

	for i := len(parts) - 1; i >= 0; i-- {
		part := strings.TrimSpace(parts[i])
		if containsDigit(part) {
			continue
		}
		if matchesSkipWord(part, skipWords) {
			continue
		}
		return part
	}

	return string(city)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func matchesSkipWord(part string, skipWords []string) bool {
	lower := strings.ToLower(part)
	for _, w := range skipWords {
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// Normalizer maps raw provider places into the application's stable
// Restaurant shapes. It holds the API credential solely to build photo
// media URLs; the key must not surface anywhere else.
type Normalizer struct {
	apiKey string
}

func NewNormalizer(apiKey string) *Normalizer {
	return &Normalizer{apiKey: apiKey}
}

// PhotoURL builds the provider's media URL for a photo resource name at
// the requested maximum width.
func (n *Normalizer) PhotoURL(photoName string, maxWidth int) string {
	return fmt.Sprintf("%s/v1/%s/media?maxWidthPx=%d&key=%s", defaultBaseURL, photoName, maxWidth, n.apiKey)
}

// MapRestaurant converts one raw place into the list-view Restaurant
// record. Pure: the input is never mutated.
func (n *Normalizer) MapRestaurant(place types.Place, city types.City) types.Restaurant {
	name := DefaultName
	if place.DisplayName != nil && place.DisplayName.Text != "" {
		name = place.DisplayName.Text
	}

	description := ""
	if place.EditorialSummary != nil {
		description = place.EditorialSummary.Text
	}

	photos := make([]string, 0, maxListPhotos)
	for i, p := range place.Photos {
		if i >= maxListPhotos {
			break
		}
		photos = append(photos, n.PhotoURL(p.Name, listPhotoWidth))
	}
	var imageURL *string
	if len(photos) > 0 {
		imageURL = &photos[0]
	}

	return types.Restaurant{
		ID:              place.ID,
		Name:            name,
		Location:        ExtractNeighborhood(place.FormattedAddress, city),
		City:            city,
		Rating:          place.Rating,
		UserRatingCount: place.UserRatingCount,
		PriceLevel:      FormatPriceLevel(place.PriceLevel),
		Description:     description,
		ImageURL:        imageURL,
		Photos:          photos,
		Tags:            DeriveTags(place.Types),
		Address:         place.FormattedAddress,
		OpenNow:         openNow(place.CurrentOpeningHours),
		Lat:             latitude(place.Location),
		Lng:             longitude(place.Location),
		GoogleMapsURI:   place.GoogleMapsURI,
	}
}

// MapRestaurantDetail converts one raw place into the detail-view record:
// more and larger photos, weekday hours, and up to three review excerpts.
func (n *Normalizer) MapRestaurantDetail(place types.Place) types.RestaurantDetail {
	name := DefaultName
	if place.DisplayName != nil && place.DisplayName.Text != "" {
		name = place.DisplayName.Text
	}

	description := ""
	if place.EditorialSummary != nil {
		description = place.EditorialSummary.Text
	}

	photos := make([]string, 0, maxDetailPhotos)
	for i, p := range place.Photos {
		if i >= maxDetailPhotos {
			break
		}
		photos = append(photos, n.PhotoURL(p.Name, detailPhotoWidth))
	}

	weekdayHours := []string{}
	if place.CurrentOpeningHours != nil && place.CurrentOpeningHours.WeekdayDescriptions != nil {
		weekdayHours = place.CurrentOpeningHours.WeekdayDescriptions
	}

	placeTypes := []string{}
	if place.Types != nil {
		placeTypes = place.Types
	}

	return types.RestaurantDetail{
		ID:              place.ID,
		Name:            name,
		Address:         place.FormattedAddress,
		Rating:          place.Rating,
		UserRatingCount: place.UserRatingCount,
		PriceLevel:      FormatPriceLevel(place.PriceLevel),
		Description:     description,
		Photos:          photos,
		OpenNow:         openNow(place.CurrentOpeningHours),
		WeekdayHours:    weekdayHours,
		Lat:             latitude(place.Location),
		Lng:             longitude(place.Location),
		GoogleMapsURI:   place.GoogleMapsURI,
		Types:           placeTypes,
		Reviews:         mapReviews(place.Reviews),
	}
}

func mapReviews(reviews []types.PlaceReview) []types.Review {
	mapped := make([]types.Review, 0, maxReviews)
	for i, r := range reviews {
		if i >= maxReviews {
			break
		}
		review := types.Review{Author: DefaultReviewAuthor, Rating: int(r.Rating)}
		if r.AuthorAttribution != nil && r.AuthorAttribution.DisplayName != "" {
			review.Author = r.AuthorAttribution.DisplayName
		}
		if r.Text != nil {
			review.Text = r.Text.Text
		}
		mapped = append(mapped, review)
	}
	return mapped
}

func openNow(hours *types.PlaceOpeningHours) *bool {
	if hours == nil {
		return nil
	}
	return hours.OpenNow
}

// latitude and longitude stay nil when the provider omits the location:
// a (0,0) default would be a real coordinate in the Gulf of Guinea,
// indistinguishable from genuinely missing data.
func latitude(loc *types.LatLng) *float64 {
	if loc == nil {
		return nil
	}
	return &loc.Latitude
}

func longitude(loc *types.LatLng) *float64 {
	if loc == nil {
		return nil
	}
	return &loc.Longitude
}

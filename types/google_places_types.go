package types

// Wire shapes for the Google Places API (New), v1.
// Only the fields named in the request field masks are modeled; everything
// else in the provider payload is ignored by the decoder.

type TextSearchRequest struct {
	TextQuery    string `json:"textQuery"`
	LanguageCode string `json:"languageCode,omitempty"`
	PageSize     int    `json:"pageSize,omitempty"`
	PageToken    string `json:"pageToken,omitempty"`
}

type TextSearchResponse struct {
	Places        []Place `json:"places"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

type Place struct {
	ID                  string             `json:"id"`
	DisplayName         *LocalizedText     `json:"displayName,omitempty"`
	FormattedAddress    string             `json:"formattedAddress,omitempty"`
	Rating              float64            `json:"rating,omitempty"`
	UserRatingCount     int                `json:"userRatingCount,omitempty"`
	PriceLevel          string             `json:"priceLevel,omitempty"`
	EditorialSummary    *LocalizedText     `json:"editorialSummary,omitempty"`
	Photos              []PlacePhoto       `json:"photos,omitempty"`
	Types               []string           `json:"types,omitempty"`
	PrimaryType         string             `json:"primaryType,omitempty"`
	CurrentOpeningHours *PlaceOpeningHours `json:"currentOpeningHours,omitempty"`
	Location            *LatLng            `json:"location,omitempty"`
	GoogleMapsURI       string             `json:"googleMapsUri,omitempty"`
	Reviews             []PlaceReview      `json:"reviews,omitempty"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type PlacePhoto struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx,omitempty"`
	HeightPx int    `json:"heightPx,omitempty"`
}

type PlaceOpeningHours struct {
	// OpenNow is a pointer: the provider omits it when the state is
	// unknown, which must stay distinguishable from "closed".
	OpenNow             *bool    `json:"openNow,omitempty"`
	WeekdayDescriptions []string `json:"weekdayDescriptions,omitempty"`
}

type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PlaceReview struct {
	AuthorAttribution *AuthorAttribution `json:"authorAttribution,omitempty"`
	Text              *LocalizedText     `json:"text,omitempty"`
	Rating            float64            `json:"rating,omitempty"`
}

type AuthorAttribution struct {
	DisplayName string `json:"displayName"`
	URI         string `json:"uri,omitempty"`
	PhotoURI    string `json:"photoUri,omitempty"`
}

package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibedine/api-go/cache"
	"github.com/vibedine/api-go/config"
	"github.com/vibedine/api-go/places"
	"github.com/vibedine/api-go/types"
	"github.com/vibedine/api-go/vibes"
)

const missingKeyMessage = "Google Places API key not configured. Set GOOGLE_PLACES_API_KEY"

type RestaurantController struct {
	Config      *config.Config
	Places      *places.Client
	Normalizer  *places.Normalizer
	Enricher    *vibes.Enricher // nil disables the enrichment stage
	ListCache   *cache.Store[[]types.Restaurant]
	DetailCache *cache.Store[types.RestaurantDetail]
	MaxResults  int
}

func NewRestaurantController(
	cfg *config.Config,
	client *places.Client,
	normalizer *places.Normalizer,
	enricher *vibes.Enricher,
	listCache *cache.Store[[]types.Restaurant],
	detailCache *cache.Store[types.RestaurantDetail],
) *RestaurantController {
	return &RestaurantController{
		Config:      cfg,
		Places:      client,
		Normalizer:  normalizer,
		Enricher:    enricher,
		ListCache:   listCache,
		DetailCache: detailCache,
		MaxResults:  config.MaxResults,
	}
}

// GetRestaurants godoc
// @Summary List restaurants for a city
// @Description Returns normalized restaurants for one of the supported cities, cached for an hour
// @Tags restaurants
// @Produce json
// @Param city query string false "City (Delhi, Bangalore or Mumbai; default Mumbai)"
// @Success 200 {array} types.Restaurant
// @Router /restaurants [get]
func (rc *RestaurantController) GetRestaurants(c *gin.Context) {
	if !rc.Config.HasPlacesKey() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": missingKeyMessage})
		return
	}

	cityParam := c.DefaultQuery("city", string(types.CityMumbai))
	if !types.ValidCity(cityParam) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid city. Use one of: %s", types.CityList()),
		})
		return
	}
	city := types.City(cityParam)

	if cached, ok := rc.ListCache.Get(cityParam); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	rawPlaces, err := rc.Places.SearchRestaurants(c.Request.Context(), city, rc.MaxResults)
	if err != nil {
		log.Printf("Failed to fetch restaurants for %s: %v", city, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants from Google Places API"})
		return
	}

	restaurants := make([]types.Restaurant, 0, len(rawPlaces))
	for _, place := range rawPlaces {
		restaurants = append(restaurants, rc.Normalizer.MapRestaurant(place, city))
	}

	if rc.Enricher != nil {
		restaurants = rc.Enricher.Enrich(c.Request.Context(), restaurants)
	}

	rc.ListCache.Set(cityParam, restaurants)
	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurantByID godoc
// @Summary Get detail for a single restaurant
// @Tags restaurants
// @Produce json
// @Param id path string true "Google Place ID"
// @Success 200 {object} types.RestaurantDetail
// @Router /restaurants/{id} [get]
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	if !rc.Config.HasPlacesKey() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": missingKeyMessage})
		return
	}

	placeID := c.Param("id")

	if cached, ok := rc.DetailCache.Get(placeID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	place, err := rc.Places.GetPlaceByID(c.Request.Context(), placeID)
	if err != nil {
		log.Printf("Failed to fetch restaurant %s: %v", placeID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurant details from Google Places API"})
		return
	}

	detail := rc.Normalizer.MapRestaurantDetail(*place)
	if detail.ID == "" {
		detail.ID = placeID
	}

	rc.DetailCache.Set(placeID, detail)
	c.JSON(http.StatusOK, detail)
}

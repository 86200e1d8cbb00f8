package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vibedine/api-go/cache"
	"github.com/vibedine/api-go/config"
	"github.com/vibedine/api-go/controllers"
	"github.com/vibedine/api-go/middleware"
	"github.com/vibedine/api-go/places"
	"github.com/vibedine/api-go/routes"
	"github.com/vibedine/api-go/types"
	"github.com/vibedine/api-go/vibes"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}

	cfg := config.Load()
	if !cfg.HasPlacesKey() {
		log.Printf("Warning: GOOGLE_PLACES_API_KEY not set - restaurant routes will answer 500")
	}

	client := places.NewClient(cfg.PlacesAPIKey)
	normalizer := places.NewNormalizer(cfg.PlacesAPIKey)
	enricher := vibes.NewEnricher(cfg.GeminiAPIKey, cfg.GeminiModel)
	listCache := cache.New[[]types.Restaurant](config.CacheTTL)
	detailCache := cache.New[types.RestaurantDetail](config.CacheTTL)

	restaurantController := controllers.NewRestaurantController(cfg, client, normalizer, enricher, listCache, detailCache)

	// Create a new Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	routes.SetupRoutes(r, restaurantController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited properly")
}

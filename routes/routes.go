package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibedine/api-go/controllers"
)

func SetupRoutes(r *gin.Engine, restaurantController *controllers.RestaurantController) {
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		SetupRestaurantRoutes(api, restaurantController)
	}
}

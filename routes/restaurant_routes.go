package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vibedine/api-go/controllers"
)

func SetupRestaurantRoutes(api *gin.RouterGroup, restaurantController *controllers.RestaurantController) {
	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
	}
}

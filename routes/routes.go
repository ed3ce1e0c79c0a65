package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-picker-api/handlers"
)

// SetupRoutes registers every API route on the engine.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", handlers.Health)

	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("/search", h.SearchRestaurants)
		restaurants.GET("/nearby", h.NearbyRestaurants)
		restaurants.GET("/discover", h.DiscoverRestaurants)
		restaurants.GET("/stats/cuisines", h.GetCuisines)
		restaurants.GET("/stats/cities", h.GetCities)
		restaurants.POST("/pick", h.PickRestaurants)
		restaurants.GET("/:id", h.GetRestaurant)
	}
}

package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers middleware and the /api routes on router
func SetupRoutes(router *gin.Engine, handler *Handler, allowedOrigins []string) {
	router.Use(RequestID(), RequestLogger(handler.logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)

		api.GET("/cities", handler.GetCityCards)
		api.GET("/cities/search", handler.SearchCity)
		api.GET("/cities/:name", handler.GetCity)
		api.GET("/cities/:name/trend", handler.GetCityTrend)

		api.GET("/regional", handler.GetRegional)
		api.GET("/states", handler.GetStates)
		api.GET("/map/focus", handler.GetMapFocus)

		tools := api.Group("/tools")
		tools.GET("/units", handler.ListUnits)
		tools.POST("/emi", handler.CalculateEMI)
		tools.POST("/area", handler.ConvertArea)
		tools.POST("/property-value", handler.EstimatePropertyValue)
	}
}

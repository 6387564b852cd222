package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewServer builds the portal's gin engine with every route group mounted.
func NewServer(allowedOrigins []string) *gin.Engine {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	DefaultRoutes(server)
	AuthRoutes(server)
	OrderRoutes(server)
	ProductRoutes(server)
	AnalyticsRoutes(server)
	return server
}

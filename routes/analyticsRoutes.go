package routes

import (
	"github.com/Kariqs/carta-vendor-portal/controllers"
	"github.com/Kariqs/carta-vendor-portal/middlewares"
	"github.com/gin-gonic/gin"
)

func AnalyticsRoutes(server *gin.Engine) {
	server.GET("/analytics", middlewares.RequireSession(), controllers.GetAnalytics)
}

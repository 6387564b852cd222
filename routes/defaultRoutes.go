package routes

import (
	"github.com/Kariqs/carta-vendor-portal/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}

package routes

import (
	"github.com/Kariqs/carta-vendor-portal/controllers"
	"github.com/Kariqs/carta-vendor-portal/middlewares"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
	}
	server.GET("/me", middlewares.RequireSession(), controllers.GetProfile)
}

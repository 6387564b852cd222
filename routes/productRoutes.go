package routes

import (
	"github.com/Kariqs/carta-vendor-portal/controllers"
	"github.com/Kariqs/carta-vendor-portal/middlewares"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(server *gin.Engine) {
	products := server.Group("/products", middlewares.RequireSession())
	{
		products.GET("", controllers.GetProducts)
		products.POST("", controllers.CreateProduct)
		products.POST("/images", controllers.UploadProductImage)
	}
}

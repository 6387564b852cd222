package routes

import (
	"github.com/Kariqs/carta-vendor-portal/controllers"
	"github.com/Kariqs/carta-vendor-portal/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/orders", middlewares.RequireSession())
	{
		orders.GET("", controllers.GetOrders)
		orders.PUT("/:orderId/status", controllers.UpdateOrderStatus)
		orders.POST("/:orderId/actions/:action", controllers.PerformOrderAction)
	}
}

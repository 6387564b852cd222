package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the CARTA Vendor Portal.

The following are the endpoints for this portal:

AUTH
- POST "/auth/login" - Log in with vendor username and password
- POST "/auth/logout" - End the vendor session
- GET "/me" - Get the vendor profile

ORDERS
- GET "/orders" - Get active orders and the actions available for each
- PUT "/orders/:orderId/status" - Move an order to a new status
- POST "/orders/:orderId/actions/:action" - Run an order action (accept, ready, dispatch, simulate_delivered)

INVENTORY
- GET "/products" - Get products
- POST "/products" - Add a product
- POST "/products/images" - Upload a product image

ANALYTICS
- GET "/analytics" - Get total revenue and order count`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

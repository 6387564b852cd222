package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/carta-vendor-portal/backend"
	"github.com/Kariqs/carta-vendor-portal/dashboard"
	"github.com/Kariqs/carta-vendor-portal/initializers"
	"github.com/Kariqs/carta-vendor-portal/middlewares"
	"github.com/Kariqs/carta-vendor-portal/models"
	"github.com/gin-gonic/gin"
)

func currentProfile(ctx *gin.Context) *models.VendorProfile {
	v, exists := ctx.Get(middlewares.ProfileKey)
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgNotLoggedIn)
		return nil
	}
	return v.(*models.VendorProfile)
}

// GetOrders refreshes and returns the active orders with their actions.
func GetOrders(ctx *gin.Context) {
	profile := currentProfile(ctx)
	if profile == nil {
		return
	}

	orders := initializers.App.Orders.Refresh(ctx.Request.Context(), profile.ID)
	response := gin.H{"orders": orders}
	if len(orders) == 0 {
		response["message"] = "No active orders at the moment."
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

func UpdateOrderStatus(ctx *gin.Context) {
	var update models.OrderStatusUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	orderID := models.ID(ctx.Param("orderId"))
	order, err := initializers.App.Orders.RequestTransition(ctx.Request.Context(), orderID, update.Status)
	respondToTransition(ctx, order, err)
}

func PerformOrderAction(ctx *gin.Context) {
	orderID := models.ID(ctx.Param("orderId"))
	order, err := initializers.App.Orders.Perform(ctx.Request.Context(), orderID, ctx.Param("action"))
	respondToTransition(ctx, order, err)
}

func respondToTransition(ctx *gin.Context, order dashboard.OrderView, err error) {
	switch {
	case err == nil:
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": "Order #" + order.ID.String() + " status updated to " + string(order.Status) + "!",
			"order":   order,
		})
	case errors.Is(err, dashboard.ErrOrderNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
	case errors.Is(err, models.ErrIllegalTransition):
		sendJSONResponse(ctx, http.StatusConflict, gin.H{"message": msgIllegalTransition, "order": order})
	case errors.Is(err, backend.ErrRequestFailed), errors.Is(err, backend.ErrTransport):
		sendJSONResponse(ctx, http.StatusBadGateway, gin.H{"message": msgFailedToUpdateStatus, "order": order})
	default:
		sendJSONResponse(ctx, http.StatusInternalServerError, gin.H{"message": msgFailedToUpdateStatus, "order": order})
	}
}

package controllers

import (
	"github.com/Kariqs/carta-vendor-portal/middlewares"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput         = "invalid input"
	msgInvalidCredentials   = "Incorrect username or password."
	msgLoginFailed          = "Login failed. Try again later."
	msgProfileUnavailable   = middlewares.MsgProfileUnavailable
	msgNotLoggedIn          = middlewares.MsgNotLoggedIn
	msgLoggedOut            = "Logged out."
	msgOrderNotFound        = "Order not found. Refresh the order list."
	msgIllegalTransition    = "This action is not available for the order's current status."
	msgFailedToUpdateStatus = "Failed to update status."
	msgProductAdded         = "Product added successfully!"
	msgInvalidProduct       = "Price and stock must not be negative."
	msgFailedToAddProduct   = "Error adding product"
	msgMissingImage         = "No image uploaded"
	msgUploadsDisabled      = "Product image uploads are not configured."
	msgFailedToUploadImage  = "Failed to upload image"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

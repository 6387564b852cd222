package controllers

import (
	"net/http"

	"github.com/Kariqs/carta-vendor-portal/initializers"
	"github.com/gin-gonic/gin"
)

func GetAnalytics(ctx *gin.Context) {
	stats := initializers.App.Analytics.Snapshot(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"revenue": stats.Revenue,
		"orders":  stats.Orders,
	})
}

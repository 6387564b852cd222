package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Kariqs/carta-vendor-portal/auth"
	"github.com/Kariqs/carta-vendor-portal/initializers"
	"github.com/gin-gonic/gin"
)

type loginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Login exchanges credentials for a token and loads the vendor profile.
func Login(ctx *gin.Context) {
	var data loginData
	if err := ctx.ShouldBindJSON(&data); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	app := initializers.App
	// The order snapshot belongs to whoever was logged in before.
	app.Orders.Reset()
	if err := app.Auth.Authenticate(ctx.Request.Context(), data.Username, data.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		sendErrorResponse(ctx, http.StatusBadGateway, msgLoginFailed)
		return
	}

	profile, err := app.Auth.LoadProfile(ctx.Request.Context())
	if err != nil {
		app.Logout()
		sendErrorResponse(ctx, http.StatusForbidden, msgProfileUnavailable)
		return
	}

	log.Println("Vendor logged in:", profile.Name)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"profile": profileView{ID: profile.ID.String(), Name: profile.Name, Location: profile.Location()},
	})
}

func Logout(ctx *gin.Context) {
	initializers.App.Logout()
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgLoggedOut})
}

func GetProfile(ctx *gin.Context) {
	profile := currentProfile(ctx)
	if profile == nil {
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"profile": profileView{ID: profile.ID.String(), Name: profile.Name, Location: profile.Location()},
	})
}

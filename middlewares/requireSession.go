package middlewares

import (
	"net/http"

	"github.com/Kariqs/carta-vendor-portal/initializers"
	"github.com/gin-gonic/gin"
)

const ProfileKey = "profile"

const (
	MsgNotLoggedIn        = "Log in to continue."
	MsgProfileUnavailable = "Could not fetch profile. Ensure the vendor record has been created."
)

// RequireSession lets a request through only when a vendor is logged in and
// their profile is loaded. A profile that cannot be loaded ends the session.
func RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		app := initializers.App
		if !app.Auth.Session().Authenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MsgNotLoggedIn})
			return
		}

		profile, err := app.Auth.LoadProfile(ctx.Request.Context())
		if err != nil {
			app.Logout()
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MsgProfileUnavailable})
			return
		}

		ctx.Set(ProfileKey, profile)
		ctx.Next()
	}
}

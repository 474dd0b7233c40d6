package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plancompare-backend/internal/shared/server/middleware"
	"plancompare-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint. rg must carry the identity middleware.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	response := gin.H{
		"userId":  userID,
		"isGuest": middleware.IsGuest(c),
	}
	if email := middleware.UserEmailFromContext(c); email != "" {
		response["email"] = email
	}

	respond.JSON(c, http.StatusOK, response)
}

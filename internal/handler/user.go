package handler

import (
	"net/http"

	"taskboard/internal/middleware"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the current user (requires AuthMiddleware).
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	util.OK(c, "", gin.H{
		"user": toUserResp(user),
	})
}

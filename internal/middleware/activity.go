package middleware

import (
	"bytes"
	"io"

	"taskboard/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityMiddleware records each authenticated mutating request as an
// Activity row. Reads are not recorded. Persisting the row is best
// effort and never fails the request.
func ActivityMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		switch c.Request.Method {
		case "POST", "PUT", "DELETE":
		default:
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		// never persist credential payloads
		if path != "/api/profile/password" && len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		rec := models.Activity{
			UserID:    user.ID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&rec).Error
	}
}

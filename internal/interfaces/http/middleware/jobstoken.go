package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub/internal/shared/utils"
)

// RequireJobsToken guards the scheduled-job endpoints with a shared bearer
// secret, for external schedulers that cannot hold a user account.
func RequireJobsToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "jobs endpoint is disabled")
			c.Abort()
			return
		}

		provided := bearerToken(c)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid jobs token")
			c.Abort()
			return
		}

		c.Next()
	}
}

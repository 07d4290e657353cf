package middleware

import (
	"net/http"
	"strings"

	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/response"
	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/security"
	"github.com/PhatNguyen203/DevConnecting/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthRequired guards private routes. It verifies the caller's credential
// and binds the resolved account id into the request context. It never
// decides ownership; that belongs to the usecases.
func AuthRequired(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("x-auth-token")
		if tokenString == "" {
			// Fall back to the Authorization header
			if authHeader := c.GetHeader("Authorization"); authHeader != "" {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenString == "" {
			logUnauthorized(c, "missing token")
			response.Error(c, http.StatusUnauthorized, "no token, authorization denied", nil)
			c.Abort()
			return
		}

		accountID, err := tokens.Verify(tokenString)
		if err != nil {
			logUnauthorized(c, "invalid token")
			response.Error(c, http.StatusUnauthorized, "token is not valid", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyAccountID), accountID)
		c.Next()
	}
}

func logUnauthorized(c *gin.Context, reason string) {
	if logger := security.DefaultLogger(); logger != nil {
		requestID, _ := c.Get(string(domain.KeyRequestID))
		reqIDStr, _ := requestID.(string)
		logger.LogUnauthorizedAccess(c.ClientIP(), c.FullPath(), reqIDStr, reason)
	}
}

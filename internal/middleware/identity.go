package middleware

import (
	"go-employees/internal/shared/contextutil"
	"go-employees/internal/token"

	"github.com/gin-gonic/gin"
)

// Identity decodes the bearer token, when one is presented, and makes the
// account identity available downstream. It never rejects a request: a
// missing or unverifiable token just means the request runs
// unauthenticated. No operation in this API gates on the claims.
func Identity(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := tokens.Verify(c.GetHeader("Authorization"))
		if claims != nil {
			c.Set("account_id", claims.ID)
			c.Set("username", claims.Username)
			c.Set("email", claims.Email)

			ctx := contextutil.WithAccountID(c.Request.Context(), claims.ID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

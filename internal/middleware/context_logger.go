package middleware

import (
	"go-employees/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger, pre-tagged with the
// request id and (when authenticated) the account id, to the request
// context for the service and repository layers.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := contextutil.GetRequestID(c.Request.Context())
		accountID := contextutil.GetAccountID(c.Request.Context())

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("account_id", accountID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

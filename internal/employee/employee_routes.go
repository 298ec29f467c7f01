package employee

import (
	"go-employees/internal/middleware"
	"go-employees/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes wires the employee operations. The bearer identity is
// decoded for every route but gates none of them. rdb may be nil, which
// disables idempotency-key handling on creation.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens *token.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.Identity(tokens))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)
		employees.GET("/search", handler.Search)
		employees.GET("/:id", handler.GetById)

		if rdb != nil {
			employees.POST("", middleware.Idempotency(rdb), handler.Create)
		} else {
			employees.POST("", handler.Create)
		}

		employees.PUT("/:id", handler.Update)
		employees.DELETE("/:id", handler.Delete)
	}
}

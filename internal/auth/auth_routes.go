package auth

import (
	"go-employees/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		authGroup.POST("/signup", middleware.RateLimitByIP(0.1, 5), handler.Signup)
	}
}

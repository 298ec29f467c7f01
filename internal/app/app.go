package app

import (
	"net/http"

	"go-employees/internal/auth"
	"go-employees/internal/config"
	"go-employees/internal/employee"
	"go-employees/internal/media"
	"go-employees/internal/middleware"
	"go-employees/internal/shared/connection"
	"go-employees/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Build connects the backing services and registers every route on the
// router. All process-wide dependencies (store, signing secret, media
// host) are constructed here and injected explicitly.
func Build(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}

	// Schema sync on boot; the unique indexes back the duplicate
	// pre-checks in the services.
	if err := db.AutoMigrate(&auth.Account{}, &employee.Employee{}); err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
	}

	var uploader media.Uploader
	if cfg.CloudinaryURL != "" {
		cld, err := media.NewCloudinaryUploader(cfg.CloudinaryURL, logger)
		if err != nil {
			return err
		}
		uploader = cld
	} else {
		logger.Warn("no media host configured, photo inputs will be stored verbatim")
	}

	tokens := token.NewManager(cfg.JWTSecret)

	authHandler := auth.NewHandler(auth.NewService(auth.NewRepository(db), tokens, logger), logger)
	employeeHandler := employee.NewHandler(
		employee.NewService(employee.NewRepository(db), uploader, logger),
		logger,
	)

	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	auth.RegisterRoutes(api, authHandler)
	employee.RegisterRoutes(api, employeeHandler, tokens, rdb, logger)

	return nil
}

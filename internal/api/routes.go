package api

import (
	"alcyxob/exercise-tracker/internal/metrics"
	"alcyxob/exercise-tracker/internal/service"
	_ "embed"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:embed static/index.html
var indexHTML []byte

// NewRouter builds the gin engine with logging, recovery, CORS and metrics middleware.
func NewRouter(log *zap.Logger, allowOrigins []string) *gin.Engine {
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/metrics", "/ping"},
		Context: ginzap.Fn(func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String("request_id", c.GetString(ContextRequestIDKey))}
		}),
	}))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(cors.New(corsConfig(allowOrigins)))
	router.Use(metrics.Middleware())

	return router
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range allowOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = allowOrigins
	return cfg
}

// SetupRoutes registers every endpoint. exportService may be nil, in which
// case the export routes are not registered.
func SetupRoutes(
	router *gin.Engine,
	log *zap.Logger,
	userService service.UserService,
	exerciseService service.ExerciseService,
	exportService service.LogExportService,
) {
	registerValidations()

	userHandler := NewUserHandler(userService, log)
	exerciseHandler := NewExerciseHandler(exerciseService, log)

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	})

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		{
			// POST /api/users
			usersGroup.POST("", userHandler.CreateUser)
			// GET /api/users
			usersGroup.GET("", userHandler.ListUsers)

			// POST /api/users/{_id}/exercises
			usersGroup.POST("/:_id/exercises", exerciseHandler.CreateExercise)
			// GET /api/users/{_id}/logs
			usersGroup.GET("/:_id/logs", exerciseHandler.GetLog)

			if exportService != nil {
				exportHandler := NewExportHandler(exportService, log)
				// POST /api/users/{_id}/logs/export
				usersGroup.POST("/:_id/logs/export", exportHandler.ExportLog)
				// GET /api/users/{_id}/logs/exports
				usersGroup.GET("/:_id/logs/exports", exportHandler.ListExports)
				// GET /api/users/{_id}/logs/exports/{exportId}
				usersGroup.GET("/:_id/logs/exports/:exportId", exportHandler.GetExport)
			}
		}
	}
}

package main

import (
	"alcyxob/exercise-tracker/internal/api"
	"alcyxob/exercise-tracker/internal/config"
	"alcyxob/exercise-tracker/internal/logger"
	"alcyxob/exercise-tracker/internal/repository"
	"alcyxob/exercise-tracker/internal/repository/memory"
	"alcyxob/exercise-tracker/internal/repository/mongo"
	"alcyxob/exercise-tracker/internal/service"
	"alcyxob/exercise-tracker/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Exercise Tracker API
// @version 1.0
// @description Registers users and records timed exercises against them.
// @BasePath /api
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		os.Exit(1)
	}
}

type repositories struct {
	users     repository.UserRepository
	exercises repository.ExerciseRepository
	exports   repository.ExportRepository
}

func run() error {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting Exercise Tracker server...",
		zap.String("driver", cfg.Database.Driver),
		zap.String("address", cfg.ListenAddress()),
	)

	// --- Repositories ---
	var repos repositories
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("Using in-memory store; data is lost on restart")
		store := memory.NewStore()
		repos = repositories{users: store.Users(), exercises: store.Exercises(), exports: store.Exports()}
	default:
		dbClient, err := mongo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return fmt.Errorf("could not connect to MongoDB: %w", err)
		}
		defer func() {
			log.Info("Disconnecting MongoDB...")
			if err := mongo.DisconnectDB(dbClient); err != nil {
				log.Error("Failed to disconnect MongoDB", zap.Error(err))
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Info("Database connection established", zap.String("database", cfg.Database.Name))

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongo.EnsureIndexes(ctx, appDB, log)
			log.Info("Index creation process completed")
		}()

		repos = repositories{
			users:     mongo.NewMongoUserRepository(appDB),
			exercises: mongo.NewMongoExerciseRepository(appDB),
			exports:   mongo.NewMongoExportRepository(appDB),
		}
	}

	// --- Services ---
	userService := service.NewUserService(repos.users)
	exerciseService := service.NewExerciseService(repos.users, repos.exercises)

	var exportService service.LogExportService
	if cfg.S3.Enabled() {
		fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3, log)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		exportService = service.NewLogExportService(userService, exerciseService, repos.exports, fileStorage, cfg.S3.PresignExpiry, log)
	} else {
		log.Info("S3 bucket not configured; log export disabled")
	}

	// --- Gin Engine ---
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(log, cfg.CORS.AllowOrigins)
	api.SetupRoutes(router, log, userService, exerciseService, exportService)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.ListenAddress(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Your app is listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info("Shutting down server...", zap.String("signal", sig.String()))
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exiting")
	return nil
}

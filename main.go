package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chimd111/umsu-clubs/api"
	"github.com/chimd111/umsu-clubs/database"
	"github.com/chimd111/umsu-clubs/internal/notify"
)

func main() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "debug"
	}
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		// The service runs fine with defaults; a config file is optional.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			zap.L().Fatal("Error reading config file", zap.Error(err))
		}
		zap.L().Info("No config file found, using defaults")
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "myevents.db"
	}
	db := database.Init(dbPath)
	sqlDB, _ := db.DB()

	port := viper.GetString("server.port")
	if port == "" {
		port = "8080"
	}

	hub := notify.NewHub()
	store := database.NewSavedEventStore(db, hub)

	router := gin.Default()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	apiHandler := &api.Handler{
		Store: store,
		Hub:   hub,
	}
	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", apiHandler.HealthCheckHandler)
		apiGroup.GET("/config", apiHandler.GetConfigHandler)
		apiGroup.GET("/clubs", apiHandler.ListClubsHandler)
		apiGroup.GET("/events", apiHandler.ListEventsHandler)
		apiGroup.GET("/calendar", apiHandler.CalendarHandler)
		apiGroup.GET("/my-events", apiHandler.MyEventsHandler)
		apiGroup.GET("/my-events/bar", apiHandler.MyEventsBarHandler)
		apiGroup.POST("/my-events", apiHandler.SaveEventHandler)
		apiGroup.DELETE("/my-events/:id", apiHandler.RemoveEventHandler)
		apiGroup.GET("/my-events/stream", apiHandler.StreamChangesHandler)
		apiGroup.GET("/my-events/export", apiHandler.ExportHandler)
		apiGroup.GET("/my-events/subscribe", apiHandler.SubscribeHandler)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	zap.L().Info("Starting server", zap.String("port", port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	var once sync.Once

	cleanup := func(reason string) {
		zap.L().Info("Shutdown initiated", zap.String("reason", reason))

		// Closing the hub first ends all open change streams, so the
		// server shutdown is not held up waiting on them.
		hub.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		zap.L().Info("Shutting down HTTP server...")
		if err := srv.Shutdown(ctx); err != nil {
			zap.L().Error("Error shutting down server", zap.Error(err))
		} else {
			zap.L().Info("HTTP server shut down gracefully.")
		}

		if sqlDB != nil {
			if err := sqlDB.Close(); err != nil {
				zap.L().Error("Error closing database", zap.Error(err))
			} else {
				zap.L().Info("Database connection closed.")
			}
		}
		close(done)
	}

	go func() {
		sig := <-sigCh
		once.Do(func() {
			cleanup(sig.String())
		})

		// if a second signal is caught, exit immediately
		go func() {
			<-sigCh
			zap.L().Info("Second interrupt signal received. Exiting immediately.")
			os.Exit(1)
		}()
	}()

	<-done
	zap.L().Info("Exiting...")
}

package app

import (
	"os"

	"doctrack/internal/identity"
	"doctrack/internal/invite"
	"doctrack/internal/middleware"
	"doctrack/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	ids, err := identity.NewFirebaseStore(
		os.Getenv("FIREBASE_CREDENTIALS"),
		os.Getenv("FIREBASE_PROJECT_ID"),
		logger,
	)
	if err != nil {
		return err
	}
	logger.Info("identity store initialized")

	mail := buildSender(logger)

	// 2. Global Middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"Content-Length", "X-Request-ID"}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	// 3. Register Modules & Routes
	return registerModules(router, sqlDB, gormDB, rdb, ids, mail)
}

// buildSender returns the SMTP sender when a host is configured and a
// logging no-op sender otherwise, so local development needs no mail relay.
func buildSender(logger *zap.Logger) invite.Sender {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return invite.NewLogSender(logger)
	}

	return invite.NewSMTPSender(invite.SMTPConfig{
		Host:     host,
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}, logger)
}

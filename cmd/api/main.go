package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"go.mongodb.org/mongo-driver/mongo"

	"taskflow/config"
	_ "taskflow/docs" // Swagger docs
	"taskflow/internal/httpserver"
	"taskflow/pkg/datemath"
	"taskflow/pkg/firebase"
	"taskflow/pkg/llmprovider"
	"taskflow/pkg/log"
	"taskflow/pkg/mongodb"
	"taskflow/pkg/ratelimit"
	"taskflow/pkg/scope"
)

// @title       taskflow API
// @description Task management with user accounts, team assignment and AI-assisted task entry.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting taskflow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	var (
		mongoDB         *mongo.Database
		firestoreClient *firestore.Client
	)
	switch cfg.Database.Driver {
	case config.DatabaseDriverMongo:
		mongoDB, err = mongodb.Connect(ctx, mongodb.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: cfg.Mongo.ConnectTimeout,
		})
		if err != nil {
			logger.Error(ctx, "Failed to connect to MongoDB: ", err)
			return
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := mongodb.Disconnect(disconnectCtx, mongoDB); err != nil {
				logger.Warnf(disconnectCtx, "MongoDB disconnect: %v", err)
			}
		}()
		logger.Infof(ctx, "✅ MongoDB connected (database=%s)", cfg.Mongo.Database)

	case config.DatabaseDriverFirestore:
		firestoreClient, err = firebase.NewFirestore(ctx, firebase.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsPath: cfg.Firestore.CredentialsPath,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Firestore: ", err)
			return
		}
		defer firestoreClient.Close()
		logger.Infof(ctx, "✅ Firestore initialized (project=%s)", cfg.Firestore.ProjectID)
	}

	// 5. LLM provider
	provider, err := llmprovider.NewProvider(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM provider: ", err)
		return
	}
	llmManager := llmprovider.NewManager(provider, logger)
	logger.Infof(ctx, "LLM provider: %s (%s)", provider.Name(), provider.Model())

	// 6. Auth and rate limiting
	scopeManager := scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL)
	loginLimiter := ratelimit.New(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)
	aiLimiter := ratelimit.New(cfg.RateLimit.AIPerMinute, time.Minute)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		DatabaseDriver:  cfg.Database.Driver,
		MongoDB:         mongoDB,
		Firestore:       firestoreClient,
		ScopeManager:    scopeManager,
		LoginLimiter:    loginLimiter,
		AILimiter:       aiLimiter,
		LLM:             llmManager,
		DateMath:        dateMathParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

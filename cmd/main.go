package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	activityapp "github.com/muhammadheryan/green-footprint/application/activity"
	goalapp "github.com/muhammadheryan/green-footprint/application/goal"
	homeapp "github.com/muhammadheryan/green-footprint/application/home"
	postapp "github.com/muhammadheryan/green-footprint/application/post"
	userapp "github.com/muhammadheryan/green-footprint/application/user"
	"github.com/muhammadheryan/green-footprint/cmd/config"
	redisclient "github.com/muhammadheryan/green-footprint/cmd/redis"
	_ "github.com/muhammadheryan/green-footprint/docs"
	activityRepo "github.com/muhammadheryan/green-footprint/repository/activity"
	goalRepo "github.com/muhammadheryan/green-footprint/repository/goal"
	"github.com/muhammadheryan/green-footprint/repository/migration"
	postRepo "github.com/muhammadheryan/green-footprint/repository/post"
	redisRepo "github.com/muhammadheryan/green-footprint/repository/redis"
	txRepo "github.com/muhammadheryan/green-footprint/repository/tx"
	userRepo "github.com/muhammadheryan/green-footprint/repository/user"
	"github.com/muhammadheryan/green-footprint/thirdparty/rabbitmq"
	"github.com/muhammadheryan/green-footprint/transport"
	"github.com/muhammadheryan/green-footprint/utils/hasher"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"github.com/muhammadheryan/green-footprint/utils/ratelimit"
	"github.com/muhammadheryan/green-footprint/utils/token"
	validatorx "github.com/muhammadheryan/green-footprint/utils/validator"
	"go.uber.org/zap"
)

// @title GREEN FOOTPRINT API
// @version 1.0
// @description Carbon footprint tracking API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migration.Up(ctx, db.DB); err != nil {
			logger.Fatal("err run migrations", zap.Error(err))
		}
	}

	// Redis backs the shared rate limiter; without it each instance limits on its own.
	var limiter ratelimit.Limiter
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		limiter = ratelimit.NewRedisLimiter(redisRepo.NewRepository(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	// Goal deadlines are scheduled only when RabbitMQ is enabled.
	var deadlinePublisher rabbitmq.DeadlinePublisher
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.GetRabbitMQURL())
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
		deadlinePublisher = publisher
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	ActivityRepo := activityRepo.NewActivityRepository(db)
	GoalRepo := goalRepo.NewGoalRepository(db)
	PostRepo := postRepo.NewPostRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(UserRepo, hasher.NewBcrypt(cfg.Auth.BcryptCost), token.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration))
	ActivityApp := activityapp.NewActivityApp(ActivityRepo)
	GoalApp := goalapp.NewGoalApp(TxRepo, GoalRepo, deadlinePublisher)
	PostApp := postapp.NewPostApp(PostRepo)
	HomeApp := homeapp.NewHomeApp(UserRepo, ActivityRepo, GoalRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:     UserApp,
		ActivityApp: ActivityApp,
		GoalApp:     GoalApp,
		PostApp:     PostApp,
		HomeApp:     HomeApp,
	}, transport.Options{
		Limiter:        limiter,
		TrustedProxies: cfg.RateLimit.TrustedProxies,
		InternalAPIKey: cfg.Internal.APIKey,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed graceful shutdown", zap.Error(err))
	}
}

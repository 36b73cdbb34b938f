package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/green-footprint/cmd/config"
	"github.com/muhammadheryan/green-footprint/thirdparty/rabbitmq"
	"github.com/muhammadheryan/green-footprint/utils/logger"
	"go.uber.org/zap"
)

// The consumer expires goals whose deadline message comes due by calling the
// API's internal endpoint, so all writes stay behind the API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Internal.APIKey == "" {
		logger.Fatal("INTERNAL_API_KEY is required by the goal deadline consumer")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := rabbitmq.NewConsumer(cfg.GetRabbitMQURL(), cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("Goal deadline consumer running", zap.String("api_url", cfg.Internal.APIURL))
	<-ctx.Done()
	logger.Info("Shutting down consumer")
}

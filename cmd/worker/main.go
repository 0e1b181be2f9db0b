package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airportservice/config"
	"github.com/Domenick1991/airportservice/internal/email"
	"github.com/Domenick1991/airportservice/internal/kafka"
	"github.com/Domenick1991/airportservice/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Debug("config", "no .env file loaded")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("config", fmt.Sprintf("load config: %v", err))
	}
	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("kafka", "kafka.brokers is empty, nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.Info("worker", fmt.Sprintf("consuming %s as %s", cfg.Kafka.EventsTopic, cfg.Kafka.GroupID))
	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.EntityEvent) error {
		log.Info("event", fmt.Sprintf("%s.%s id=%d at %s", event.Resource, event.Type, event.ID, event.OccurredAt))
		if err := sender.Handle(ctx, event); err != nil {
			log.Error("email", fmt.Sprintf("%s.%s id=%d: %v", event.Resource, event.Type, event.ID, err))
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("kafka", fmt.Sprintf("consumer stopped: %v", err))
	}
	log.Info("worker", "shutting down")
}

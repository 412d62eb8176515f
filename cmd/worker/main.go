package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/config"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/fightpulse/fightpulse-api/internal/logger"
	"github.com/fightpulse/fightpulse-api/internal/queue"
	"github.com/fightpulse/fightpulse-api/internal/services/ingestion"
	"github.com/fightpulse/fightpulse-api/internal/workers"
	"go.uber.org/zap"
)

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debugMode := cfg.WorkerDebugMode || *debugFlag

	zapLogger, err := logger.NewProductionLogger(debugMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync(zapLogger)

	if cfg.RabbitMQURL == "" {
		zapLogger.Fatal("rabbitmq_url_required_for_worker")
	}

	zapLogger.Info("starting_worker",
		zap.Bool("debug_mode", debugMode),
		zap.Int("prefetch", cfg.WorkerPrefetch),
	)

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed_to_connect_to_database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Warn("failed_to_close_database_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_database")

	// The broker may still be starting; retry with backoff before giving up
	var jobQueue queue.JobQueue
	const maxRetries = 10
	delay := 2 * time.Second
	for attempt := 1; ; attempt++ {
		jobQueue, err = queue.NewRabbitMQQueue(cfg.RabbitMQURL)
		if err == nil {
			break
		}
		if attempt == maxRetries {
			zapLogger.Fatal("failed_to_connect_to_rabbitmq_after_retries",
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
		}
		zapLogger.Warn("failed_to_connect_to_rabbitmq_retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_delay", delay),
			zap.Error(err),
		)
		time.Sleep(delay)
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer func() {
		if err := jobQueue.Close(); err != nil {
			zapLogger.Warn("failed_to_close_rabbitmq_connection", zap.Error(err))
		}
	}()
	zapLogger.Info("connected_to_rabbitmq")

	ingestionSvc := ingestion.NewService(
		database.NewEventRepository(db),
		database.NewFighterRepository(db),
		database.NewFightRepository(db),
		zapLogger,
	)
	ingestor := workers.NewIngestor(ingestionSvc, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- ingestor.Run(ctx, jobQueue, cfg.WorkerPrefetch)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		zapLogger.Info("worker_shutting_down")
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			zapLogger.Fatal("worker_stopped_with_error", zap.Error(err))
		}
	}

	zapLogger.Info("worker_exited")
}

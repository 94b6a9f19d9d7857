package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/chapterchill/bookstore-service/config"
	"github.com/chapterchill/bookstore-service/internal/events"
	"github.com/chapterchill/bookstore-service/internal/handler"
	"github.com/chapterchill/bookstore-service/internal/repository"
	"github.com/chapterchill/bookstore-service/internal/server"
	"github.com/chapterchill/bookstore-service/internal/service"
	"github.com/chapterchill/bookstore-service/internal/service/ai"
	"github.com/chapterchill/bookstore-service/migrations"
	"github.com/chapterchill/bookstore-service/pkg/auth"
	"github.com/chapterchill/bookstore-service/pkg/kafka"
	"github.com/chapterchill/bookstore-service/pkg/logger"
	"github.com/chapterchill/bookstore-service/pkg/postgres"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "bookstore")
	auth.SetKey(cfg.JWTSecret)

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	// activity events are best effort: without a broker the publisher is a noop.
	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka producer unavailable", zap.Error(err))
		producer = nil
	}
	publisher := events.NewPublisher(producer, log)

	oracle := ai.NewClient(cfg.AI, log)

	svc := service.NewService(service.Repos{
		Books:    repo,
		Users:    repo,
		Orders:   repo,
		Lendings: repo,
	}, oracle, publisher, log)

	jobCtx, jobCancel := context.WithCancel(context.Background())
	go svc.StartReminderJob(jobCtx)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	jobCancel()

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err = producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}

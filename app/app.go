package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"library-manager/config"
	"library-manager/internal/handler"
	"library-manager/internal/repository"
	"library-manager/internal/server"
	"library-manager/internal/service"
	"library-manager/locales"
	"library-manager/migrations"
	"library-manager/pkg/auth"
	"library-manager/pkg/i18n"
	"library-manager/pkg/kafka"
	"library-manager/pkg/logger"
	"library-manager/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	tr, err := i18n.NewTranslator(locales.FS, cfg.I18n.Lang)
	if err != nil {
		log.Fatal("i18n", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatal("uploads dir", zap.Error(err))
	}

	var events *service.Publisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		events = service.NewPublisher(producer, log)
	}

	tokens := auth.NewTokenManager(cfg.JWT)
	svc := service.NewService(repo, tokens, tr, events, cfg.Uploads.Dir, log)

	h := handler.New(handler.Services{
		Auth:   svc,
		Book:   svc,
		Genre:  svc,
		Reader: svc,
		Lend:   svc,
	}, tokens, tr, cfg.Uploads.Dir, log)

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

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/tracklab-service/pkg/auth"
	"github.com/Astemirdum/tracklab-service/pkg/circuit_breaker"
	"github.com/Astemirdum/tracklab-service/pkg/database"
	"github.com/Astemirdum/tracklab-service/pkg/kafka"
	"github.com/Astemirdum/tracklab-service/pkg/logger"
	"github.com/Astemirdum/tracklab-service/pkg/metrics"
	"github.com/Astemirdum/tracklab-service/tracklab/config"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/handler"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/repository"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/scheduler"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/server"
	"github.com/Astemirdum/tracklab-service/tracklab/internal/service"
	"github.com/Astemirdum/tracklab-service/tracklab/migrations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "tracklab")
	if err := cfg.Auth.Validate(); err != nil {
		log.Fatal("auth config", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	opts := []service.Option{
		service.WithMetrics(metrics.New(reg)),
		service.WithTokenManager(tokens),
	}
	if cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close()
		recorder := service.NewQueueRecorder(producer,
			circuit_breaker.New(100, time.Second, 0.2, 2),
			service.NewStoreRecorder(repo), log)
		opts = append(opts, service.WithActivityRecorder(recorder))
	}
	svc := service.NewService(repo, log, opts...)

	if err = svc.EnsureAdmin(ctx, cfg.Auth.AdminPassword); err != nil {
		log.Fatal("ensure admin", zap.Error(err))
	}

	if cfg.Kafka.Enabled() {
		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ActivityConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer consumer.Close()
		go kafka.Consume(ctx, consumer, handler.NewConsumer(svc.PersistActivity, log), log, kafka.ActivityTopic)
	}

	sched := scheduler.NewScheduler(cfg.Scheduler, svc, log)
	if err = sched.Start(); err != nil {
		log.Fatal("scheduler", zap.Error(err))
	}

	h := handler.New(svc, tokens, metrics.Handler(reg), log)
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

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	sched.Stop()
	cancel()
	if err = db.Close(); err != nil {
		log.Error("db.Close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flock/config"
	"flock/di"
	"flock/driver/flock_db"
	"flock/job"
	"flock/rest"
	"flock/utils/logger"

	"github.com/labstack/echo/v4"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.InitLoggerWithLevel(cfg.Logging.Level)
	log.Info("starting feed scheduler")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := flock_db.InitDBConnectionPool(ctx, &cfg.Database)
	if err != nil {
		logger.Logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	container := di.NewApplicationComponents(pool, cfg)

	scheduler := job.NewJobScheduler()
	if cfg.Scheduler.Enabled {
		scheduler.Add(job.Job{
			Name:     "due-feed-sweep",
			Interval: cfg.Scheduler.SweepInterval,
			Timeout:  cfg.Scheduler.SweepInterval,
			Fn:       job.SweepJob(container.SchedulerUsecase),
		})
	}
	scheduler.Add(job.Job{
		Name:     "outbox-worker",
		Interval: cfg.Outbox.WorkerInterval,
		Timeout:  cfg.Outbox.WorkerInterval,
		Fn:       job.OutboxWorkerJob(container.FlockDBRepository, container.Notifier, cfg.Outbox.BatchSize),
	})
	scheduler.Add(job.Job{
		Name:     "outbox-prune",
		Interval: time.Hour,
		Timeout:  time.Minute,
		Fn:       job.OutboxPruneJob(container.FlockDBRepository, cfg.Outbox.PruneAfter),
	})
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil {
			logger.Logger.Info("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("server shutdown failed", "error", err)
	}
	scheduler.Shutdown()
}

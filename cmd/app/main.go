package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/courtside/pickem/internal/bootstrap"
	"github.com/courtside/pickem/internal/clock"
	"github.com/courtside/pickem/internal/config"
	"github.com/courtside/pickem/internal/database"
	"github.com/courtside/pickem/internal/handler"
	"github.com/courtside/pickem/internal/schedule"
	"github.com/courtside/pickem/internal/scheduler"
	"github.com/courtside/pickem/internal/server"
	"github.com/courtside/pickem/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	clk := clock.NewRealClockIn(cfg.Location())
	repos := bootstrap.InitializeRepositories(dbPool)
	injuries, redisStore := bootstrap.InitializeInjurySource(ctx, cfg)

	svcs, err := bootstrap.InitializeServices(cfg, repos, injuries, clk)
	if err != nil {
		return err
	}
	if err := svcs.Games.Initialize(ctx); err != nil {
		// Rosters still load; team records stay empty until the next attempt
		slog.Warn(bootstrap.LogMsgGameCacheInitFailed, "error", err)
	}

	pool := worker.NewPool(ctx, bootstrap.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)

	if cfg.ScheduleRefreshEnabled() {
		fetcher := schedule.NewClient(cfg.ScheduleAPIURL, cfg.ScheduleAPIKey, cfg.HTTPClientTimeout)
		job := schedule.NewRefreshJob(fetcher, repos.Games, svcs.Games, svcs.Seasons, clk, cfg.ScheduleDaysAhead)
		sched.Schedule(bootstrap.ScheduleRefreshJobName, cfg.ScheduleRefreshInterval, job, true)
		slog.Info(bootstrap.LogMsgScheduleRefreshOn, "interval", cfg.ScheduleRefreshInterval, "days_ahead", cfg.ScheduleDaysAhead)
	} else {
		slog.Info(bootstrap.LogMsgScheduleRefreshOff)
	}

	rollover := worker.NewCacheRolloverWorker(clk, cfg.Location(), bootstrap.RolloverCaches(svcs))
	rollover.Start()

	deps := map[string]handler.HealthChecker{}
	if redisStore != nil {
		deps["redis"] = redisStore
	}
	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Seasons:        svcs.Seasons,
		Clock:          clk,
		DBPool:         dbPool,
		Dependencies:   deps,
	}, svcs.Services)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:     srv,
			Scheduler:  sched,
			WorkerPool: pool,
			Rollover:   rollover,
			Redis:      redisStore,
		})
		return nil
	})

	return g.Wait()
}

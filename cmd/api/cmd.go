package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GregMSThompson/hsbooks/internal/bootstrap"
	"github.com/GregMSThompson/hsbooks/internal/config"
	"github.com/GregMSThompson/hsbooks/internal/handlers"
	"github.com/GregMSThompson/hsbooks/internal/repository"
	"github.com/GregMSThompson/hsbooks/internal/response"
	"github.com/GregMSThompson/hsbooks/internal/router"
	"github.com/GregMSThompson/hsbooks/internal/scheduler"
	"github.com/GregMSThompson/hsbooks/internal/services"
	"github.com/GregMSThompson/hsbooks/internal/store"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	snapshots := store.NewSnapshotStore(bs.Blobs)
	snap, err := snapshots.Load(logger.ToContext(ctx, bs.Log))
	exitOnError("loading saved data failed", err, bs.Log)
	saver := store.NewWriteBehind(snapshots, bs.Log)
	defer saver.Close()

	repo := repository.New(repository.WithSnapshot(snap), repository.WithSaver(saver))

	// services
	dashserv := services.NewDashboardService(repo, time.Now)
	repserv := services.NewReportService(repo, time.Now)
	bkserv := services.NewBackupService(repo)
	remserv := services.NewRemindersService(repo, bs.Blobs, bs.Notifier, time.Now, cfg.ReminderWithinDays)

	// scheduler
	sched, err := scheduler.New(cfg.ReminderSchedule, remserv, bs.Log)
	exitOnError("scheduler setup failed", err, bs.Log)
	sched.Start()

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = response.New(bs.Log)
	deps.Repo = repo
	deps.DashboardSvc = dashserv
	deps.ReportSvc = repserv
	deps.BackupSvc = bkserv
	deps.RemindersSvc = remserv

	// router
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		bs.Log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			bs.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	bs.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		bs.Log.Warn("http shutdown incomplete", "error", err)
	}
	sched.Stop(shutdownCtx)
}

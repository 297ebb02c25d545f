package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/GregMSThompson/hsbooks/internal/bootstrap"
	"github.com/GregMSThompson/hsbooks/internal/config"
	"github.com/GregMSThompson/hsbooks/internal/repository"
	"github.com/GregMSThompson/hsbooks/internal/services"
	"github.com/GregMSThompson/hsbooks/internal/store"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

// remind runs a single reminder check against the saved data and exits.
// The data is only read, so no saver is attached to the repository.
func main() {
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	ctx := logger.ToContext(context.Background(), bs.Log.With("job", "reminders"))

	snap, err := store.NewSnapshotStore(bs.Blobs).Load(ctx)
	exitOnError("loading saved data failed", err, bs.Log)
	repo := repository.New(repository.WithSnapshot(snap))

	remserv := services.NewRemindersService(repo, bs.Blobs, bs.Notifier, time.Now, cfg.ReminderWithinDays)
	run, err := remserv.Run(ctx)
	exitOnError("reminder run failed", err, bs.Log)

	bs.Log.Info("reminder run complete", "sent", len(run.Sent), "skipped", run.Skipped, "failed", run.Failed)
}

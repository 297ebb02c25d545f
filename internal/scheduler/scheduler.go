package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

type reminderRunner interface {
	Run(ctx context.Context) (dto.ReminderRun, error)
}

// Scheduler runs the reminder check on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	runner reminderRunner
	log    *slog.Logger
}

func New(spec string, runner reminderRunner, log *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{log: log}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))

	s := &Scheduler{cron: c, runner: runner, log: log}
	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running check to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn("reminder job still running at shutdown")
	}
}

func (s *Scheduler) runOnce() {
	ctx := logger.ToContext(context.Background(), s.log.With("job", "reminders"))
	res, err := s.runner.Run(ctx)
	if err != nil {
		s.log.Error("reminder run failed", "error", err)
		return
	}
	s.log.Info("reminder run complete", "sent", len(res.Sent), "skipped", res.Skipped, "failed", res.Failed)
}

type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

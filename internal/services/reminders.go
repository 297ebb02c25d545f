package services

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/internal/finance"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

// NotifiedPaymentsKey holds the ids already reminded about.
const NotifiedPaymentsKey = "hs-books-notified-payments"

// DefaultReminderWindowDays is how far ahead payments are announced.
const DefaultReminderWindowDays = 3

type reminderNotifier interface {
	Notify(ctx context.Context, r dto.Reminder) error
}

type keyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

type remindersService struct {
	repo       snapshotSource
	kv         keyValueStore
	notifier   reminderNotifier
	now        func() time.Time
	withinDays int

	mu sync.Mutex
}

func NewRemindersService(repo snapshotSource, kv keyValueStore, notifier reminderNotifier, now func() time.Time, withinDays int) *remindersService {
	if withinDays < 0 {
		withinDays = DefaultReminderWindowDays
	}
	return &remindersService{repo: repo, kv: kv, notifier: notifier, now: now, withinDays: withinDays}
}

// Run announces every payment due within the window that has not been
// announced yet. The stored set is rewritten with the ids still in the window,
// so a payment dropping out of it can be announced again on its next cycle.
func (s *remindersService) Run(ctx context.Context) (dto.ReminderRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)
	today := finance.Today(s.now())
	run := dto.ReminderRun{Sent: []dto.Reminder{}}

	notified, err := s.loadNotified(ctx)
	if err != nil {
		return run, err
	}

	var keep []string
	for _, p := range Obligations(s.repo.Snapshot()) {
		days := p.DueDate.DaysSince(today)
		if days < 0 || days > s.withinDays {
			continue
		}
		if slices.Contains(notified, p.ID) {
			run.Skipped++
			keep = append(keep, p.ID)
			continue
		}

		r := dto.Reminder{ID: p.ID, Name: p.Name, Kind: p.Kind, DueDate: p.DueDate, Amount: p.Amount, DaysLeft: days}
		if err := s.notifier.Notify(ctx, r); err != nil {
			log.Warn("failed to send reminder", "id", p.ID, "error", err)
			run.Failed++
			continue
		}
		run.Sent = append(run.Sent, r)
		keep = append(keep, p.ID)
	}

	if err := s.saveNotified(ctx, keep); err != nil {
		return run, err
	}
	log.Info("reminders run", "sent", len(run.Sent), "skipped", run.Skipped, "failed", run.Failed)
	return run, nil
}

func (s *remindersService) loadNotified(ctx context.Context) ([]string, error) {
	data, ok, err := s.kv.Get(ctx, NotifiedPaymentsKey)
	if err != nil || !ok {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// a corrupt set only means reminders may repeat
		logger.FromContext(ctx).Warn("discarding unreadable notified set", "error", err)
		return nil, nil
	}
	return ids, nil
}

func (s *remindersService) saveNotified(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return errs.NewDatabaseError("write", "failed to encode notified set", err)
	}
	return s.kv.Set(ctx, NotifiedPaymentsKey, data)
}

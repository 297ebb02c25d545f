package notify

import (
	"context"
	"fmt"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

type logNotifier struct{}

// NewLogNotifier returns a notifier that only writes reminders to the log.
func NewLogNotifier() *logNotifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(ctx context.Context, r dto.Reminder) error {
	logger.FromContext(ctx).Info("payment due",
		"id", r.ID,
		"name", r.Name,
		"dueDate", r.DueDate.String(),
		"amount", amountText(r),
		"daysLeft", r.DaysLeft)
	return nil
}

// Subject is the one-line summary of a reminder.
func Subject(r dto.Reminder) string {
	switch r.DaysLeft {
	case 0:
		return fmt.Sprintf("Payment due today: %s", r.Name)
	case 1:
		return fmt.Sprintf("Payment due tomorrow: %s", r.Name)
	default:
		return fmt.Sprintf("Payment due in %d days: %s", r.DaysLeft, r.Name)
	}
}

func amountText(r dto.Reminder) string {
	if r.Amount == nil {
		return "Check Plan"
	}
	return r.Amount.StringFixed(2)
}

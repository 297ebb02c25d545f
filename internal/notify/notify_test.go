package notify

import (
	"errors"
	"net/smtp"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/pkg/helpers"
)

func reminder(days int, amount *decimal.Decimal) dto.Reminder {
	return dto.Reminder{
		ID:       "loan-1",
		Name:     "EMI for Bank",
		Kind:     dto.PaymentKindLoan,
		DueDate:  civil.Date{Year: 2024, Month: 5, Day: 12},
		Amount:   amount,
		DaysLeft: days,
	}
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Payment due today: EMI for Bank", Subject(reminder(0, nil)))
	assert.Equal(t, "Payment due tomorrow: EMI for Bank", Subject(reminder(1, nil)))
	assert.Equal(t, "Payment due in 3 days: EMI for Bank", Subject(reminder(3, nil)))
}

func TestEmailNotifier(t *testing.T) {
	cfg := SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "u", Password: "p", From: "books@example.com", To: "me@example.com"}

	t.Run("sends formatted reminder", func(t *testing.T) {
		var sent *email.Email
		var addr string
		n := NewEmailNotifier(cfg)
		n.send = func(e *email.Email, a string, _ smtp.Auth) error {
			sent, addr = e, a
			return nil
		}

		require.NoError(t, n.Notify(helpers.TestCtx(), reminder(2, helpers.Ptr(decimal.RequireFromString("5000")))))

		assert.Equal(t, "smtp.example.com:587", addr)
		assert.Equal(t, []string{"me@example.com"}, sent.To)
		assert.Equal(t, "Payment due in 2 days: EMI for Bank", sent.Subject)
		assert.Contains(t, string(sent.Text), "Amount due: 5000.00")
		assert.Contains(t, string(sent.Text), "2024-05-12")
	})

	t.Run("unknown amount", func(t *testing.T) {
		var body string
		n := NewEmailNotifier(cfg)
		n.send = func(e *email.Email, _ string, _ smtp.Auth) error {
			body = string(e.Text)
			return nil
		}

		require.NoError(t, n.Notify(helpers.TestCtx(), reminder(0, nil)))
		assert.Contains(t, body, "check it before renewing")
	})

	t.Run("send failure is an external service error", func(t *testing.T) {
		n := NewEmailNotifier(cfg)
		n.send = func(*email.Email, string, smtp.Auth) error { return errors.New("connection refused") }

		err := n.Notify(helpers.TestCtx(), reminder(1, nil))
		var extErr *errs.ExternalServiceError
		require.ErrorAs(t, err, &extErr)
		assert.Equal(t, "smtp", extErr.Service)
	})
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, NewLogNotifier().Notify(helpers.TestCtx(), reminder(0, nil)))
}

package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/GregMSThompson/hsbooks/internal/dto"
	"github.com/GregMSThompson/hsbooks/internal/errs"
	"github.com/GregMSThompson/hsbooks/pkg/logger"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
}

type sendFunc func(e *email.Email, addr string, auth smtp.Auth) error

type emailNotifier struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewEmailNotifier(cfg SMTPConfig) *emailNotifier {
	return &emailNotifier{
		cfg:  cfg,
		send: func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
	}
}

func (n *emailNotifier) Notify(ctx context.Context, r dto.Reminder) error {
	e := email.NewEmail()
	e.From = n.cfg.From
	e.To = []string{n.cfg.To}
	e.Subject = Subject(r)
	e.Text = []byte(reminderBody(r))

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	if err := n.send(e, net.JoinHostPort(n.cfg.Host, n.cfg.Port), auth); err != nil {
		return errs.NewExternalServiceError("smtp", "failed to send reminder", true, err)
	}

	logger.FromContext(ctx).Info("reminder emailed", "id", r.ID, "subject", e.Subject)
	return nil
}

func reminderBody(r dto.Reminder) string {
	body := fmt.Sprintf("Hello,\n\n%s is due on %s.\n", r.Name, r.DueDate.String())
	if r.Amount == nil {
		body += "The amount depends on your plan, please check it before renewing.\n"
	} else {
		body += fmt.Sprintf("Amount due: %s\n", amountText(r))
	}
	return body + "\nHS Books"
}

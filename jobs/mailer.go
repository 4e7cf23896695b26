package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/hibiken/asynq"
)

// Mailer delivers application notifications over SMTP.
type Mailer struct {
	addr   string
	from   string
	logger *slog.Logger
}

// NewMailer constructs a Mailer targeting the given SMTP host and port.
func NewMailer(host string, port int, from string, logger *slog.Logger) *Mailer {
	return &Mailer{
		addr:   fmt.Sprintf("%s:%d", host, port),
		from:   from,
		logger: logger,
	}
}

// HandleApplicationNotice processes TaskTypeApplicationNotice tasks.
func (m *Mailer) HandleApplicationNotice(ctx context.Context, t *asynq.Task) error {
	var payload ApplicationNoticePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	body := fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: New application for %q\r\n\r\n%s (%s) applied to your posting %q.\r\n",
		payload.CompanyEmail, m.from, payload.JobTitle,
		payload.ApplicantName, payload.ApplicantEmail, payload.JobTitle,
	)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{payload.CompanyEmail}, []byte(body)); err != nil {
		return fmt.Errorf("send application notice %s: %w", payload.NotificationID, err)
	}

	if m.logger != nil {
		m.logger.Info("application notice delivered",
			slog.String("notification_id", payload.NotificationID),
			slog.Int64("job_id", payload.JobID),
		)
	}
	return nil
}

package mailer

import (
	"context"
	"log/slog"
)

// LogMailer writes messages to the log instead of sending them. Used for
// local development when no transport credentials are configured, so a
// message without recipients is still logged.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.InfoContext(ctx, "order email (log transport)",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}

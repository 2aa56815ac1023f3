package mail

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// logSender writes messages to the log instead of delivering them. Used in development.
type logSender struct {
	logger *slog.Logger
}

func newLogSender(logger *slog.Logger) *logSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg Message) (string, error) {
	id := uuid.NewString()
	s.logger.InfoContext(ctx, "Email not delivered (log provider)",
		slog.String("message_id", id),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)

	return id, nil
}

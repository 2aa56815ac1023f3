package mail

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
)

const welcomeSubject = "Welcome to Inkwell"

type welcomeMailer struct {
	sender Sender
	logger *slog.Logger
}

// NewWelcomeMailer creates a mailer for the post-registration welcome
func NewWelcomeMailer(sender Sender, logger *slog.Logger) service.WelcomeMailer {
	return &welcomeMailer{sender: sender, logger: logger}
}

func (m *welcomeMailer) SendWelcome(ctx context.Context, email string, preferences []string) error {
	text := "Your account is ready. Sign in to start reading and writing."
	body := "<h1>Welcome to Inkwell</h1><p>Your account is ready. Sign in to start reading and writing.</p>"
	if len(preferences) > 0 {
		text += fmt.Sprintf(" We will start with stories about %s.", strings.Join(preferences, ", "))

		items := make([]string, 0, len(preferences))
		for _, p := range preferences {
			items = append(items, "<li>"+html.EscapeString(p)+"</li>")
		}
		body += "<p>We will start with stories about:</p><ul>" + strings.Join(items, "") + "</ul>"
	}

	id, err := m.sender.Send(ctx, Message{To: email, Subject: welcomeSubject, Text: text, HTML: body})
	if err != nil {
		return errors.Wrap(err, "send welcome")
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Welcome mail sent", slog.String("message_id", id))

	return nil
}

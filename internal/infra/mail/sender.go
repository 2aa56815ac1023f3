// Package mail delivers transactional email through a configured provider.
package mail

import (
	"context"
	"log/slog"
	"strings"

	"inkwell/config"

	"github.com/pkg/errors"
)

// Message is a single transactional email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers one message and returns the provider's message ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NewSender selects the provider named in email.provider.
func NewSender(cfg *config.Config, logger *slog.Logger) (Sender, error) {
	emailCfg := cfg.Email
	if emailCfg == nil {
		return newLogSender(logger), nil
	}

	switch strings.ToLower(emailCfg.Provider) {
	case "sendgrid":
		if emailCfg.SendGrid.APIKey == "" || emailCfg.From == "" {
			return nil, errors.New("invalid SendGrid configuration")
		}

		return newSendGridSender(emailCfg.SendGrid.APIKey, emailCfg.From, emailCfg.FromName, ""), nil
	case "mailgun":
		if emailCfg.Mailgun.APIKey == "" || emailCfg.Mailgun.Domain == "" || emailCfg.From == "" {
			return nil, errors.New("invalid Mailgun configuration")
		}

		return newMailgunSender(emailCfg.Mailgun.Domain, emailCfg.Mailgun.APIKey, emailCfg.From, ""), nil
	case "", "log":
		if cfg.IsProduction() {
			logger.Warn("Email provider is 'log' in production; codes will only be logged")
		}

		return newLogSender(logger), nil
	default:
		return nil, errors.Errorf("unknown email provider: %s", emailCfg.Provider)
	}
}

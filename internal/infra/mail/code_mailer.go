package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/service"

	"github.com/pkg/errors"
)

const verificationSubject = "Your verification code"

type codeMailer struct {
	sender Sender
	logger *slog.Logger
}

// NewCodeMailer renders verification emails and hands them to sender.
func NewCodeMailer(sender Sender, logger *slog.Logger) service.CodeMailer {
	return &codeMailer{sender: sender, logger: logger}
}

func (m *codeMailer) SendVerificationCode(ctx context.Context, email, code string, validFor time.Duration) error {
	minutes := int(validFor.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	msg := Message{
		To:      email,
		Subject: verificationSubject,
		Text:    fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes),
		HTML: fmt.Sprintf(
			"<h1>Verify your email</h1><p>Your verification code is: <strong>%s</strong></p><p>This code expires in %d minutes.</p>",
			code, minutes,
		),
	}

	id, err := m.sender.Send(ctx, msg)
	if err != nil {
		return errors.Wrap(err, "send verification code")
	}

	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Verification code sent",
		slog.String("message_id", id))

	return nil
}

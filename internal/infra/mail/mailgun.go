package mail

import (
	"context"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/pkg/errors"
)

type mailgunSender struct {
	mg   *mailgun.MailgunImpl
	from string
}

// newMailgunSender overrides the API base when apiBase is set (tests, EU region).
func newMailgunSender(domain, apiKey, from, apiBase string) *mailgunSender {
	mg := mailgun.NewMailgun(domain, apiKey)
	if apiBase != "" {
		mg.SetAPIBase(apiBase)
	}

	return &mailgunSender{mg: mg, from: from}
}

func (s *mailgunSender) Send(ctx context.Context, msg Message) (string, error) {
	message := s.mg.NewMessage(s.from, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}

	_, id, err := s.mg.Send(ctx, message)
	if err != nil {
		return "", errors.Wrap(err, "mailgun send")
	}

	return id, nil
}

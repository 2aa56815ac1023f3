package mail

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendGridHost     = "https://api.sendgrid.com"
	sendGridEndpoint = "/v3/mail/send"
)

type sendGridSender struct {
	apiKey string
	host   string
	from   *sgmail.Email
}

func newSendGridSender(apiKey, from, fromName, host string) *sendGridSender {
	if host == "" {
		host = sendGridHost
	}

	return &sendGridSender{
		apiKey: apiKey,
		host:   host,
		from:   sgmail.NewEmail(fromName, from),
	}
}

func (s *sendGridSender) Send(ctx context.Context, msg Message) (string, error) {
	message := sgmail.NewSingleEmail(s.from, msg.Subject, sgmail.NewEmail("", msg.To), msg.Text, msg.HTML)

	request := sendgrid.GetRequest(s.apiKey, sendGridEndpoint, s.host)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(message)

	resp, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "sendgrid request")
	}
	if resp.StatusCode != http.StatusAccepted {
		return "", errors.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}

	if ids := resp.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}

	return "", nil
}

// Package handler contains the Pub/Sub push handlers served by the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/service"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const (
	eventTypeAttribute      = "event_type"
	eventIdentityRegistered = "identity.registered"
	providerGoogle          = "google"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler turns identity.registered deliveries into welcome mails.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	onboarding     usecase.OnboardingUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Onboarding usecase.OnboardingUsecase
}

// NewPushHandler creates a new push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local and noop publishers do not.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == providerGoogle &&
		params.Config.IsProduction()

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		onboarding:     params.Onboarding,
		logger:         params.Logger,
	}
}

// HandlePush acknowledges with 2xx and asks for redelivery with 503. Messages
// that can never succeed are acknowledged so they are not retried forever.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if eventType := pushMsg.Message.Attributes[eventTypeAttribute]; eventType != "" && eventType != eventIdentityRegistered {
		h.logger.Debug("[Worker] Ignoring event", slog.String("event_type", eventType))

		return c.NoContent(http.StatusNoContent)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.IdentityRegisteredEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse identity event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing identity.registered",
		slog.String("identity_id", event.IdentityID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	if err := h.onboarding.Welcome(ctx, &event); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to welcome identity",
			slog.String("identity_id", event.IdentityID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// isRetryable treats domain errors below 500 as permanent.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

// extractRequestID prefers message attributes, then the event, then the
// inbound request, and finally mints one.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.IdentityRegisteredEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Google attaches to push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"resale/config"
	deliverycontext "resale/internal/delivery/context"
	"resale/internal/domain/constants"
	"resale/internal/domain/service"
	"resale/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Google attaches to push requests
type TokenVerifier func(req *http.Request) error

// PushHandler handles Pub/Sub push messages carrying payment events
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    TokenVerifier
	logger         *slog.Logger
	processor      *PaymentEventProcessor
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Processor *PaymentEventProcessor
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		processor:      params.Processor,
	}
}

// HandlePush acknowledges a push delivery with 200 once the event is applied
// or can never be applied, and answers 503 so Pub/Sub redelivers otherwise.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Undecodable push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(c.Request().Context(), msg.Message.Attributes, event)
	logger := h.logger.With(slog.String("request_id", requestID))
	ctx := deliverycontext.WithLogger(
		deliverycontext.WithRequestID(c.Request().Context(), requestID), logger)

	err = h.processor.Process(ctx, event)
	if err == nil {
		return c.NoContent(http.StatusOK)
	}

	retryable := IsRetryableError(err)
	logger.Error("[Worker] Payment event failed",
		slog.String("payment_id", event.PaymentID),
		slog.Bool("retryable", retryable),
		slog.Any("error", err),
	)
	if retryable {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*pubsub.PubSubPushMessage, *service.PaymentCompletedEvent, error) {
	msg := new(pubsub.PubSubPushMessage)
	if err := c.Bind(msg); err != nil {
		return nil, nil, errors.Wrap(err, "bind push envelope")
	}

	event, err := msg.DecodePaymentCompleted()
	if err != nil {
		return nil, nil, err
	}

	return msg, event, nil
}

// extractRequestID prefers the message attribute, then the event body, then
// the inbound request ID, and mints one as a last resort.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.PaymentCompletedEvent) string {
	for _, candidate := range []string{
		attributes[pubsub.AttrRequestID],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if candidate != "" {
			return candidate
		}
	}

	return uuid.NewString()
}

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// verifyPubSubToken validates the OIDC token Google signs for authenticated
// push subscriptions. The expected audience is this endpoint's URL.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push identity email not verified")
	}

	return nil
}

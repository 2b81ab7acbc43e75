package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"

	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	modeSubscribe = "subscribe"

	// EventReceived is the acknowledgement body for an accepted delivery.
	EventReceived = "EVENT_RECEIVED"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, envelope *messenger.Envelope)
}

// WebhookController receives the Messenger platform webhook.
type WebhookController struct {
	dispatcher      Dispatcher
	validationToken string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(dispatcher Dispatcher, validationToken string) *WebhookController {
	return &WebhookController{
		dispatcher:      dispatcher,
		validationToken: validationToken,
	}
}

// VerifySubscription godoc
// @Summary      Verify the webhook subscription
// @Description  Echoes hub.challenge when hub.mode is subscribe and hub.verify_token matches the configured validation token.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Must be subscribe"
// @Param        hub.verify_token  query  string  true  "Validation token"
// @Param        hub.challenge     query  string  true  "Challenge to echo"
// @Success      200  {string}  string  "The challenge"
// @Failure      403  "Validation failed"
// @Router       /webhook [get]
func (w *WebhookController) VerifySubscription(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	if mode == modeSubscribe && subtle.ConstantTimeCompare([]byte(token), []byte(w.validationToken)) == 1 {
		zerolog.Ctx(c.UserContext()).Info().Msg("Validating webhook")
		return c.SendString(c.Query("hub.challenge"))
	}
	return richerrors.Error{
		ExternalMsg: "Failed validation. Make sure the validation tokens match.",
		Code:        fiber.StatusForbidden,
	}
}

// ReceiveEvent godoc
// @Summary      Receive messaging events
// @Description  Accepts a signed page envelope, routes every messaging event and acknowledges before replies are delivered.
// @Tags         Webhook
// @Accept       json
// @Produce      plain
// @Param        X-Hub-Signature      header  string              false  "sha1=<hex digest> of the body"
// @Param        X-Hub-Signature-256  header  string              false  "sha256=<hex digest> of the body"
// @Param        request              body    messenger.Envelope  true   "Webhook envelope"
// @Success      200  {string}  string  "EVENT_RECEIVED"
// @Failure      400  "Invalid request payload"
// @Failure      401  "Missing request signature"
// @Failure      403  "Invalid request signature"
// @Failure      404  "Unsupported webhook object"
// @Router       /webhook [post]
func (w *WebhookController) ReceiveEvent(c *fiber.Ctx) error {
	var envelope messenger.Envelope
	if err := json.Unmarshal(c.Body(), &envelope); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if envelope.Object != messenger.PageObject {
		return richerrors.Error{
			ExternalMsg: "Unsupported webhook object",
			Code:        fiber.StatusNotFound,
		}
	}

	w.dispatcher.Dispatch(c.UserContext(), &envelope)
	return c.SendString(EventReceived)
}

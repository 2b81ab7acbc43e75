package eventrouter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/DIMO-Network/insurance-chatbot/internal/metrics"
	"github.com/rs/zerolog"
)

// Handler answers each kind of messaging event.
type Handler interface {
	HandleMessage(ctx context.Context, event *messenger.MessagingEvent) ([]messenger.SendRequest, error)
	HandlePostback(ctx context.Context, event *messenger.MessagingEvent) ([]messenger.SendRequest, error)
	HandleAuthentication(ctx context.Context, event *messenger.MessagingEvent) []messenger.SendRequest
	HandleDelivery(ctx context.Context, event *messenger.MessagingEvent)
	HandleRead(ctx context.Context, event *messenger.MessagingEvent)
	HandleAccountLink(ctx context.Context, event *messenger.MessagingEvent)
}

// Outbox queues replies for asynchronous delivery.
type Outbox interface {
	Enqueue(ctx context.Context, subject string, requests []messenger.SendRequest) error
}

// Router fans a webhook envelope out to the Handler, one event at a time.
type Router struct {
	handler Handler
	outbox  Outbox
}

// NewRouter creates a Router.
func NewRouter(handler Handler, outbox Outbox) *Router {
	return &Router{
		handler: handler,
		outbox:  outbox,
	}
}

// Dispatch routes every event of every entry. A failing event is logged and never stops its siblings.
func (r *Router) Dispatch(ctx context.Context, envelope *messenger.Envelope) {
	for i := range envelope.Entry {
		entry := &envelope.Entry[i]
		logger := zerolog.Ctx(ctx).With().
			Str("pageId", entry.ID).
			Int64("entryTime", entry.Time).
			Logger()
		entryCtx := logger.WithContext(ctx)
		for j := range entry.Messaging {
			if err := r.route(entryCtx, &entry.Messaging[j]); err != nil {
				logger.Error().Err(err).
					Str("senderId", entry.Messaging[j].Sender.ID).
					Msg("failed to handle messaging event")
			}
		}
	}
}

func (r *Router) route(ctx context.Context, event *messenger.MessagingEvent) (err error) {
	kind := event.Kind()
	defer func() {
		if rec := recover(); rec != nil {
			metrics.HandlerPanics.Inc()
			err = fmt.Errorf("panic handling %s event: %v", kind, rec)
		}
	}()
	metrics.EventsTotal.WithLabelValues(string(kind)).Inc()

	var replies []messenger.SendRequest
	switch kind {
	case messenger.KindAuthentication:
		replies = r.handler.HandleAuthentication(ctx, event)
	case messenger.KindMessage:
		replies, err = r.handler.HandleMessage(ctx, event)
	case messenger.KindDelivery:
		r.handler.HandleDelivery(ctx, event)
	case messenger.KindPostback:
		replies, err = r.handler.HandlePostback(ctx, event)
	case messenger.KindRead:
		r.handler.HandleRead(ctx, event)
	case messenger.KindAccountLink:
		r.handler.HandleAccountLink(ctx, event)
	default:
		raw, _ := json.Marshal(event)
		zerolog.Ctx(ctx).Warn().RawJSON("event", raw).Msg("Webhook received unknown messaging event.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to handle %s event: %w", kind, err)
	}
	if len(replies) == 0 {
		return nil
	}

	if err := r.outbox.Enqueue(ctx, event.Sender.ID, replies); err != nil {
		return fmt.Errorf("failed to enqueue replies: %w", err)
	}
	return nil
}

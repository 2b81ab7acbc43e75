package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/DIMO-Network/insurance-chatbot/internal/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
)

// Sender delivers one request to the send API.
type Sender interface {
	Send(ctx context.Context, req *messenger.SendRequest) (*messenger.SendResult, error)
}

// Worker drains the outbox and hands every request to the Sender in order.
type Worker struct {
	sender Sender
}

// NewWorker creates a delivery worker.
func NewWorker(sender Sender) *Worker {
	return &Worker{sender: sender}
}

// ProcessMessages runs until ctx is done or the channel closes. Every message is acked,
// delivery failures are logged and counted but never retried.
func (w *Worker) ProcessMessages(ctx context.Context, messages <-chan *message.Message) error {
	return processMessage(ctx, messages, w.deliver)
}

func processMessage(ctx context.Context, messages <-chan *message.Message, processor func(msg *message.Message) error) error {
	logger := zerolog.Ctx(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				// channel is closed
				return nil
			}
			if ctx.Err() != nil {
				// check context since select is not deterministic when multiple cases are ready
				return ctx.Err()
			}
			msg.SetContext(ctx)
			if err := processor(msg); err != nil {
				logger.Error().Err(err).Str("messageUuid", msg.UUID).Msg("error delivering outbox message")
			}
			msg.Ack()
		}
	}
}

func (w *Worker) deliver(msg *message.Message) error {
	ctx := msg.Context()
	var batch Batch
	if err := json.Unmarshal(msg.Payload, &batch); err != nil {
		return fmt.Errorf("failed to parse outbox batch: %w", err)
	}
	logger := zerolog.Ctx(ctx).With().
		Str("batchId", batch.ID).
		Str("recipientId", batch.Subject).
		Logger()

	var errs []error
	for i := range batch.Data {
		result, err := w.sender.Send(ctx, &batch.Data[i])
		status := messenger.StatusFailed
		if result != nil {
			status = result.Status
		}
		metrics.SendResultsTotal.WithLabelValues(string(status)).Inc()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		logger.Debug().
			Str("messageId", result.MessageID).
			Str("recipientId", result.RecipientID).
			Msg("Successfully sent message")
	}
	return errors.Join(errs...)
}

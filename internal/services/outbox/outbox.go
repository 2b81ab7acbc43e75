// Package outbox queues outbound send requests so webhook handling never waits on the send API.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DIMO-Network/cloudevent"
	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

const (
	// EventType identifies a batch of send requests on the outbox topic.
	EventType = "insurancechatbot.messenger.send"

	dataVersion = "messenger.send/v1.0"
)

// Batch is the ordered list of replies produced for one inbound event.
type Batch = cloudevent.CloudEvent[[]messenger.SendRequest]

// Outbox publishes reply batches to a watermill topic.
type Outbox struct {
	publisher message.Publisher
	topic     string
	source    string
	now       func() time.Time
}

// New creates an outbox that publishes to topic, stamping source on every batch.
func New(publisher message.Publisher, topic, source string) *Outbox {
	return &Outbox{
		publisher: publisher,
		topic:     topic,
		source:    source,
		now:       time.Now,
	}
}

// Enqueue publishes the replies addressed to subject as a single message so their order survives
// transports that deliver messages concurrently. An empty list publishes nothing.
func (o *Outbox) Enqueue(ctx context.Context, subject string, requests []messenger.SendRequest) error {
	if len(requests) == 0 {
		return nil
	}
	batch := Batch{
		CloudEventHeader: cloudevent.CloudEventHeader{
			ID:              uuid.New().String(),
			Source:          o.source,
			Subject:         subject,
			Time:            o.now().UTC(),
			DataContentType: "application/json",
			DataVersion:     dataVersion,
			Type:            EventType,
			SpecVersion:     "1.0",
		},
		Data: requests,
	}
	payload, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox batch: %w", err)
	}

	msg := message.NewMessage(batch.ID, payload)
	msg.SetContext(ctx)
	if err := o.publisher.Publish(o.topic, msg); err != nil {
		return fmt.Errorf("failed to publish outbox batch to %s: %w", o.topic, err)
	}
	return nil
}

package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
)

type Config struct {
	ClusterConfig   *sarama.Config
	BrokerAddresses []string
	Topic           string
	GroupID         string
}

// NewClusterConfig returns the sarama settings shared by the outbox publisher and consumer.
func NewClusterConfig() *sarama.Config {
	clusterConfig := sarama.NewConfig()
	clusterConfig.Version = sarama.V2_8_1_0
	clusterConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	return clusterConfig
}

// Consumer hands the messages of one topic to a processing loop.
type Consumer struct {
	subscriber message.Subscriber
	topic      string
}

// NewConsumer creates a consumer backed by a Kafka consumer group.
func NewConsumer(cfg *Config) (*Consumer, error) {
	saramaSubscriberConfig := wm_kafka.DefaultSaramaSubscriberConfig()

	saramaSubscriberConfig.Version = cfg.ClusterConfig.Version
	saramaSubscriberConfig.Consumer.Offsets.Initial = cfg.ClusterConfig.Consumer.Offsets.Initial

	subscriber, err := wm_kafka.NewSubscriber(
		wm_kafka.SubscriberConfig{
			Brokers:               cfg.BrokerAddresses,
			Unmarshaler:           wm_kafka.DefaultMarshaler{},
			OverwriteSaramaConfig: saramaSubscriberConfig,
			ConsumerGroup:         cfg.GroupID,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, err
	}

	return NewSubscriberConsumer(subscriber, cfg.Topic), nil
}

// NewSubscriberConsumer wraps any watermill subscriber, e.g. an in-process go channel.
func NewSubscriberConsumer(subscriber message.Subscriber, topic string) *Consumer {
	return &Consumer{
		subscriber: subscriber,
		topic:      topic,
	}
}

// Start subscribes to the topic and runs process in the background until ctx is done.
func (c *Consumer) Start(ctx context.Context, process func(ctx context.Context, messages <-chan *message.Message) error) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topic)
	if err != nil {
		return fmt.Errorf("could not subscribe to topic %s: %w", c.topic, err)
	}

	go func() {
		if err := process(ctx, messages); err != nil && !errors.Is(err, context.Canceled) {
			zerolog.Ctx(ctx).Error().Err(err).Str("topic", c.topic).Msg("consumer stopped")
		}
	}()
	return nil
}

// Close releases the underlying subscriber.
func (c *Consumer) Close() error {
	return c.subscriber.Close()
}

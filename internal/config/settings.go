package config

import (
	"errors"
	"strings"
	"time"
)

const (
	defaultGraphAPIURL     = "https://graph.facebook.com/v2.6"
	defaultConversationTTL = 30 * time.Minute
	defaultStaticDir       = "public"
	defaultOutboxTopic     = "messenger.outbox"
	defaultConsumerGroup   = "insurance-chatbot"
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	// Messenger platform credentials.
	AppSecret       string `env:"MESSENGER_APP_SECRET"`
	ValidationToken string `env:"MESSENGER_VALIDATION_TOKEN"`
	PageAccessToken string `env:"MESSENGER_PAGE_ACCESS_TOKEN"`
	ServerURL       string `env:"SERVER_URL"`
	GraphAPIURL     string `env:"GRAPH_API_URL"`

	// AllowUnsignedWebhooks lets webhook deliveries without a signature header through.
	AllowUnsignedWebhooks bool          `env:"ALLOW_UNSIGNED_WEBHOOKS"`
	ConversationTTL       time.Duration `env:"CONVERSATION_TTL"`
	StaticDir             string        `env:"STATIC_DIR"`

	// KafkaBrokers switches the outbox from the in-process channel to Kafka when set.
	KafkaBrokers        string `env:"KAFKA_BROKERS"`
	OutboxTopic         string `env:"OUTBOX_TOPIC"`
	OutboxConsumerGroup string `env:"OUTBOX_CONSUMER_GROUP"`
}

// ApplyDefaults fills in optional values that were left empty.
func (s *Settings) ApplyDefaults() {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "insurance-chatbot"
	}
	if s.GraphAPIURL == "" {
		s.GraphAPIURL = defaultGraphAPIURL
	}
	s.GraphAPIURL = strings.TrimSuffix(s.GraphAPIURL, "/")
	s.ServerURL = strings.TrimSuffix(s.ServerURL, "/")
	if s.ConversationTTL <= 0 {
		s.ConversationTTL = defaultConversationTTL
	}
	if s.StaticDir == "" {
		s.StaticDir = defaultStaticDir
	}
	if s.OutboxTopic == "" {
		s.OutboxTopic = defaultOutboxTopic
	}
	if s.OutboxConsumerGroup == "" {
		s.OutboxConsumerGroup = defaultConsumerGroup
	}
}

// Validate returns an error naming every required value that is missing.
func (s *Settings) Validate() error {
	var errs []error
	if s.AppSecret == "" {
		errs = append(errs, errors.New("MESSENGER_APP_SECRET is required"))
	}
	if s.ValidationToken == "" {
		errs = append(errs, errors.New("MESSENGER_VALIDATION_TOKEN is required"))
	}
	if s.PageAccessToken == "" {
		errs = append(errs, errors.New("MESSENGER_PAGE_ACCESS_TOKEN is required"))
	}
	if s.ServerURL == "" {
		errs = append(errs, errors.New("SERVER_URL is required"))
	}
	return errors.Join(errs...)
}

// KafkaBrokerList splits the comma separated broker setting.
func (s *Settings) KafkaBrokerList() []string {
	if strings.TrimSpace(s.KafkaBrokers) == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(s.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

package app

import (
	"context"
	"fmt"

	_ "github.com/DIMO-Network/insurance-chatbot/docs" // Import Swagger docs
	"github.com/DIMO-Network/insurance-chatbot/internal/auth"
	"github.com/DIMO-Network/insurance-chatbot/internal/config"
	"github.com/DIMO-Network/insurance-chatbot/internal/controllers/authorize"
	"github.com/DIMO-Network/insurance-chatbot/internal/controllers/webhook"
	"github.com/DIMO-Network/insurance-chatbot/internal/conversation"
	"github.com/DIMO-Network/insurance-chatbot/internal/kafka"
	"github.com/DIMO-Network/insurance-chatbot/internal/metrics"
	"github.com/DIMO-Network/insurance-chatbot/internal/services/conversationstore"
	"github.com/DIMO-Network/insurance-chatbot/internal/services/eventrouter"
	"github.com/DIMO-Network/insurance-chatbot/internal/services/outbox"
	"github.com/DIMO-Network/insurance-chatbot/internal/services/sendapi"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

const outboxBufferSize = 256

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	store := conversationstore.New(settings.ConversationTTL)
	store.OnExpired(func(senderID string) {
		metrics.ConversationsExpired.Inc()
		logger.Debug().Str("senderId", senderID).Msg("Conversation expired.")
	})

	engine, err := conversation.NewEngine(store, settings.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation engine: %w", err)
	}

	ob, err := startOutbox(ctx, logger, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to start outbox: %w", err)
	}

	router := eventrouter.NewRouter(engine, ob)

	app, err := CreateFiberApp(logger, router, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, dispatcher webhook.Dispatcher, settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting Insurance Chatbot...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Insurance Chatbot!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	// Images referenced by the message templates.
	app.Static("/assets", settings.StaticDir)

	policy := auth.PolicyStrict
	if settings.AllowUnsignedWebhooks {
		logger.Warn().Msg("Webhook deliveries without a signature will be accepted.")
		policy = auth.PolicyPermissive
	}
	signatureMiddleware := auth.SignatureMiddleware(auth.NewSignatureVerifier(settings.AppSecret, policy))

	webhookController := webhook.NewWebhookController(dispatcher, settings.ValidationToken)
	authorizeController, err := authorize.NewAuthorizeController()
	if err != nil {
		return nil, fmt.Errorf("failed to create authorize controller: %w", err)
	}
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.VerifySubscription)
	app.Post("/webhook", signatureMiddleware, webhookController.ReceiveEvent)
	app.Get("/authorize", authorizeController.Authorize)

	return app, nil
}

// startOutbox wires the reply outbox to the delivery worker. Kafka is used when brokers are configured,
// otherwise replies stay in process.
func startOutbox(ctx context.Context, logger zerolog.Logger, settings *config.Settings) (*outbox.Outbox, error) {
	var (
		publisher message.Publisher
		consumer  *kafka.Consumer
	)
	if brokers := settings.KafkaBrokerList(); len(brokers) > 0 {
		kafkaConfig := &kafka.Config{
			ClusterConfig:   kafka.NewClusterConfig(),
			BrokerAddresses: brokers,
			Topic:           settings.OutboxTopic,
			GroupID:         settings.OutboxConsumerGroup,
		}
		kafkaPublisher, err := kafka.NewPublisher(kafkaConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create outbox publisher: %w", err)
		}
		publisher = kafkaPublisher
		consumer, err = kafka.NewConsumer(kafkaConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create outbox consumer: %w", err)
		}
	} else {
		pubSub := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: outboxBufferSize,
		}, watermill.NewStdLogger(false, false))
		publisher = pubSub
		consumer = kafka.NewSubscriberConsumer(pubSub, settings.OutboxTopic)
	}

	sender := sendapi.NewClient(nil, settings.GraphAPIURL, settings.PageAccessToken)
	worker := outbox.NewWorker(sender)
	if err := consumer.Start(logger.WithContext(ctx), worker.ProcessMessages); err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		if err := publisher.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close outbox publisher")
		}
		if err := consumer.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close outbox consumer")
		}
	}()

	logger.Info().Msgf("Outbox worker started on topic: %s", settings.OutboxTopic)
	return outbox.New(publisher, settings.OutboxTopic, settings.ServiceName), nil
}

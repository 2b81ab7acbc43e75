package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/DIMO-Network/insurance-chatbot/internal/celcondition"
	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/rs/zerolog"
)

// Engine decides how the bot answers each inbound event.
// It never sends anything itself; callers deliver the returned requests.
type Engine struct {
	rules     []compiledRule
	store     Store
	serverURL string
	rng       messenger.RandomSource
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	rules []Rule
	rng   messenger.RandomSource
	now   func() time.Time
}

// WithRules replaces the default rule list.
func WithRules(rules []Rule) Option {
	return func(c *engineConfig) {
		c.rules = rules
	}
}

// WithRandomSource sets the generator used for order and claim numbers.
func WithRandomSource(src messenger.RandomSource) Option {
	return func(c *engineConfig) {
		c.rng = src
	}
}

// WithClock sets the clock used for receipt timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *engineConfig) {
		c.now = now
	}
}

// NewEngine compiles the rule conditions. serverURL is the public base url that static assets are served under.
func NewEngine(store Store, serverURL string, opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		rules: DefaultRules(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rules := make([]compiledRule, 0, len(cfg.rules))
	for _, rule := range cfg.rules {
		prg, err := celcondition.PrepareCondition(rule.Condition)
		if err != nil {
			return nil, fmt.Errorf("failed to prepare rule %s: %w", rule.Name, err)
		}
		rules = append(rules, compiledRule{Rule: rule, program: prg})
	}

	return &Engine{
		rules:     rules,
		store:     store,
		serverURL: serverURL,
		rng:       cfg.rng,
		now:       cfg.now,
	}, nil
}

// HandleMessage answers a message event. Echoes of the page's own messages produce no replies.
func (e *Engine) HandleMessage(ctx context.Context, event *messenger.MessagingEvent) ([]messenger.SendRequest, error) {
	msg := event.Message
	logger := eventLogger(ctx, event)
	senderID := event.Sender.ID

	if msg.IsEcho {
		logger.Debug().Str("mid", msg.MID).Int64("appId", msg.AppID).Str("metadata", msg.Metadata).Msg("Received echo.")
		return nil, nil
	}
	if msg.QuickReply != nil {
		logger.Info().Str("mid", msg.MID).Str("payload", msg.QuickReply.Payload).Msg("Quick reply tapped.")
		return []messenger.SendRequest{messenger.NewTextMessage(senderID, textQuickReplyTapped)}, nil
	}
	if msg.Text != "" {
		return e.matchText(logger.WithContext(ctx), Turn{SenderID: senderID, Text: msg.Text})
	}
	if len(msg.Attachments) > 0 {
		logger.Info().Int("attachments", len(msg.Attachments)).Msg("Received claim documents.")
		summary, err := e.claimSummary(senderID, e.store.Get(senderID))
		if err != nil {
			return nil, err
		}
		return []messenger.SendRequest{
			messenger.NewTextMessage(senderID, textClaimReceived),
			summary,
		}, nil
	}
	logger.Debug().Str("mid", msg.MID).Msg("Message has neither text nor attachments.")
	return nil, nil
}

func (e *Engine) matchText(ctx context.Context, turn Turn) ([]messenger.SendRequest, error) {
	logger := zerolog.Ctx(ctx)
	for _, rule := range e.rules {
		matched, err := celcondition.EvaluateCondition(rule.program, turn.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate rule %s: %w", rule.Name, err)
		}
		if matched {
			logger.Debug().Str("rule", rule.Name).Msg("Text matched rule.")
			return rule.Reply(e, turn)
		}
	}

	command := normalizeCommand(turn.Text)
	if reply, ok := commands[command]; ok {
		logger.Debug().Str("command", command).Msg("Text matched command.")
		return reply(e, turn)
	}
	return []messenger.SendRequest{messenger.NewTextMessage(turn.SenderID, textGreeting)}, nil
}

// HandlePostback answers a tapped postback button. Payloads without a handler produce no replies.
func (e *Engine) HandlePostback(ctx context.Context, event *messenger.MessagingEvent) ([]messenger.SendRequest, error) {
	senderID := event.Sender.ID
	intent := ParseIntent(event.Postback.Payload)
	logger := eventLogger(ctx, event)
	logger.Info().Str("payload", event.Postback.Payload).Stringer("intent", intent).Msg("Received postback.")

	var (
		replies []messenger.SendRequest
		reply   messenger.SendRequest
		err     error
	)
	switch intent {
	case IntentRecommendSecondProduct:
		replies = append(replies, messenger.NewTextMessage(senderID, textRecommendProduct))
		reply, err = e.secondProduct(senderID)
	case IntentConfirmProfile:
		reply, err = e.existingCoverage(senderID)
	case IntentRecommendSupplementary:
		replies = append(replies, messenger.NewTextMessage(senderID, textRecommendSupplement))
		reply, err = e.supplementaryProducts(senderID)
	case IntentReceiptTermLife:
		reply, err = e.purchaseReceipt(senderID, termLifeProduct)
	case IntentReceiptAccident:
		reply, err = e.purchaseReceipt(senderID, accidentProduct)
	case IntentPaymentConfirm:
		claimNumber := messenger.ReferenceCode(claimNumberPrefix, e.rng)
		logger.Info().Str("claimNumber", claimNumber).Msg("Claim submitted.")
		reply = messenger.NewTextMessage(senderID, textPaymentConfirmed+claimNumber)
	default:
		logger.Debug().Str("payload", event.Postback.Payload).Msg("Ignoring postback without a handler.")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return append(replies, reply), nil
}

// HandleAuthentication acknowledges a send-to-messenger opt-in.
func (e *Engine) HandleAuthentication(ctx context.Context, event *messenger.MessagingEvent) []messenger.SendRequest {
	eventLogger(ctx, event).Info().
		Str("ref", event.Optin.Ref).
		Int64("timestamp", event.Timestamp).
		Msg("Received authentication.")
	return []messenger.SendRequest{messenger.NewTextMessage(event.Sender.ID, textAuthenticationPassed)}
}

// HandleDelivery logs a delivery confirmation.
func (e *Engine) HandleDelivery(ctx context.Context, event *messenger.MessagingEvent) {
	logger := eventLogger(ctx, event)
	for _, mid := range event.Delivery.MIDs {
		logger.Debug().Str("mid", mid).Msg("Received delivery confirmation.")
	}
	logger.Debug().
		Int64("watermark", event.Delivery.Watermark).
		Int64("seq", event.Delivery.Seq).
		Msg("All messages before watermark were delivered.")
}

// HandleRead logs a read receipt.
func (e *Engine) HandleRead(ctx context.Context, event *messenger.MessagingEvent) {
	eventLogger(ctx, event).Debug().
		Int64("watermark", event.Read.Watermark).
		Int64("seq", event.Read.Seq).
		Msg("Received message read event.")
}

// HandleAccountLink logs an account linking change.
func (e *Engine) HandleAccountLink(ctx context.Context, event *messenger.MessagingEvent) {
	eventLogger(ctx, event).Info().
		Str("status", event.AccountLinking.Status).
		Str("authCode", event.AccountLinking.AuthorizationCode).
		Msg("Received account link event.")
}

func eventLogger(ctx context.Context, event *messenger.MessagingEvent) *zerolog.Logger {
	logger := zerolog.Ctx(ctx).With().
		Str("senderId", event.Sender.ID).
		Str("recipientId", event.Recipient.ID).
		Logger()
	return &logger
}

package conversation

// Intent is a postback payload parsed into the closed set of actions the bot knows about.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentRecommendSecondProduct
	IntentConfirmProfile
	IntentRecommendSupplementary
	IntentReceiptTermLife
	IntentReceiptAccident
	IntentPaymentConfirm
	// IntentPaymentUpdate is offered on the claim summary but has no follow-up yet.
	IntentPaymentUpdate
)

var intentPayloads = map[Intent]string{
	IntentRecommendSecondProduct: "Payload_Policy2",
	IntentConfirmProfile:         "Payload_Policy3A",
	IntentRecommendSupplementary: "Payload_Policy3B",
	IntentReceiptTermLife:        "Payload_Policy3C1",
	IntentReceiptAccident:        "Payload_Policy3C2",
	IntentPaymentConfirm:         "Payload_PaymentConfirm",
	IntentPaymentUpdate:          "Payload_PaymentUpdate",
}

var payloadIntents = func() map[string]Intent {
	m := make(map[string]Intent, len(intentPayloads))
	for intent, payload := range intentPayloads {
		m[payload] = intent
	}
	return m
}()

// ParseIntent maps a postback payload to its Intent. Unrecognised payloads yield IntentUnknown.
func ParseIntent(payload string) Intent {
	return payloadIntents[payload]
}

// Payload is the postback payload that parses back to i.
func (i Intent) Payload() string {
	return intentPayloads[i]
}

func (i Intent) String() string {
	if p, ok := intentPayloads[i]; ok {
		return p
	}
	return "unknown"
}

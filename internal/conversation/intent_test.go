package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		payload  string
		expected Intent
	}{
		{payload: "Payload_Policy2", expected: IntentRecommendSecondProduct},
		{payload: "Payload_Policy3A", expected: IntentConfirmProfile},
		{payload: "Payload_Policy3B", expected: IntentRecommendSupplementary},
		{payload: "Payload_Policy3C1", expected: IntentReceiptTermLife},
		{payload: "Payload_Policy3C2", expected: IntentReceiptAccident},
		{payload: "Payload_PaymentConfirm", expected: IntentPaymentConfirm},
		{payload: "Payload_PaymentUpdate", expected: IntentPaymentUpdate},
		{payload: "payload_policy2", expected: IntentUnknown},
		{payload: "", expected: IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			intent := ParseIntent(tt.payload)
			assert.Equal(t, tt.expected, intent)
			if intent != IntentUnknown {
				assert.Equal(t, tt.payload, intent.Payload())
				assert.Equal(t, tt.payload, intent.String())
			}
		})
	}

	assert.Empty(t, IntentUnknown.Payload())
	assert.Equal(t, "unknown", IntentUnknown.String())
}

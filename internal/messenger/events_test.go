package messenger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagingEvent_Kind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		event    MessagingEvent
		expected EventKind
	}{
		{name: "optin", event: MessagingEvent{Optin: &Optin{Ref: "ref"}}, expected: KindAuthentication},
		{name: "message", event: MessagingEvent{Message: &InboundMessage{Text: "hi"}}, expected: KindMessage},
		{name: "delivery", event: MessagingEvent{Delivery: &Delivery{Watermark: 1}}, expected: KindDelivery},
		{name: "postback", event: MessagingEvent{Postback: &Postback{Payload: "p"}}, expected: KindPostback},
		{name: "read", event: MessagingEvent{Read: &Read{Watermark: 1}}, expected: KindRead},
		{name: "account linking", event: MessagingEvent{AccountLinking: &AccountLinking{Status: "linked"}}, expected: KindAccountLink},
		{name: "nothing set", event: MessagingEvent{}, expected: KindUnknown},
		{
			name:     "optin wins over message",
			event:    MessagingEvent{Optin: &Optin{}, Message: &InboundMessage{}},
			expected: KindAuthentication,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Kind())
		})
	}
}

func TestEnvelope_Unmarshal(t *testing.T) {
	t.Parallel()

	body := `{
		"object": "page",
		"entry": [{
			"id": "PAGE_ID",
			"time": 1458692752478,
			"messaging": [
				{
					"sender": {"id": "U1"},
					"recipient": {"id": "PAGE_ID"},
					"timestamp": 1458692752478,
					"message": {"mid": "mid.1", "text": "我想查保單", "quick_reply": {"payload": "QR"}}
				},
				{
					"sender": {"id": "U1"},
					"recipient": {"id": "PAGE_ID"},
					"timestamp": 1458692752479,
					"message": {"mid": "mid.2", "attachments": [{"type": "image", "payload": {"url": "https://example.com/a.jpg"}}]}
				},
				{
					"sender": {"id": "U1"},
					"recipient": {"id": "PAGE_ID"},
					"timestamp": 1458692752480,
					"delivery": {"mids": ["mid.1"], "watermark": 1458668856253, "seq": 37}
				},
				{
					"sender": {"id": "U1"},
					"recipient": {"id": "PAGE_ID"},
					"account_linking": {"status": "linked", "authorization_code": "code"}
				}
			]
		}]
	}`

	var envelope Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, PageObject, envelope.Object)
	require.Len(t, envelope.Entry, 1)

	events := envelope.Entry[0].Messaging
	require.Len(t, events, 4)

	assert.Equal(t, KindMessage, events[0].Kind())
	assert.Equal(t, "U1", events[0].Sender.ID)
	assert.Equal(t, "我想查保單", events[0].Message.Text)
	require.NotNil(t, events[0].Message.QuickReply)
	assert.Equal(t, "QR", events[0].Message.QuickReply.Payload)

	assert.Equal(t, KindMessage, events[1].Kind())
	require.Len(t, events[1].Message.Attachments, 1)
	assert.Equal(t, "image", events[1].Message.Attachments[0].Type)

	assert.Equal(t, KindDelivery, events[2].Kind())
	assert.Equal(t, []string{"mid.1"}, events[2].Delivery.MIDs)
	assert.Equal(t, int64(37), events[2].Delivery.Seq)

	assert.Equal(t, KindAccountLink, events[3].Kind())
	assert.Equal(t, "code", events[3].AccountLinking.AuthorizationCode)
}

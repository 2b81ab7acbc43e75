package messenger

import "encoding/json"

// PageObject is the only envelope object type the webhook accepts.
const PageObject = "page"

// EventKind identifies which payload a messaging event carries.
type EventKind string

const (
	KindAuthentication EventKind = "authentication"
	KindMessage        EventKind = "message"
	KindDelivery       EventKind = "delivery"
	KindPostback       EventKind = "postback"
	KindRead           EventKind = "read"
	KindAccountLink    EventKind = "account_link"
	KindUnknown        EventKind = "unknown"
)

// Envelope is the body of a webhook delivery.
type Envelope struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry groups the messaging events delivered for one page.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// Participant is a page scoped user or page id.
type Participant struct {
	ID string `json:"id"`
}

// MessagingEvent is a single inbound event. Exactly one of the payload fields is expected to be set.
type MessagingEvent struct {
	Sender    Participant `json:"sender"`
	Recipient Participant `json:"recipient"`
	Timestamp int64       `json:"timestamp"`

	Optin          *Optin          `json:"optin,omitempty"`
	Message        *InboundMessage `json:"message,omitempty"`
	Delivery       *Delivery       `json:"delivery,omitempty"`
	Postback       *Postback       `json:"postback,omitempty"`
	Read           *Read           `json:"read,omitempty"`
	AccountLinking *AccountLinking `json:"account_linking,omitempty"`
}

// Kind classifies the event by the first payload field that is present.
func (e *MessagingEvent) Kind() EventKind {
	switch {
	case e.Optin != nil:
		return KindAuthentication
	case e.Message != nil:
		return KindMessage
	case e.Delivery != nil:
		return KindDelivery
	case e.Postback != nil:
		return KindPostback
	case e.Read != nil:
		return KindRead
	case e.AccountLinking != nil:
		return KindAccountLink
	default:
		return KindUnknown
	}
}

// Optin is sent when a user authenticates through the send-to-messenger plugin.
type Optin struct {
	Ref string `json:"ref"`
}

// InboundMessage is a message sent to, or echoed from, the page.
type InboundMessage struct {
	MID         string              `json:"mid"`
	Seq         int64               `json:"seq,omitempty"`
	Text        string              `json:"text,omitempty"`
	Attachments []InboundAttachment `json:"attachments,omitempty"`
	QuickReply  *QuickReplyPayload  `json:"quick_reply,omitempty"`
	IsEcho      bool                `json:"is_echo,omitempty"`
	AppID       int64               `json:"app_id,omitempty"`
	Metadata    string              `json:"metadata,omitempty"`
}

// InboundAttachment is kept opaque apart from its type.
type InboundAttachment struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// QuickReplyPayload carries the developer defined payload of a tapped quick reply.
type QuickReplyPayload struct {
	Payload string `json:"payload"`
}

// Delivery confirms that messages sent by the page were delivered.
type Delivery struct {
	MIDs      []string `json:"mids,omitempty"`
	Watermark int64    `json:"watermark"`
	Seq       int64    `json:"seq"`
}

// Postback is sent when a user taps a postback button.
type Postback struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}

// Read reports that all messages before the watermark were read.
type Read struct {
	Watermark int64 `json:"watermark"`
	Seq       int64 `json:"seq"`
}

// AccountLinking is sent when a user links or unlinks their account.
type AccountLinking struct {
	Status            string `json:"status"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

package messenger

// DeveloperMetadata is attached to every text message the page sends so echoes can be recognised.
const DeveloperMetadata = "DEVELOPER_DEFINED_METADATA"

// SenderAction is a typing or seen indicator.
type SenderAction string

const (
	TypingOn  SenderAction = "typing_on"
	TypingOff SenderAction = "typing_off"
	MarkSeen  SenderAction = "mark_seen"
)

// AttachmentType is the type of an outbound attachment.
type AttachmentType string

const (
	AttachmentTemplate AttachmentType = "template"
	AttachmentImage    AttachmentType = "image"
	AttachmentAudio    AttachmentType = "audio"
	AttachmentVideo    AttachmentType = "video"
	AttachmentFile     AttachmentType = "file"
)

// TemplateType is the template_type of a template attachment.
type TemplateType string

const (
	TemplateButton  TemplateType = "button"
	TemplateGeneric TemplateType = "generic"
	TemplateReceipt TemplateType = "receipt"
)

// ButtonType is the type of a template button.
type ButtonType string

const (
	ButtonWebURL      ButtonType = "web_url"
	ButtonPostback    ButtonType = "postback"
	ButtonPhoneNumber ButtonType = "phone_number"
	ButtonAccountLink ButtonType = "account_link"
)

// SendRequest is the body posted to the send API.
type SendRequest struct {
	Recipient    Participant      `json:"recipient"`
	Message      *OutboundMessage `json:"message,omitempty"`
	SenderAction SenderAction     `json:"sender_action,omitempty"`
}

// OutboundMessage is either text (optionally with quick replies) or an attachment.
type OutboundMessage struct {
	Text         string              `json:"text,omitempty"`
	Metadata     string              `json:"metadata,omitempty"`
	Attachment   *OutboundAttachment `json:"attachment,omitempty"`
	QuickReplies []QuickReply        `json:"quick_replies,omitempty"`
}

// OutboundAttachment is a media file or a structured template.
type OutboundAttachment struct {
	Type    AttachmentType    `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload holds the fields of every supported attachment shape.
// Media attachments only use URL; templates use TemplateType and the fields of that template.
type AttachmentPayload struct {
	URL          string       `json:"url,omitempty"`
	TemplateType TemplateType `json:"template_type,omitempty"`

	// button template
	Text    string   `json:"text,omitempty"`
	Buttons []Button `json:"buttons,omitempty"`

	// generic and receipt templates
	Elements []Element `json:"elements,omitempty"`

	// receipt template
	RecipientName string       `json:"recipient_name,omitempty"`
	OrderNumber   string       `json:"order_number,omitempty"`
	Currency      string       `json:"currency,omitempty"`
	PaymentMethod string       `json:"payment_method,omitempty"`
	Timestamp     int64        `json:"timestamp,omitempty"`
	OrderURL      string       `json:"order_url,omitempty"`
	Address       *Address     `json:"address,omitempty"`
	Summary       *Summary     `json:"summary,omitempty"`
	Adjustments   []Adjustment `json:"adjustments,omitempty"`
}

// Button is a call to action on a template.
type Button struct {
	Type    ButtonType `json:"type"`
	Title   string     `json:"title,omitempty"`
	URL     string     `json:"url,omitempty"`
	Payload string     `json:"payload,omitempty"`
}

// Element is a generic template card or a receipt line item.
type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ItemURL  string   `json:"item_url,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`

	Quantity int     `json:"quantity,omitempty"`
	Price    *Amount `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// QuickReply is a reply chip shown above the composer.
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title,omitempty"`
	Payload     string `json:"payload,omitempty"`
}

// Address is the shipping address of a receipt.
type Address struct {
	Street1    string `json:"street_1"`
	Street2    string `json:"street_2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

// Summary is the cost summary of a receipt. Shipping and tax are omitted when not charged.
type Summary struct {
	Subtotal     Amount  `json:"subtotal"`
	ShippingCost *Amount `json:"shipping_cost,omitempty"`
	TotalTax     *Amount `json:"total_tax,omitempty"`
	TotalCost    Amount  `json:"total_cost"`
}

// Adjustment is a discount applied to a receipt.
type Adjustment struct {
	Name   string `json:"name"`
	Amount Amount `json:"amount"`
}

// DeliveryStatus is the outcome of a send.
type DeliveryStatus string

const (
	StatusDelivered DeliveryStatus = "delivered"
	StatusFailed    DeliveryStatus = "failed"
)

// SendResult describes how the send API answered a single request.
type SendResult struct {
	Status      DeliveryStatus `json:"status"`
	RecipientID string         `json:"recipientId,omitempty"`
	MessageID   string         `json:"messageId,omitempty"`
	StatusCode  int            `json:"statusCode,omitempty"`
	ErrorDetail string         `json:"errorDetail,omitempty"`
}

// Delivered reports whether the platform accepted the message.
func (r *SendResult) Delivered() bool {
	return r != nil && r.Status == StatusDelivered
}

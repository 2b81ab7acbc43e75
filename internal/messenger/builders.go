package messenger

import (
	"fmt"
	"math/rand/v2"
)

const (
	// MaxButtons is the number of buttons a button template or a generic card may carry.
	MaxButtons = 3
	// MaxElements is the number of cards a generic template may carry.
	MaxElements = 10

	ErrTooManyButtons  = constError("too many buttons")
	ErrTooManyElements = constError("too many elements")
	ErrNoElements      = constError("template needs at least one element")
)

type constError string

func (e constError) Error() string {
	return string(e)
}

// NewTextMessage builds a plain text message tagged with DeveloperMetadata.
func NewTextMessage(recipientID, text string) SendRequest {
	return SendRequest{
		Recipient: Participant{ID: recipientID},
		Message: &OutboundMessage{
			Text:     text,
			Metadata: DeveloperMetadata,
		},
	}
}

// NewQuickReplies builds a text message offering a fixed set of text quick replies.
func NewQuickReplies(recipientID, text string, replies ...QuickReply) SendRequest {
	req := NewTextMessage(recipientID, text)
	req.Message.Metadata = ""
	for _, r := range replies {
		if r.ContentType == "" {
			r.ContentType = "text"
		}
		req.Message.QuickReplies = append(req.Message.QuickReplies, r)
	}
	return req
}

// NewAttachmentMessage builds an image, audio, video or file message pointing at url.
func NewAttachmentMessage(recipientID string, attachmentType AttachmentType, url string) SendRequest {
	return SendRequest{
		Recipient: Participant{ID: recipientID},
		Message: &OutboundMessage{
			Attachment: &OutboundAttachment{
				Type:    attachmentType,
				Payload: AttachmentPayload{URL: url},
			},
		},
	}
}

// NewButtonTemplate builds a button template with up to MaxButtons buttons.
func NewButtonTemplate(recipientID, text string, buttons ...Button) (SendRequest, error) {
	if len(buttons) > MaxButtons {
		return SendRequest{}, fmt.Errorf("%w: button template has %d, limit is %d", ErrTooManyButtons, len(buttons), MaxButtons)
	}
	return newTemplate(recipientID, AttachmentPayload{
		TemplateType: TemplateButton,
		Text:         text,
		Buttons:      buttons,
	}), nil
}

// NewGenericTemplate builds a carousel of cards in the given order.
func NewGenericTemplate(recipientID string, elements ...Element) (SendRequest, error) {
	if len(elements) == 0 {
		return SendRequest{}, ErrNoElements
	}
	if len(elements) > MaxElements {
		return SendRequest{}, fmt.Errorf("%w: generic template has %d, limit is %d", ErrTooManyElements, len(elements), MaxElements)
	}
	for i := range elements {
		if len(elements[i].Buttons) > MaxButtons {
			return SendRequest{}, fmt.Errorf("%w: element %q has %d, limit is %d", ErrTooManyButtons, elements[i].Title, len(elements[i].Buttons), MaxButtons)
		}
	}
	return newTemplate(recipientID, AttachmentPayload{
		TemplateType: TemplateGeneric,
		Elements:     elements,
	}), nil
}

// NewSenderAction builds a typing indicator or read marker.
func NewSenderAction(recipientID string, action SenderAction) SendRequest {
	return SendRequest{
		Recipient:    Participant{ID: recipientID},
		SenderAction: action,
	}
}

func newTemplate(recipientID string, payload AttachmentPayload) SendRequest {
	return SendRequest{
		Recipient: Participant{ID: recipientID},
		Message: &OutboundMessage{
			Attachment: &OutboundAttachment{
				Type:    AttachmentTemplate,
				Payload: payload,
			},
		},
	}
}

// WebURLButton opens url in the in-app browser.
func WebURLButton(title, url string) Button {
	return Button{Type: ButtonWebURL, Title: title, URL: url}
}

// PostbackButton sends payload back to the webhook when tapped.
func PostbackButton(title, payload string) Button {
	return Button{Type: ButtonPostback, Title: title, Payload: payload}
}

// PhoneNumberButton dials phoneNumber, given in +E.164 form.
func PhoneNumberButton(title, phoneNumber string) Button {
	return Button{Type: ButtonPhoneNumber, Title: title, Payload: phoneNumber}
}

// AccountLinkButton points at the account linking page; the platform supplies its own title.
func AccountLinkButton(url string) Button {
	return Button{Type: ButtonAccountLink, URL: url}
}

// RandomSource is satisfied by *rand.Rand from math/rand/v2.
type RandomSource interface {
	IntN(n int) int
}

// ReferenceCode returns "<prefix>-<n>" with n in [0, 1000). Codes are cosmetic and may collide.
// A nil src uses the global generator.
func ReferenceCode(prefix string, src RandomSource) string {
	var n int
	if src == nil {
		n = rand.IntN(1000) //nolint:gosec // not security sensitive
	} else {
		n = src.IntN(1000)
	}
	return fmt.Sprintf("%s-%d", prefix, n)
}

package messenger

import (
	"encoding/json"
	"math/rand/v2"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextMessage(t *testing.T) {
	t.Parallel()

	req := NewTextMessage("U1", "你好")
	assert.Equal(t, "U1", req.Recipient.ID)
	require.NotNil(t, req.Message)
	assert.Equal(t, "你好", req.Message.Text)
	assert.Equal(t, DeveloperMetadata, req.Message.Metadata)
	assert.Nil(t, req.Message.Attachment)

	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipient":{"id":"U1"},"message":{"text":"你好","metadata":"DEVELOPER_DEFINED_METADATA"}}`, string(body))
}

func TestNewButtonTemplate(t *testing.T) {
	t.Parallel()

	t.Run("three typed buttons", func(t *testing.T) {
		req, err := NewButtonTemplate("U1", "pick one",
			WebURLButton("Open", "https://example.com"),
			PostbackButton("Tap", "PAYLOAD"),
			PhoneNumberButton("Call", "+16505551234"),
		)
		require.NoError(t, err)

		body, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"recipient": {"id": "U1"},
			"message": {"attachment": {"type": "template", "payload": {
				"template_type": "button",
				"text": "pick one",
				"buttons": [
					{"type": "web_url", "title": "Open", "url": "https://example.com"},
					{"type": "postback", "title": "Tap", "payload": "PAYLOAD"},
					{"type": "phone_number", "title": "Call", "payload": "+16505551234"}
				]
			}}}
		}`, string(body))
	})

	t.Run("more than three buttons", func(t *testing.T) {
		_, err := NewButtonTemplate("U1", "too many",
			PostbackButton("1", "1"), PostbackButton("2", "2"), PostbackButton("3", "3"), PostbackButton("4", "4"))
		require.ErrorIs(t, err, ErrTooManyButtons)
	})
}

func TestNewGenericTemplate(t *testing.T) {
	t.Parallel()

	t.Run("cards keep their order", func(t *testing.T) {
		req, err := NewGenericTemplate("U1",
			Element{Title: "first", Buttons: []Button{PostbackButton("Buy", "A")}},
			Element{Title: "second", ImageURL: "https://example.com/b.jpg"},
		)
		require.NoError(t, err)
		payload := req.Message.Attachment.Payload
		assert.Equal(t, TemplateGeneric, payload.TemplateType)
		require.Len(t, payload.Elements, 2)
		assert.Equal(t, "first", payload.Elements[0].Title)
		assert.Equal(t, "second", payload.Elements[1].Title)
	})

	t.Run("no cards", func(t *testing.T) {
		_, err := NewGenericTemplate("U1")
		require.ErrorIs(t, err, ErrNoElements)
	})

	t.Run("too many cards", func(t *testing.T) {
		elements := make([]Element, MaxElements+1)
		_, err := NewGenericTemplate("U1", elements...)
		require.ErrorIs(t, err, ErrTooManyElements)
	})

	t.Run("card with too many buttons", func(t *testing.T) {
		_, err := NewGenericTemplate("U1", Element{
			Title:   "card",
			Buttons: []Button{{}, {}, {}, {}},
		})
		require.ErrorIs(t, err, ErrTooManyButtons)
	})
}

func TestNewSenderAction(t *testing.T) {
	t.Parallel()

	for _, action := range []SenderAction{TypingOn, TypingOff, MarkSeen} {
		req := NewSenderAction("U1", action)
		body, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"recipient":{"id":"U1"},"sender_action":"`+string(action)+`"}`, string(body))
	}
}

func TestNewQuickReplies(t *testing.T) {
	t.Parallel()

	req := NewQuickReplies("U1", "What's your favorite movie genre?",
		QuickReply{Title: "Action", Payload: "PICK_ACTION"},
		QuickReply{Title: "Comedy", Payload: "PICK_COMEDY"},
	)
	require.Len(t, req.Message.QuickReplies, 2)
	assert.Equal(t, "text", req.Message.QuickReplies[0].ContentType)
	assert.Empty(t, req.Message.Metadata)
}

func TestNewAttachmentMessage(t *testing.T) {
	t.Parallel()

	req := NewAttachmentMessage("U1", AttachmentImage, "https://example.com/assets/rift.png")
	body, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipient":{"id":"U1"},"message":{"attachment":{"type":"image","payload":{"url":"https://example.com/assets/rift.png"}}}}`, string(body))
}

func TestReferenceCode(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^SKL-P-(\d+)$`)
	src := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		code := ReferenceCode("SKL-P", src)
		match := pattern.FindStringSubmatch(code)
		require.NotNil(t, match, code)
		n, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 1000)
	}

	assert.Regexp(t, pattern, ReferenceCode("SKL-P", nil))
}

type fixedSource int

func (f fixedSource) IntN(int) int { return int(f) }

func TestReferenceCode_CollisionsAreAllowed(t *testing.T) {
	t.Parallel()

	src := fixedSource(42)
	assert.Equal(t, ReferenceCode("SKL", src), ReferenceCode("SKL", src))
	assert.Equal(t, "SKL-42", ReferenceCode("SKL", src))
}

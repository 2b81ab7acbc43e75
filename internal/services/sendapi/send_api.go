package sendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DIMO-Network/insurance-chatbot/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// SendFailureCode is the code returned when the send API did not accept a message
	SendFailureCode = -1

	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024

	messagesPath = "/me/messages"
)

// Client posts outbound messages to the platform send API.
type Client struct {
	client      *http.Client
	endpoint    string
	accessToken string
}

type sendResponse struct {
	RecipientID string    `json:"recipient_id"`
	MessageID   string    `json:"message_id"`
	Error       *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FBTraceID    string `json:"fbtrace_id"`
}

// NewClient creates a send API client. A nil http client uses transport defaults with no timeout override.
func NewClient(client *http.Client, graphAPIURL, pageAccessToken string) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		client:      client,
		endpoint:    graphAPIURL + messagesPath,
		accessToken: pageAccessToken,
	}
}

// Send delivers one request. Anything but an accepted message yields a Failed result
// together with a richerrors.Error carrying SendFailureCode. Nothing is retried.
func (c *Client) Send(ctx context.Context, req *messenger.SendRequest) (*messenger.SendResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send request: %w", err)
	}

	target, err := url.Parse(c.endpoint)
	if err != nil {
		return failed(0, err.Error()), richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("invalid URL: %w", err),
		}
	}
	query := target.Query()
	query.Set("access_token", c.accessToken)
	target.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return failed(0, err.Error()), richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to create send request: %w", err),
		}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return failed(0, err.Error()), richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to POST to send API: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	// Read response body with a limit; the success envelope is small.
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))

	var parsed sendResponse
	_ = json.Unmarshal(respBody, &parsed)

	if resp.StatusCode == http.StatusOK && (parsed.MessageID != "" || (req.SenderAction != "" && parsed.RecipientID != "")) {
		return &messenger.SendResult{
			Status:      messenger.StatusDelivered,
			RecipientID: parsed.RecipientID,
			MessageID:   parsed.MessageID,
		}, nil
	}

	detail := string(respBody)
	if parsed.Error != nil && parsed.Error.Message != "" {
		detail = fmt.Sprintf("%s (type=%s code=%d subcode=%d fbtrace_id=%s)",
			parsed.Error.Message, parsed.Error.Type, parsed.Error.Code, parsed.Error.ErrorSubcode, parsed.Error.FBTraceID)
	}
	return failed(resp.StatusCode, detail), richerrors.Error{
		Code: SendFailureCode,
		Err:  fmt.Errorf("send API returned status code %d: %s", resp.StatusCode, detail),
	}
}

func failed(statusCode int, detail string) *messenger.SendResult {
	return &messenger.SendResult{
		Status:      messenger.StatusFailed,
		StatusCode:  statusCode,
		ErrorDetail: detail,
	}
}

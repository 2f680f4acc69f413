package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wa-bazaar-be/pkg/transport"
)

const defaultGraphURL = "https://graph.facebook.com/v19.0"

// Client sends messages through the WhatsApp Cloud API.
type Client struct {
	BaseURL       string
	PhoneNumberID string
	AccessToken   string
	HTTPClient    *http.Client
}

// Ensure Client implements the transport contracts
var (
	_ transport.Messenger    = &Client{}
	_ transport.MediaFetcher = &Client{}
)

func NewClient(phoneNumberID, accessToken string) *Client {
	return &Client{
		BaseURL:       defaultGraphURL,
		PhoneNumberID: phoneNumberID,
		AccessToken:   accessToken,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type textMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type interactiveMessage struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Interactive      interactiveBody `json:"interactive"`
}

type interactiveBody struct {
	Type   string            `json:"type"`
	Body   textBody          `json:"body"`
	Action interactiveAction `json:"action"`
}

type interactiveAction struct {
	Buttons []interactiveButton `json:"buttons"`
}

type interactiveButton struct {
	Type  string      `json:"type"`
	Reply buttonReply `json:"reply"`
}

type buttonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

type mediaInfo struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

// --- Interface Implementation ---

func (c *Client) SendText(ctx context.Context, to, text string) error {
	payload := textMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: text},
	}
	return c.postMessage(ctx, payload)
}

// SendButtons sends an interactive reply-button message. The Cloud API
// caps reply buttons at three and titles at 20 chars; longer prompts
// degrade to a numbered text message.
func (c *Client) SendButtons(ctx context.Context, to, text string, buttons []transport.Button) error {
	if len(buttons) == 0 || len(buttons) > 3 {
		return c.SendText(ctx, to, transport.RenderButtonsAsText(text, buttons))
	}

	apiButtons := make([]interactiveButton, len(buttons))
	for i, b := range buttons {
		title := b.Title
		if len(title) > 20 {
			title = title[:20]
		}
		apiButtons[i] = interactiveButton{
			Type:  "reply",
			Reply: buttonReply{ID: b.ID, Title: title},
		}
	}

	payload := interactiveMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "interactive",
		Interactive: interactiveBody{
			Type:   "button",
			Body:   textBody{Body: text},
			Action: interactiveAction{Buttons: apiButtons},
		},
	}
	return c.postMessage(ctx, payload)
}

// FetchMedia resolves a media id to its download URL and pulls the bytes.
func (c *Client) FetchMedia(ctx context.Context, mediaID string) ([]byte, string, error) {
	infoURL := fmt.Sprintf("%s/%s", c.BaseURL, mediaID)
	infoBytes, err := c.get(ctx, infoURL)
	if err != nil {
		return nil, "", fmt.Errorf("resolve media %s: %w", mediaID, err)
	}

	var info mediaInfo
	if err := json.Unmarshal(infoBytes, &info); err != nil {
		return nil, "", fmt.Errorf("unmarshal media info: %w", err)
	}
	if info.URL == "" {
		return nil, "", fmt.Errorf("media %s has no download url", mediaID)
	}

	data, err := c.get(ctx, info.URL)
	if err != nil {
		return nil, "", fmt.Errorf("download media %s: %w", mediaID, err)
	}
	return data, info.MimeType, nil
}

func (c *Client) postMessage(ctx context.Context, payload interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("whatsapp error: %s (code %d)", apiErr.Error.Message, apiErr.Error.Code)
		}
		return fmt.Errorf("whatsapp error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}
	return bodyBytes, nil
}

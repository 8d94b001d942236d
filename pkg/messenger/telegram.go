// Package messenger holds the channel transport adapters: thin outbound
// clients for the Telegram Bot API and the Twilio WhatsApp API, plus a
// dispatcher that routes a send to the right one.
package messenger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramClient is a minimal Telegram Bot API client, sendMessage only
type TelegramClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// TelegramConfig holds Telegram client settings
type TelegramConfig struct {
	Token    string
	Endpoint string // override for tests, default https://api.telegram.org
	Timeout  time.Duration
}

// NewTelegramClient creates a Telegram Bot API client
func NewTelegramClient(cfg TelegramConfig) *TelegramClient {
	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &TelegramClient{
		token:      cfg.Token,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendMessage delivers text to a chat, with an optional inline url button
func (c *TelegramClient) SendMessage(ctx context.Context, chatID, text string, button *buttonSpec) error {
	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if button != nil {
		body["reply_markup"] = map[string]any{
			"inline_keyboard": [][]map[string]string{
				{{"text": button.text, "url": button.url}},
			},
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := c.baseURL + "/bot" + c.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram api returned %d: %s", resp.StatusCode, respBody)
	}

	var apiResp struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram api rejected message: %s", apiResp.Description)
	}

	return nil
}

// buttonSpec is the transport-level button shape shared by the adapters
type buttonSpec struct {
	text string
	url  string
}

package messenger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TwilioClient sends WhatsApp messages through the Twilio REST API
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string // "whatsapp:+E164"
	baseURL    string
	httpClient *http.Client
}

// TwilioConfig holds Twilio client settings
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	Endpoint   string // override for tests, default https://api.twilio.com
	Timeout    time.Duration
}

// NewTwilioClient creates a Twilio WhatsApp client
func NewTwilioClient(cfg TwilioConfig) *TwilioClient {
	baseURL := cfg.Endpoint
	if baseURL == "" {
		baseURL = "https://api.twilio.com"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &TwilioClient{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SendMessage delivers text to a WhatsApp number. The channel has no rich
// button primitive in this integration, so a link is appended as plain text.
func (c *TwilioClient) SendMessage(ctx context.Context, number, text string, button *buttonSpec) error {
	if button != nil {
		text = fmt.Sprintf("%s\n\n%s\n%s", text, button.text, button.url)
	}

	to := number
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}

	form := url.Values{}
	form.Set("From", c.fromNumber)
	form.Set("To", to)
	form.Set("Body", text)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("twilio api returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("twilio api returned %d", resp.StatusCode)
	}

	return nil
}

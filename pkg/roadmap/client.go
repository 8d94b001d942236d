// Package roadmap is the client for the learning-path content service.
// Outlines are fetched per request and never cached, the service is the
// source of truth.
package roadmap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/studyping/studyping/pkg/domain"
)

// Client talks to the learning-path content service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config holds client settings
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// NewClient creates a content service client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// notFoundError marks a 4xx response so the retrier stops immediately
type notFoundError struct{ err error }

func (e *notFoundError) Error() string { return e.err.Error() }
func (e *notFoundError) Unwrap() error { return e.err }

// GetRoadmapByTopic fetches the outline for one of the user's topics.
// Returns domain.ErrNotFound when the user has no roadmap for the topic.
func (c *Client) GetRoadmapByTopic(ctx context.Context, email, topic string) (*domain.Outline, error) {
	reqBody, err := json.Marshal(map[string]string{"user": email, "topic": topic})
	if err != nil {
		return nil, fmt.Errorf("marshal roadmap request: %w", err)
	}

	var outline *domain.Outline
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/learning_path/roadmap", bytes.NewReader(reqBody))
		if err != nil {
			return &notFoundError{err: fmt.Errorf("create request: %w", err)}
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("roadmap request: %w", err) // retry network failures
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return &notFoundError{err: domain.ErrNotFound}
		case resp.StatusCode >= 500:
			return fmt.Errorf("roadmap service returned %d", resp.StatusCode) // retry
		case resp.StatusCode != http.StatusOK:
			return &notFoundError{err: fmt.Errorf("roadmap service returned %d", resp.StatusCode)}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read roadmap response: %w", err)
		}

		outline, err = parseOutline(body)
		if err != nil {
			return &notFoundError{err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if outline.Topic == "" {
		outline.Topic = topic
	}
	return outline, nil
}

// GetUserRoadmaps lists the user's roadmap topics, most recent first
func (c *Client) GetUserRoadmaps(ctx context.Context, email string, limit int) ([]domain.TopicInfo, error) {
	u := fmt.Sprintf("%s/learning_path/roadmaps/%s?limit=%s",
		c.baseURL, url.PathEscape(email), strconv.Itoa(limit))

	var topics []domain.TopicInfo
	retrier := repeater.NewBackoff(3, 200*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
		if err != nil {
			return &notFoundError{err: fmt.Errorf("create request: %w", err)}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("roadmap list request: %w", err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			topics = nil // unknown user means an empty list, not an error
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("roadmap service returned %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return &notFoundError{err: fmt.Errorf("roadmap service returned %d", resp.StatusCode)}
		}

		var listResp struct {
			Roadmaps []struct {
				Topic     string    `json:"topic"`
				Timestamp time.Time `json:"timestamp"`
			} `json:"roadmaps"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
			return &notFoundError{err: fmt.Errorf("decode roadmap list: %w", err)}
		}

		topics = make([]domain.TopicInfo, len(listResp.Roadmaps))
		for i, r := range listResp.Roadmaps {
			topics[i] = domain.TopicInfo{Topic: r.Topic, Timestamp: r.Timestamp}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return topics, nil
}

// parseOutline decodes a roadmap response preserving section order. The
// service returns sections as a JSON object, so a plain map would lose the
// curriculum ordering; the token decoder keeps it.
func parseOutline(data []byte) (*domain.Outline, error) {
	var envelope struct {
		Topic   string          `json:"topic"`
		Roadmap json.RawMessage `json:"roadmap"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode roadmap envelope: %w", err)
	}
	if len(envelope.Roadmap) == 0 {
		return nil, fmt.Errorf("roadmap payload missing")
	}

	dec := json.NewDecoder(bytes.NewReader(envelope.Roadmap))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode roadmap object: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("roadmap is not an object")
	}

	outline := &domain.Outline{Topic: envelope.Topic}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode section name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected section key %v", keyTok)
		}

		var items []string
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("decode section %q: %w", name, err)
		}
		outline.Sections = append(outline.Sections, domain.Section{Name: name, Items: items})
	}

	return outline, nil
}

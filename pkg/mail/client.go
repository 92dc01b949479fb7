package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Attachment is a file sent along with a message. Content must be base64
// encoded; the API transports attachments as text.
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"content_type,omitempty"`
}

// Message is one outbound email.
type Message struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Client sends transactional email through a Resend-compatible HTTP API.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(apiKey string, opts ...func(*Client)) *Client {
	c := &Client{
		BaseURL:    "https://api.resend.com",
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) func(*Client) {
	return func(c *Client) {
		if strings.TrimSpace(baseURL) != "" {
			c.BaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// IsConfigured reports whether the client holds an API key. Sending without
// one would only burn a network round trip on a guaranteed 401.
func (c *Client) IsConfigured() bool {
	return c != nil && strings.TrimSpace(c.APIKey) != ""
}

// Send delivers one message. Any non-2xx response is an error carrying the
// status code and response body as detail.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c == nil {
		return errors.New("mail client is nil")
	}
	if !c.IsConfigured() {
		return errors.New("mail api key is not set")
	}
	if len(msg.To) == 0 {
		return errors.New("message has no recipients")
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	endpoint := c.BaseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("mail api non-2xx: %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

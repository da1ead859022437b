// Package whatsapp implements the outbound notifier over a WhatsApp
// message relay. The relay exposes a single JSON endpoint that accepts a
// phone number and message text and forwards it to the messaging provider.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

// Notifier implements ports.Notifier by POSTing messages to the relay.
type Notifier struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// message is the relay request body.
type message struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// NewNotifier instantiates the relay notifier with sane defaults.
func NewNotifier(baseURL string, authToken string, httpClient *http.Client) (*Notifier, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("relay base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Notifier{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authToken:  authToken,
		httpClient: httpClient,
	}, nil
}

// Send delivers the text to the phone number through the relay.
func (n *Notifier) Send(ctx context.Context, phone string, text string) error {
	if strings.TrimSpace(phone) == "" {
		return errors.New("recipient phone is required")
	}

	body, err := json.Marshal(message{Phone: phone, Text: text})
	if err != nil {
		return fmt.Errorf("encode relay message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+n.authToken)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call message relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("message relay error: %s", resp.Status)
	}

	return nil
}

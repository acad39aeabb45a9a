package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// WebhookNotifier
// =============================================================================

const (
	webhookTimeout = 10 * time.Second
	userAgent      = "apksweep-notify"

	// EventHeader carries the event type so receivers can route without
	// decoding the body.
	EventHeader = "X-Apksweep-Event"

	// maxErrorBody caps how much of a failed response ends up in the error.
	maxErrorBody = 512
)

// WebhookNotifier POSTs each event as JSON to a generic HTTP endpoint.
type WebhookNotifier struct {
	URL     string
	Headers map[string]string
	Client  *http.Client
}

// NewWebhookNotifier creates a webhook notifier. Headers are sent with every
// request and may override the defaults.
func NewWebhookNotifier(url string, headers map[string]string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:     url,
		Headers: headers,
		Client:  &http.Client{Timeout: webhookTimeout},
	}
}

// Notify implements Notifier.
func (n *WebhookNotifier) Notify(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(EventHeader, string(event.Type))
	for k, v := range n.Headers {
		req.Header.Set(k, v)
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s webhook: %w", event.Type, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if msg := strings.TrimSpace(string(snippet)); msg != "" {
			return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}

	return nil
}

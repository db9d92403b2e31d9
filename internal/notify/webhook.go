package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WebhookNotifier implements Notifier by POSTing alert JSON to an arbitrary
// endpoint, for wiring into claim-management systems that are not Discord.
type WebhookNotifier struct {
	url     string
	headers map[string]string
	client  *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(url string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHeaders sets extra headers sent with every request, e.g. auth tokens.
func WithHeaders(h map[string]string) WebhookOption {
	return func(w *WebhookNotifier) {
		w.headers = h
	}
}

// WithWebhookHTTPClient sets a custom HTTP client.
func WithWebhookHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// webhookEvent is the JSON envelope POSTed to the endpoint.
type webhookEvent struct {
	Event  string         `json:"event"`
	Source string         `json:"source,omitempty"`
	Alerts []AlertPayload `json:"alerts"`
}

const webhookEventName = "appraisal.undervalued"

// SendAlert posts a single alert.
func (w *WebhookNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return w.post(ctx, webhookEvent{
		Event:  webhookEventName,
		Alerts: []AlertPayload{*alert},
	})
}

// SendBatchAlert posts a batch of alerts as one event.
func (w *WebhookNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []AlertPayload,
	source string,
) error {
	return w.post(ctx, webhookEvent{
		Event:  webhookEventName,
		Source: source,
		Alerts: alerts,
	})
}

func (w *WebhookNotifier) post(ctx context.Context, event webhookEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.url,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range w.headers {
		req.Header.Set(k, v)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

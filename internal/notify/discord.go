package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const (
	colorGreen  = 0x2ECC71 // confidence 70+
	colorYellow = 0xF1C40F // confidence 40-69
	colorOrange = 0xE67E22 // confidence below 40
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAlert sends a single alert as a Discord embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	embed := buildEmbed(alert)
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{embed},
	}
	return d.post(ctx, payload)
}

// SendBatchAlert sends multiple alerts as a single Discord message.
func (d *DiscordNotifier) SendBatchAlert(
	ctx context.Context,
	alerts []AlertPayload,
	source string,
) error {
	embeds := make([]discordEmbed, 0, len(alerts))

	// Discord allows max 10 embeds per message.
	limit := min(len(alerts), 10)

	for i := range limit {
		embeds = append(embeds, buildEmbed(&alerts[i]))
	}

	if len(alerts) > 10 {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more undervalued vehicles from %s", len(alerts)-10, source),
			Color:       colorYellow,
			Description: "Check the appraisal dashboard for the full list.",
		})
	}

	payload := discordWebhookPayload{Embeds: embeds}
	return d.post(ctx, payload)
}

func buildEmbed(alert *AlertPayload) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Undervalued: %s", alert.Vehicle),
		Color: confidenceColor(alert.Confidence),
		Description: fmt.Sprintf(
			"Estimated market value exceeds the reference value by %s (%.1f%%).",
			alert.Difference, alert.DifferencePct,
		),
		Fields: []discordEmbedField{
			{Name: "Market Value", Value: alert.MarketValue, Inline: true},
			{Name: "Reference Value", Value: alert.ReferenceValue, Inline: true},
			{Name: "Difference", Value: alert.Difference, Inline: true},
			{Name: "Confidence", Value: strconv.Itoa(alert.Confidence), Inline: true},
			{Name: "Comparables", Value: strconv.Itoa(alert.ComparablesUsed), Inline: true},
			{Name: "Revision", Value: strconv.FormatInt(alert.Revision, 10), Inline: true},
		},
	}

	if alert.ClaimRef != "" {
		embed.Fields = append(embed.Fields,
			discordEmbedField{Name: "Claim", Value: alert.ClaimRef, Inline: true})
	}

	return embed
}

func confidenceColor(confidence int) int {
	switch {
	case confidence >= 70:
		return colorGreen
	case confidence >= 40:
		return colorYellow
	default:
		return colorOrange
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

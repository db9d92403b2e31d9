// Package notify defines the notification interface and implementations
// for undervalued-vehicle alert delivery.
package notify

import (
	"context"
	"errors"
)

// AlertPayload contains the data needed to send an undervalued-vehicle
// notification. Money values arrive preformatted.
type AlertPayload struct {
	AppraisalID     string  `json:"appraisal_id"`
	ClaimRef        string  `json:"claim_ref,omitempty"`
	Vehicle         string  `json:"vehicle"`
	MarketValue     string  `json:"market_value"`
	ReferenceValue  string  `json:"reference_value"`
	Difference      string  `json:"difference"`
	DifferencePct   float64 `json:"difference_pct"`
	Confidence      int     `json:"confidence"`
	ComparablesUsed int     `json:"comparables_used"`
	Revision        int64   `json:"revision"`
}

// Notifier defines the interface for sending undervalued-vehicle notifications.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload, source string) error
}

// Multi fans an alert out to several backends. Send errors are collected,
// not short-circuited, so one failing backend does not silence the others.
type Multi struct {
	notifiers []Notifier
}

// NewMulti creates a Notifier that delivers to every given backend.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

// SendAlert delivers a single alert to all backends.
func (m *Multi) SendAlert(ctx context.Context, alert *AlertPayload) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.SendAlert(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SendBatchAlert delivers a batch of alerts to all backends.
func (m *Multi) SendBatchAlert(ctx context.Context, alerts []AlertPayload, source string) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.SendBatchAlert(ctx, alerts, source); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

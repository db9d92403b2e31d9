package client

import (
	"context"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// GetSystemState returns aggregate appraisal, comparable, and analysis counts.
func (c *Client) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	var state domain.SystemState
	if err := c.get(ctx, "/api/v1/state", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// TriggerSweep runs a stale-analysis sweep and returns the number of
// appraisals recomputed.
func (c *Client) TriggerSweep(ctx context.Context) (int, error) {
	var resp struct {
		Recomputed int `json:"recomputed"`
	}
	if err := c.post(ctx, "/api/v1/sweep", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Recomputed, nil
}

// TriggerPrune removes analysis revisions past the retention window and
// returns the number removed.
func (c *Client) TriggerPrune(ctx context.Context) (int, error) {
	var resp struct {
		Pruned int `json:"pruned"`
	}
	if err := c.post(ctx, "/api/v1/prune", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Pruned, nil
}

package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// GetAnalysis returns the current analysis for an appraisal.
func (c *Client) GetAnalysis(ctx context.Context, appraisalID string) (*domain.MarketAnalysis, error) {
	var a domain.MarketAnalysis
	if err := c.get(ctx, "/api/v1/appraisals/"+appraisalID+"/analysis", &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAnalysisHistory returns past analysis revisions, newest first.
func (c *Client) GetAnalysisHistory(ctx context.Context, appraisalID string, limit int) ([]domain.MarketAnalysis, error) {
	path := "/api/v1/appraisals/" + appraisalID + "/analysis/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var history []domain.MarketAnalysis
	if err := c.get(ctx, path, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Recompute runs the valuation pipeline for an appraisal. Force recomputes
// even when the inputs are unchanged.
func (c *Client) Recompute(ctx context.Context, appraisalID string, force bool) (*domain.MarketAnalysis, error) {
	path := "/api/v1/appraisals/" + appraisalID + "/recompute"
	if force {
		path += "?force=true"
	}

	var a domain.MarketAnalysis
	if err := c.post(ctx, path, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetReport fetches a rendered appraisal report. Format is one of
// markdown, html, or pdf; the returned bytes are the document itself.
func (c *Client) GetReport(ctx context.Context, appraisalID, format string) ([]byte, error) {
	path := fmt.Sprintf("/api/v1/appraisals/%s/report?format=%s", appraisalID, format)
	return c.raw(ctx, http.MethodGet, path, nil)
}

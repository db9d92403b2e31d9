package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Sweeper defines the interface for triggering a stale-analysis sweep.
type Sweeper interface {
	SweepStale(ctx context.Context) (int, error)
}

// Pruner defines the interface for triggering a history prune.
type Pruner interface {
	PruneHistory(ctx context.Context) (int, error)
}

// SweepHandler handles manual sweep trigger requests.
type SweepHandler struct {
	sweeper Sweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(s Sweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

// SweepOutput is the response body for the sweep endpoint.
type SweepOutput struct {
	Body struct {
		Status     string `json:"status" example:"sweep completed" doc:"Sweep status"`
		Recomputed int    `json:"recomputed" doc:"Number of appraisals recomputed"`
	}
}

// Sweep recomputes every appraisal whose analysis has gone stale.
func (h *SweepHandler) Sweep(ctx context.Context, _ *struct{}) (*SweepOutput, error) {
	n, err := h.sweeper.SweepStale(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("sweep failed: " + err.Error())
	}

	resp := &SweepOutput{}
	resp.Body.Status = "sweep completed"
	resp.Body.Recomputed = n
	return resp, nil
}

// PruneHandler handles manual history prune requests.
type PruneHandler struct {
	pruner Pruner
}

// NewPruneHandler creates a new PruneHandler.
func NewPruneHandler(p Pruner) *PruneHandler {
	return &PruneHandler{pruner: p}
}

// PruneOutput is the response body for the prune endpoint.
type PruneOutput struct {
	Body struct {
		Status string `json:"status" example:"prune completed" doc:"Prune status"`
		Pruned int    `json:"pruned" doc:"Number of analysis revisions removed"`
	}
}

// Prune removes analysis revisions past the retention window.
func (h *PruneHandler) Prune(ctx context.Context, _ *struct{}) (*PruneOutput, error) {
	n, err := h.pruner.PruneHistory(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("prune failed: " + err.Error())
	}

	resp := &PruneOutput{}
	resp.Body.Status = "prune completed"
	resp.Body.Pruned = n
	return resp, nil
}

// RegisterTriggerRoutes registers maintenance trigger endpoints with the
// Huma API.
func RegisterTriggerRoutes(api huma.API, sweepH *SweepHandler, pruneH *PruneHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sweep",
		Method:      http.MethodPost,
		Path:        "/api/v1/sweep",
		Summary:     "Trigger a stale-analysis sweep",
		Description: "Recomputes every appraisal whose analysis is older than the staleness window.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, sweepH.Sweep)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-prune",
		Method:      http.MethodPost,
		Path:        "/api/v1/prune",
		Summary:     "Trigger an analysis history prune",
		Description: "Removes analysis revisions older than the retention window, keeping the newest per appraisal.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusInternalServerError},
	}, pruneH.Prune)
}

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuelab/vehicle-appraisal/internal/engine"
	"github.com/valuelab/vehicle-appraisal/internal/store"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// Recomputer defines the engine interface for analysis recomputation.
type Recomputer interface {
	Recompute(ctx context.Context, id string, force bool) (*domain.MarketAnalysis, error)
}

// RecomputeHandler handles manual recompute requests.
type RecomputeHandler struct {
	eng Recomputer
}

// NewRecomputeHandler creates a new RecomputeHandler.
func NewRecomputeHandler(eng Recomputer) *RecomputeHandler {
	return &RecomputeHandler{eng: eng}
}

// RecomputeInput is the input for a manual recompute.
type RecomputeInput struct {
	ID    string `path:"id"     doc:"Appraisal UUID"`
	Force bool   `query:"force" doc:"Recompute even when inputs are unchanged"`
}

// RecomputeOutput is the response for a manual recompute.
type RecomputeOutput struct {
	Body domain.MarketAnalysis
}

// Recompute runs the valuation pipeline for one appraisal. Unchanged
// inputs return the current analysis unless force is set.
func (h *RecomputeHandler) Recompute(
	ctx context.Context,
	input *RecomputeInput,
) (*RecomputeOutput, error) {
	analysis, err := h.eng.Recompute(ctx, input.ID, input.Force)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrRateLimited):
			return nil, huma.Error429TooManyRequests("recompute rate limit exceeded for appraisal " + input.ID)
		case errors.Is(err, store.ErrNotFound):
			return nil, huma.Error404NotFound("appraisal not found")
		default:
			return nil, huma.Error500InternalServerError("recompute failed: " + err.Error())
		}
	}

	return &RecomputeOutput{Body: *analysis}, nil
}

// refreshAnalysis recomputes after a mutation on a best-effort basis. The
// mutation already succeeded, so failures only log; a skipped refresh is
// picked up by the stale sweep.
func refreshAnalysis(ctx context.Context, eng Recomputer, log *slog.Logger, appraisalID string) {
	if eng == nil {
		return
	}
	if _, err := eng.Recompute(ctx, appraisalID, false); err != nil {
		log.Warn("post-mutation analysis refresh failed",
			"appraisal_id", appraisalID,
			"error", err,
		)
	}
}

// RegisterRecomputeRoutes registers the recompute endpoint with the Huma API.
func RegisterRecomputeRoutes(api huma.API, h *RecomputeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "recompute-appraisal",
		Method:      http.MethodPost,
		Path:        "/api/v1/appraisals/{id}/recompute",
		Summary:     "Recompute the market analysis",
		Description: "Runs the valuation pipeline for an appraisal. Unchanged inputs " +
			"return the current analysis unless force=true.",
		Tags:   []string{"analysis"},
		Errors: []int{http.StatusNotFound, http.StatusTooManyRequests},
	}, h.Recompute)
}

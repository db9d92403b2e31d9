package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuelab/vehicle-appraisal/internal/store"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// AnalysisProvider defines the store methods required by the analysis
// handler.
type AnalysisProvider interface {
	GetCurrentAnalysis(ctx context.Context, appraisalID string) (*domain.MarketAnalysis, error)
	ListAnalysisHistory(ctx context.Context, appraisalID string, limit int) ([]domain.MarketAnalysis, error)
}

// AnalysisHandler handles market analysis query endpoints.
type AnalysisHandler struct {
	store AnalysisProvider
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(s AnalysisProvider) *AnalysisHandler {
	return &AnalysisHandler{store: s}
}

// --- Input/Output types ---

// GetAnalysisInput is the input for getting the current analysis.
type GetAnalysisInput struct {
	ID string `path:"id" doc:"Appraisal UUID"`
}

// GetAnalysisOutput is the response for getting the current analysis.
type GetAnalysisOutput struct {
	Body domain.MarketAnalysis
}

// GetAnalysisHistoryInput is the input for listing analysis revisions.
type GetAnalysisHistoryInput struct {
	ID    string `path:"id"     doc:"Appraisal UUID"`
	Limit int    `query:"limit" doc:"Number of revisions (default 20)" minimum:"1" maximum:"200"`
}

// GetAnalysisHistoryOutput is the response for listing analysis revisions.
type GetAnalysisHistoryOutput struct {
	Body []domain.MarketAnalysis
}

const defaultHistoryLimit = 20

// --- Handlers ---

// GetAnalysis returns the current (highest revision) analysis for an
// appraisal.
func (h *AnalysisHandler) GetAnalysis(
	ctx context.Context,
	input *GetAnalysisInput,
) (*GetAnalysisOutput, error) {
	analysis, err := h.store.GetCurrentAnalysis(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("no analysis computed for this appraisal")
		}
		return nil, huma.Error500InternalServerError("loading analysis failed: " + err.Error())
	}

	return &GetAnalysisOutput{Body: *analysis}, nil
}

// GetAnalysisHistory returns past analysis revisions, newest first.
func (h *AnalysisHandler) GetAnalysisHistory(
	ctx context.Context,
	input *GetAnalysisHistoryInput,
) (*GetAnalysisHistoryOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	history, err := h.store.ListAnalysisHistory(ctx, input.ID, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing analysis history failed: " + err.Error())
	}

	if history == nil {
		history = []domain.MarketAnalysis{}
	}

	return &GetAnalysisHistoryOutput{Body: history}, nil
}

// RegisterAnalysisRoutes registers analysis endpoints with the Huma API.
func RegisterAnalysisRoutes(api huma.API, h *AnalysisHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-analysis",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals/{id}/analysis",
		Summary:     "Get the current analysis",
		Description: "Returns the current market analysis for an appraisal.",
		Tags:        []string{"analysis"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "get-analysis-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals/{id}/analysis/history",
		Summary:     "List analysis history",
		Description: "Returns past analysis revisions for an appraisal, newest first.",
		Tags:        []string{"analysis"},
	}, h.GetAnalysisHistory)
}

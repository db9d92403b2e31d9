package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/valuelab/vehicle-appraisal/internal/store"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// AppraisalsHandler handles appraisal CRUD endpoints.
type AppraisalsHandler struct {
	store store.Store
	eng   Recomputer
	log   *slog.Logger
}

// NewAppraisalsHandler creates a new AppraisalsHandler.
func NewAppraisalsHandler(s store.Store, eng Recomputer, log *slog.Logger) *AppraisalsHandler {
	return &AppraisalsHandler{store: s, eng: eng, log: log}
}

// --- Input/Output types ---

// ListAppraisalsInput is the input for listing appraisals with optional filters.
type ListAppraisalsInput struct {
	ClaimRef    string `query:"claim_ref"   doc:"Filter by exact claim reference"`
	VIN         string `query:"vin"         doc:"Filter by exact VIN"`
	Make        string `query:"make"        doc:"Filter by vehicle make"`
	Model       string `query:"model"       doc:"Filter by vehicle model"`
	YearMin     int    `query:"year_min"    doc:"Minimum model year"                minimum:"0"`
	YearMax     int    `query:"year_max"    doc:"Maximum model year"                minimum:"0"`
	Condition   string `query:"condition"   doc:"Filter by condition rating"        enum:"excellent,good,fair,poor,"`
	Undervalued string `query:"undervalued" doc:"Filter by latest analysis verdict" enum:"true,false,"`
	Limit       int    `query:"limit"       doc:"Number of results (default 50)"    minimum:"1" maximum:"500"`
	Offset      int    `query:"offset"      doc:"Pagination offset"                 minimum:"0"`
	OrderBy     string `query:"order_by"    doc:"Sort field"                        enum:"created_at,year,mileage,"`
}

// ListAppraisalsOutput is the response for listing appraisals.
type ListAppraisalsOutput struct {
	Body struct {
		Appraisals []domain.Appraisal `json:"appraisals"`
		Total      int                `json:"total"`
		Limit      int                `json:"limit"`
		Offset     int                `json:"offset"`
	}
}

// GetAppraisalInput is the input for getting a single appraisal.
type GetAppraisalInput struct {
	ID string `path:"id" doc:"Appraisal UUID"`
}

// GetAppraisalOutput is the response for getting a single appraisal.
type GetAppraisalOutput struct {
	Body domain.Appraisal
}

// CreateAppraisalInput is the request body for creating an appraisal.
type CreateAppraisalInput struct {
	Body struct {
		ClaimRef       string   `json:"claim_ref,omitempty"       doc:"External claim reference" maxLength:"64"`
		VIN            string   `json:"vin,omitempty"             doc:"Vehicle identification number" maxLength:"17"`
		Year           int      `json:"year"                      doc:"Model year" minimum:"1900" maximum:"2100"`
		Make           string   `json:"make"                      doc:"Vehicle make" minLength:"1"`
		Model          string   `json:"model"                     doc:"Vehicle model" minLength:"1"`
		Mileage        int      `json:"mileage"                   doc:"Odometer miles" minimum:"0"`
		Condition      string   `json:"condition"                 doc:"Condition rating" enum:"excellent,good,fair,poor"`
		Equipment      []string `json:"equipment,omitempty"       doc:"Installed equipment features"`
		ReferenceValue *float64 `json:"reference_value,omitempty" doc:"Insurer reference value in dollars" minimum:"0"`
		Notes          string   `json:"notes,omitempty"           doc:"Free-form intake notes"`
	}
}

// CreateAppraisalOutput is the response for creating an appraisal.
type CreateAppraisalOutput struct {
	Body domain.Appraisal
}

// UpdateAppraisalInput is the request body for partially updating an
// appraisal. Absent fields are left unchanged.
type UpdateAppraisalInput struct {
	ID   string `path:"id" doc:"Appraisal UUID"`
	Body struct {
		ClaimRef       *string   `json:"claim_ref,omitempty"       doc:"External claim reference" maxLength:"64"`
		VIN            *string   `json:"vin,omitempty"             doc:"Vehicle identification number" maxLength:"17"`
		Year           *int      `json:"year,omitempty"            doc:"Model year" minimum:"1900" maximum:"2100"`
		Make           *string   `json:"make,omitempty"            doc:"Vehicle make" minLength:"1"`
		Model          *string   `json:"model,omitempty"           doc:"Vehicle model" minLength:"1"`
		Mileage        *int      `json:"mileage,omitempty"         doc:"Odometer miles" minimum:"0"`
		Condition      *string   `json:"condition,omitempty"       doc:"Condition rating" enum:"excellent,good,fair,poor"`
		Equipment      *[]string `json:"equipment,omitempty"       doc:"Installed equipment features (replaces the set)"`
		ReferenceValue *float64  `json:"reference_value,omitempty" doc:"Insurer reference value in dollars" minimum:"0"`
		ClearReference bool      `json:"clear_reference_value,omitempty" doc:"Remove the reference value"`
		Notes          *string   `json:"notes,omitempty"           doc:"Free-form intake notes"`
	}
}

// UpdateAppraisalOutput is the response for updating an appraisal.
type UpdateAppraisalOutput struct {
	Body domain.Appraisal
}

// DeleteAppraisalInput is the input for deleting an appraisal.
type DeleteAppraisalInput struct {
	ID string `path:"id" doc:"Appraisal UUID"`
}

// --- Handlers ---

// ListAppraisals returns appraisals with optional vehicle and verdict
// filters and pagination.
func (h *AppraisalsHandler) ListAppraisals(
	ctx context.Context,
	input *ListAppraisalsInput,
) (*ListAppraisalsOutput, error) {
	q := &store.AppraisalQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.ClaimRef != "" {
		q.ClaimRef = &input.ClaimRef
	}

	if input.VIN != "" {
		q.VIN = &input.VIN
	}

	if input.Make != "" {
		q.Make = &input.Make
	}

	if input.Model != "" {
		q.Model = &input.Model
	}

	if input.YearMin != 0 {
		q.YearMin = &input.YearMin
	}

	if input.YearMax != 0 {
		q.YearMax = &input.YearMax
	}

	if input.Condition != "" {
		q.Conditions = []string{input.Condition}
	}

	if input.Undervalued != "" {
		undervalued := input.Undervalued == "true"
		q.Undervalued = &undervalued
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	appraisals, total, err := h.store.ListAppraisals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("appraisal query failed: " + err.Error())
	}

	if appraisals == nil {
		appraisals = []domain.Appraisal{}
	}

	resp := &ListAppraisalsOutput{}
	resp.Body.Appraisals = appraisals
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetAppraisal returns a single appraisal by ID.
func (h *AppraisalsHandler) GetAppraisal(
	ctx context.Context,
	input *GetAppraisalInput,
) (*GetAppraisalOutput, error) {
	appr, err := h.store.GetAppraisal(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("appraisal not found")
		}
		return nil, huma.Error500InternalServerError("loading appraisal failed: " + err.Error())
	}

	return &GetAppraisalOutput{Body: *appr}, nil
}

// CreateAppraisal creates a new appraisal. No analysis exists until
// comparables are added or a recompute is requested.
func (h *AppraisalsHandler) CreateAppraisal(
	ctx context.Context,
	input *CreateAppraisalInput,
) (*CreateAppraisalOutput, error) {
	appr := &domain.Appraisal{
		ClaimRef:       input.Body.ClaimRef,
		VIN:            input.Body.VIN,
		Year:           input.Body.Year,
		Make:           input.Body.Make,
		Model:          input.Body.Model,
		Mileage:        input.Body.Mileage,
		Condition:      domain.Condition(input.Body.Condition),
		Equipment:      input.Body.Equipment,
		ReferenceValue: input.Body.ReferenceValue,
		Notes:          input.Body.Notes,
	}

	if err := h.store.CreateAppraisal(ctx, appr); err != nil {
		return nil, huma.Error500InternalServerError("creating appraisal failed: " + err.Error())
	}

	return &CreateAppraisalOutput{Body: *appr}, nil
}

// UpdateAppraisal applies a partial update and refreshes the analysis,
// since subject-vehicle fields feed the valuation.
func (h *AppraisalsHandler) UpdateAppraisal(
	ctx context.Context,
	input *UpdateAppraisalInput,
) (*UpdateAppraisalOutput, error) {
	appr, err := h.store.GetAppraisal(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("appraisal not found")
		}
		return nil, huma.Error500InternalServerError("loading appraisal failed: " + err.Error())
	}

	applyAppraisalPatch(appr, input)

	if err := h.store.UpdateAppraisal(ctx, appr); err != nil {
		return nil, huma.Error500InternalServerError("updating appraisal failed: " + err.Error())
	}

	refreshAnalysis(ctx, h.eng, h.log, appr.ID)

	return &UpdateAppraisalOutput{Body: *appr}, nil
}

// DeleteAppraisal deletes an appraisal and its comparables and analyses.
func (h *AppraisalsHandler) DeleteAppraisal(
	ctx context.Context,
	input *DeleteAppraisalInput,
) (*struct{}, error) {
	if err := h.store.DeleteAppraisal(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("appraisal not found")
		}
		return nil, huma.Error500InternalServerError("deleting appraisal failed: " + err.Error())
	}

	return nil, nil
}

func applyAppraisalPatch(appr *domain.Appraisal, input *UpdateAppraisalInput) {
	if input.Body.ClaimRef != nil {
		appr.ClaimRef = *input.Body.ClaimRef
	}
	if input.Body.VIN != nil {
		appr.VIN = *input.Body.VIN
	}
	if input.Body.Year != nil {
		appr.Year = *input.Body.Year
	}
	if input.Body.Make != nil {
		appr.Make = *input.Body.Make
	}
	if input.Body.Model != nil {
		appr.Model = *input.Body.Model
	}
	if input.Body.Mileage != nil {
		appr.Mileage = *input.Body.Mileage
	}
	if input.Body.Condition != nil {
		appr.Condition = domain.Condition(*input.Body.Condition)
	}
	if input.Body.Equipment != nil {
		appr.Equipment = *input.Body.Equipment
	}
	if input.Body.ReferenceValue != nil {
		appr.ReferenceValue = input.Body.ReferenceValue
	}
	if input.Body.ClearReference {
		appr.ReferenceValue = nil
	}
	if input.Body.Notes != nil {
		appr.Notes = *input.Body.Notes
	}
}

// RegisterAppraisalRoutes registers appraisal endpoints with the Huma API.
func RegisterAppraisalRoutes(api huma.API, h *AppraisalsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-appraisals",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals",
		Summary:     "List appraisals",
		Description: "Returns appraisals with optional filters for claim, vehicle, condition, verdict, and pagination.",
		Tags:        []string{"appraisals"},
	}, h.ListAppraisals)

	huma.Register(api, huma.Operation{
		OperationID: "get-appraisal",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals/{id}",
		Summary:     "Get an appraisal by ID",
		Description: "Returns a single appraisal by its UUID.",
		Tags:        []string{"appraisals"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAppraisal)

	huma.Register(api, huma.Operation{
		OperationID:   "create-appraisal",
		Method:        http.MethodPost,
		Path:          "/api/v1/appraisals",
		Summary:       "Create an appraisal",
		Description:   "Creates a new appraisal for a subject vehicle.",
		Tags:          []string{"appraisals"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateAppraisal)

	huma.Register(api, huma.Operation{
		OperationID: "update-appraisal",
		Method:      http.MethodPatch,
		Path:        "/api/v1/appraisals/{id}",
		Summary:     "Update an appraisal",
		Description: "Applies a partial update and refreshes the market analysis.",
		Tags:        []string{"appraisals"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateAppraisal)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-appraisal",
		Method:        http.MethodDelete,
		Path:          "/api/v1/appraisals/{id}",
		Summary:       "Delete an appraisal",
		Description:   "Deletes an appraisal together with its comparables and analysis history.",
		Tags:          []string{"appraisals"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteAppraisal)
}

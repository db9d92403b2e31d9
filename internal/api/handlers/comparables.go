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

// ComparablesHandler handles comparable listing endpoints. Every mutation
// refreshes the owning appraisal's analysis.
type ComparablesHandler struct {
	store store.Store
	eng   Recomputer
	log   *slog.Logger
}

// NewComparablesHandler creates a new ComparablesHandler.
func NewComparablesHandler(s store.Store, eng Recomputer, log *slog.Logger) *ComparablesHandler {
	return &ComparablesHandler{store: s, eng: eng, log: log}
}

// --- Input/Output types ---

// ListComparablesInput is the input for listing an appraisal's comparables.
type ListComparablesInput struct {
	ID string `path:"id" doc:"Appraisal UUID"`
}

// ListComparablesOutput is the response for listing comparables.
type ListComparablesOutput struct {
	Body []domain.Comparable
}

// CreateComparableInput is the request body for adding a comparable.
type CreateComparableInput struct {
	ID   string `path:"id" doc:"Appraisal UUID"`
	Body struct {
		Source        string   `json:"source,omitempty"    doc:"Listing origin (dealer listing, auction, private sale)"`
		Year          int      `json:"year"                doc:"Model year" minimum:"1900" maximum:"2100"`
		Make          string   `json:"make"                doc:"Vehicle make" minLength:"1"`
		Model         string   `json:"model"               doc:"Vehicle model" minLength:"1"`
		Mileage       int      `json:"mileage"             doc:"Odometer miles" minimum:"0"`
		DistanceMiles float64  `json:"distance_miles"      doc:"Distance from the subject's market in miles" minimum:"0"`
		Condition     string   `json:"condition"           doc:"Condition rating" enum:"excellent,good,fair,poor"`
		Equipment     []string `json:"equipment,omitempty" doc:"Installed equipment features"`
		ListPrice     float64  `json:"list_price"          doc:"Asking price in dollars" minimum:"0"`
	}
}

// CreateComparableOutput is the response for adding a comparable.
type CreateComparableOutput struct {
	Body domain.Comparable
}

// UpdateComparableInput is the request body for partially updating a
// comparable. Absent fields are left unchanged.
type UpdateComparableInput struct {
	ID   string `path:"id" doc:"Comparable UUID"`
	Body struct {
		Source        *string   `json:"source,omitempty"         doc:"Listing origin"`
		Year          *int      `json:"year,omitempty"           doc:"Model year" minimum:"1900" maximum:"2100"`
		Make          *string   `json:"make,omitempty"           doc:"Vehicle make" minLength:"1"`
		Model         *string   `json:"model,omitempty"          doc:"Vehicle model" minLength:"1"`
		Mileage       *int      `json:"mileage,omitempty"        doc:"Odometer miles" minimum:"0"`
		DistanceMiles *float64  `json:"distance_miles,omitempty" doc:"Distance from the subject's market in miles" minimum:"0"`
		Condition     *string   `json:"condition,omitempty"      doc:"Condition rating" enum:"excellent,good,fair,poor"`
		Equipment     *[]string `json:"equipment,omitempty"      doc:"Installed equipment features (replaces the set)"`
		ListPrice     *float64  `json:"list_price,omitempty"     doc:"Asking price in dollars" minimum:"0"`
	}
}

// UpdateComparableOutput is the response for updating a comparable.
type UpdateComparableOutput struct {
	Body domain.Comparable
}

// DeleteComparableInput is the input for deleting a comparable.
type DeleteComparableInput struct {
	ID string `path:"id" doc:"Comparable UUID"`
}

// --- Handlers ---

// ListComparables returns all comparables for an appraisal, including
// their latest engine results.
func (h *ComparablesHandler) ListComparables(
	ctx context.Context,
	input *ListComparablesInput,
) (*ListComparablesOutput, error) {
	comps, err := h.store.ListComparables(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing comparables failed: " + err.Error())
	}

	if comps == nil {
		comps = []domain.Comparable{}
	}

	return &ListComparablesOutput{Body: comps}, nil
}

// CreateComparable adds a comparable listing to an appraisal and refreshes
// its analysis.
func (h *ComparablesHandler) CreateComparable(
	ctx context.Context,
	input *CreateComparableInput,
) (*CreateComparableOutput, error) {
	// Reject unknown appraisals up front; the FK error would be opaque.
	if _, err := h.store.GetAppraisal(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("appraisal not found")
		}
		return nil, huma.Error500InternalServerError("loading appraisal failed: " + err.Error())
	}

	comp := &domain.Comparable{
		AppraisalID:   input.ID,
		Source:        input.Body.Source,
		Year:          input.Body.Year,
		Make:          input.Body.Make,
		Model:         input.Body.Model,
		Mileage:       input.Body.Mileage,
		DistanceMiles: input.Body.DistanceMiles,
		Condition:     domain.Condition(input.Body.Condition),
		Equipment:     input.Body.Equipment,
		ListPrice:     input.Body.ListPrice,
	}

	if err := h.store.CreateComparable(ctx, comp); err != nil {
		return nil, huma.Error500InternalServerError("creating comparable failed: " + err.Error())
	}

	refreshAnalysis(ctx, h.eng, h.log, input.ID)

	return &CreateComparableOutput{Body: *comp}, nil
}

// UpdateComparable applies a partial update to a comparable and refreshes
// the owning appraisal's analysis.
func (h *ComparablesHandler) UpdateComparable(
	ctx context.Context,
	input *UpdateComparableInput,
) (*UpdateComparableOutput, error) {
	comp, err := h.store.GetComparable(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("comparable not found")
		}
		return nil, huma.Error500InternalServerError("loading comparable failed: " + err.Error())
	}

	applyComparablePatch(comp, input)

	if err := h.store.UpdateComparable(ctx, comp); err != nil {
		return nil, huma.Error500InternalServerError("updating comparable failed: " + err.Error())
	}

	refreshAnalysis(ctx, h.eng, h.log, comp.AppraisalID)

	return &UpdateComparableOutput{Body: *comp}, nil
}

// DeleteComparable removes a comparable and refreshes the owning
// appraisal's analysis.
func (h *ComparablesHandler) DeleteComparable(
	ctx context.Context,
	input *DeleteComparableInput,
) (*struct{}, error) {
	comp, err := h.store.GetComparable(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("comparable not found")
		}
		return nil, huma.Error500InternalServerError("loading comparable failed: " + err.Error())
	}

	if err := h.store.DeleteComparable(ctx, input.ID); err != nil {
		return nil, huma.Error500InternalServerError("deleting comparable failed: " + err.Error())
	}

	refreshAnalysis(ctx, h.eng, h.log, comp.AppraisalID)

	return nil, nil
}

func applyComparablePatch(comp *domain.Comparable, input *UpdateComparableInput) {
	if input.Body.Source != nil {
		comp.Source = *input.Body.Source
	}
	if input.Body.Year != nil {
		comp.Year = *input.Body.Year
	}
	if input.Body.Make != nil {
		comp.Make = *input.Body.Make
	}
	if input.Body.Model != nil {
		comp.Model = *input.Body.Model
	}
	if input.Body.Mileage != nil {
		comp.Mileage = *input.Body.Mileage
	}
	if input.Body.DistanceMiles != nil {
		comp.DistanceMiles = *input.Body.DistanceMiles
	}
	if input.Body.Condition != nil {
		comp.Condition = domain.Condition(*input.Body.Condition)
	}
	if input.Body.Equipment != nil {
		comp.Equipment = *input.Body.Equipment
	}
	if input.Body.ListPrice != nil {
		comp.ListPrice = *input.Body.ListPrice
	}
}

// RegisterComparableRoutes registers comparable endpoints with the Huma API.
func RegisterComparableRoutes(api huma.API, h *ComparablesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-comparables",
		Method:      http.MethodGet,
		Path:        "/api/v1/appraisals/{id}/comparables",
		Summary:     "List comparables",
		Description: "Returns all comparable listings for an appraisal with their latest engine results.",
		Tags:        []string{"comparables"},
	}, h.ListComparables)

	huma.Register(api, huma.Operation{
		OperationID:   "create-comparable",
		Method:        http.MethodPost,
		Path:          "/api/v1/appraisals/{id}/comparables",
		Summary:       "Add a comparable",
		Description:   "Adds a comparable listing to an appraisal and refreshes its analysis.",
		Tags:          []string{"comparables"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound},
	}, h.CreateComparable)

	huma.Register(api, huma.Operation{
		OperationID: "update-comparable",
		Method:      http.MethodPatch,
		Path:        "/api/v1/comparables/{id}",
		Summary:     "Update a comparable",
		Description: "Applies a partial update to a comparable and refreshes the owning appraisal's analysis.",
		Tags:        []string{"comparables"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateComparable)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-comparable",
		Method:        http.MethodDelete,
		Path:          "/api/v1/comparables/{id}",
		Summary:       "Delete a comparable",
		Description:   "Removes a comparable listing and refreshes the owning appraisal's analysis.",
		Tags:          []string{"comparables"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteComparable)
}

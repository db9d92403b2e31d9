package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// appraisalRequest contains only the fields the API accepts on create.
type appraisalRequest struct {
	ClaimRef       string   `json:"claim_ref,omitempty"`
	VIN            string   `json:"vin,omitempty"`
	Year           int      `json:"year"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Mileage        int      `json:"mileage"`
	Condition      string   `json:"condition"`
	Equipment      []string `json:"equipment,omitempty"`
	ReferenceValue *float64 `json:"reference_value,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// AppraisalPatch holds a sparse update for an appraisal. Nil fields are
// left unchanged.
type AppraisalPatch struct {
	ClaimRef       *string   `json:"claim_ref,omitempty"`
	VIN            *string   `json:"vin,omitempty"`
	Year           *int      `json:"year,omitempty"`
	Make           *string   `json:"make,omitempty"`
	Model          *string   `json:"model,omitempty"`
	Mileage        *int      `json:"mileage,omitempty"`
	Condition      *string   `json:"condition,omitempty"`
	Equipment      *[]string `json:"equipment,omitempty"`
	ReferenceValue *float64  `json:"reference_value,omitempty"`
	ClearReference bool      `json:"clear_reference_value,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
}

// AppraisalsResponse wraps a paginated appraisals response.
type AppraisalsResponse struct {
	Appraisals []domain.Appraisal `json:"appraisals"`
	Total      int                `json:"total"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// ListAppraisalsParams defines query parameters for appraisal queries.
type ListAppraisalsParams struct {
	ClaimRef    string
	VIN         string
	Make        string
	Model       string
	YearMin     int
	YearMax     int
	Condition   string
	Undervalued string
	Limit       int
	Offset      int
	OrderBy     string
}

// ListAppraisals returns appraisals matching the given parameters.
func (c *Client) ListAppraisals(
	ctx context.Context,
	params *ListAppraisalsParams,
) (*AppraisalsResponse, error) {
	q := url.Values{}
	if params.ClaimRef != "" {
		q.Set("claim_ref", params.ClaimRef)
	}
	if params.VIN != "" {
		q.Set("vin", params.VIN)
	}
	if params.Make != "" {
		q.Set("make", params.Make)
	}
	if params.Model != "" {
		q.Set("model", params.Model)
	}
	if params.YearMin > 0 {
		q.Set("year_min", strconv.Itoa(params.YearMin))
	}
	if params.YearMax > 0 {
		q.Set("year_max", strconv.Itoa(params.YearMax))
	}
	if params.Condition != "" {
		q.Set("condition", params.Condition)
	}
	if params.Undervalued != "" {
		q.Set("undervalued", params.Undervalued)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/appraisals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp AppraisalsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAppraisal returns a single appraisal by ID.
func (c *Client) GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error) {
	var a domain.Appraisal
	if err := c.get(ctx, "/api/v1/appraisals/"+id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAppraisal creates a new appraisal.
func (c *Client) CreateAppraisal(ctx context.Context, a *domain.Appraisal) (*domain.Appraisal, error) {
	req := appraisalRequest{
		ClaimRef:       a.ClaimRef,
		VIN:            a.VIN,
		Year:           a.Year,
		Make:           a.Make,
		Model:          a.Model,
		Mileage:        a.Mileage,
		Condition:      string(a.Condition),
		Equipment:      a.Equipment,
		ReferenceValue: a.ReferenceValue,
		Notes:          a.Notes,
	}

	var created domain.Appraisal
	if err := c.post(ctx, "/api/v1/appraisals", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAppraisal applies a sparse patch to an appraisal.
func (c *Client) UpdateAppraisal(ctx context.Context, id string, p *AppraisalPatch) (*domain.Appraisal, error) {
	var updated domain.Appraisal
	if err := c.patch(ctx, "/api/v1/appraisals/"+id, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAppraisal deletes an appraisal by ID.
func (c *Client) DeleteAppraisal(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/appraisals/"+id, nil)
}

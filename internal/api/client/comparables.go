package client

import (
	"context"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// comparableRequest contains only the fields the API accepts on create.
type comparableRequest struct {
	Source        string   `json:"source,omitempty"`
	Year          int      `json:"year"`
	Make          string   `json:"make"`
	Model         string   `json:"model"`
	Mileage       int      `json:"mileage"`
	DistanceMiles float64  `json:"distance_miles"`
	Condition     string   `json:"condition"`
	Equipment     []string `json:"equipment,omitempty"`
	ListPrice     float64  `json:"list_price"`
}

// ComparablePatch holds a sparse update for a comparable. Nil fields are
// left unchanged.
type ComparablePatch struct {
	Source        *string   `json:"source,omitempty"`
	Year          *int      `json:"year,omitempty"`
	Make          *string   `json:"make,omitempty"`
	Model         *string   `json:"model,omitempty"`
	Mileage       *int      `json:"mileage,omitempty"`
	DistanceMiles *float64  `json:"distance_miles,omitempty"`
	Condition     *string   `json:"condition,omitempty"`
	Equipment     *[]string `json:"equipment,omitempty"`
	ListPrice     *float64  `json:"list_price,omitempty"`
}

// ListComparables returns all comparables attached to an appraisal.
func (c *Client) ListComparables(ctx context.Context, appraisalID string) ([]domain.Comparable, error) {
	var comps []domain.Comparable
	if err := c.get(ctx, "/api/v1/appraisals/"+appraisalID+"/comparables", &comps); err != nil {
		return nil, err
	}
	return comps, nil
}

// AddComparable attaches a comparable listing to an appraisal.
func (c *Client) AddComparable(ctx context.Context, appraisalID string, comp *domain.Comparable) (*domain.Comparable, error) {
	req := comparableRequest{
		Source:        comp.Source,
		Year:          comp.Year,
		Make:          comp.Make,
		Model:         comp.Model,
		Mileage:       comp.Mileage,
		DistanceMiles: comp.DistanceMiles,
		Condition:     string(comp.Condition),
		Equipment:     comp.Equipment,
		ListPrice:     comp.ListPrice,
	}

	var created domain.Comparable
	if err := c.post(ctx, "/api/v1/appraisals/"+appraisalID+"/comparables", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComparable applies a sparse patch to a comparable.
func (c *Client) UpdateComparable(ctx context.Context, id string, p *ComparablePatch) (*domain.Comparable, error) {
	var updated domain.Comparable
	if err := c.patch(ctx, "/api/v1/comparables/"+id, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteComparable removes a comparable by ID.
func (c *Client) DeleteComparable(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/comparables/"+id, nil)
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListAppraisals(context.Background(), &ListAppraisalsParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetAppraisal(context.Background(), "appr-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListAppraisals(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appraisals", r.URL.Path)
		assert.Equal(t, "Honda", r.URL.Query().Get("make"))
		assert.Equal(t, "2018", r.URL.Query().Get("year_min"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AppraisalsResponse{
			Appraisals: []domain.Appraisal{{ID: "appr-1", Make: "Honda"}},
			Total:      1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListAppraisals(context.Background(), &ListAppraisalsParams{
		Make:    "Honda",
		YearMin: 2018,
		Limit:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Appraisals, 1)
}

func TestClient_CreateAppraisal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var a domain.Appraisal
		err := json.NewDecoder(r.Body).Decode(&a)
		assert.NoError(t, err)
		a.ID = "appr-created"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(a)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateAppraisal(context.Background(), &domain.Appraisal{
		Year:      2020,
		Make:      "Honda",
		Model:     "Accord",
		Mileage:   45000,
		Condition: domain.ConditionGood,
	})
	require.NoError(t, err)
	assert.Equal(t, "appr-created", result.ID)
}

func TestClient_UpdateAppraisal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/appraisals/appr-1", r.URL.Path)

		var body map[string]any
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		// Only the patched field should be present.
		assert.Equal(t, float64(50000), body["mileage"])
		assert.NotContains(t, body, "make")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Appraisal{ID: "appr-1", Mileage: 50000})
	}))
	defer srv.Close()

	mileage := 50000
	c := New(srv.URL)
	result, err := c.UpdateAppraisal(context.Background(), "appr-1", &AppraisalPatch{Mileage: &mileage})
	require.NoError(t, err)
	assert.Equal(t, 50000, result.Mileage)
}

func TestClient_DeleteAppraisal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/appraisals/appr-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteAppraisal(context.Background(), "appr-1")
	require.NoError(t, err)
}

func TestClient_AddComparable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appraisals/appr-1/comparables", r.URL.Path)

		var comp domain.Comparable
		err := json.NewDecoder(r.Body).Decode(&comp)
		assert.NoError(t, err)
		comp.ID = "comp-created"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(comp)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.AddComparable(context.Background(), "appr-1", &domain.Comparable{
		Year:      2020,
		Make:      "Honda",
		Model:     "Accord",
		Mileage:   42000,
		Condition: domain.ConditionGood,
		ListPrice: 26000,
	})
	require.NoError(t, err)
	assert.Equal(t, "comp-created", result.ID)
}

func TestClient_Recompute(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/appraisals/appr-1/recompute", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("force"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.MarketAnalysis{ID: "an-1", Revision: 4})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.Recompute(context.Background(), "appr-1", true)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Revision)
}

func TestClient_GetAnalysisHistory(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appraisals/appr-1/analysis/history", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.MarketAnalysis{{Revision: 2}, {Revision: 1}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	history, err := c.GetAnalysisHistory(context.Background(), "appr-1", 5)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestClient_GetReport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appraisals/appr-1/report", r.URL.Path)
		assert.Equal(t, "markdown", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = w.Write([]byte("# Vehicle Appraisal Report\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	body, err := c.GetReport(context.Background(), "appr-1", "markdown")
	require.NoError(t, err)
	assert.Contains(t, string(body), "# Vehicle Appraisal Report")
}

func TestClient_TriggerSweep(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/sweep", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "sweep completed", "recomputed": 3})
	}))
	defer srv.Close()

	c := New(srv.URL)
	n, err := c.TriggerSweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}

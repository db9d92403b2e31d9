package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuelab/vehicle-appraisal/internal/api/handlers"
)

// mockSweeper is a test double for the Sweeper interface.
type mockSweeper struct {
	recomputed int
	err        error
}

func (m *mockSweeper) SweepStale(_ context.Context) (int, error) {
	return m.recomputed, m.err
}

// mockPruner is a test double for the Pruner interface.
type mockPruner struct {
	pruned int
	err    error
}

func (m *mockPruner) PruneHistory(_ context.Context) (int, error) {
	return m.pruned, m.err
}

func TestTriggerSweep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sweeper    *mockSweeper
		wantStatus int
		wantBody   string
	}{
		{
			name:       "sweep completes",
			sweeper:    &mockSweeper{recomputed: 3},
			wantStatus: http.StatusOK,
			wantBody:   `"recomputed":3`,
		},
		{
			name:       "sweep failure returns 500",
			sweeper:    &mockSweeper{err: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "sweep failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sweepH := handlers.NewSweepHandler(tt.sweeper)
			pruneH := handlers.NewPruneHandler(&mockPruner{})

			_, api := humatest.New(t)
			handlers.RegisterTriggerRoutes(api, sweepH, pruneH)

			resp := api.Post("/api/v1/sweep")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, resp.Body.String(), "sweep completed")
			}
		})
	}
}

func TestTriggerPrune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pruner     *mockPruner
		wantStatus int
		wantBody   string
	}{
		{
			name:       "prune completes",
			pruner:     &mockPruner{pruned: 12},
			wantStatus: http.StatusOK,
			wantBody:   `"pruned":12`,
		},
		{
			name:       "prune failure returns 500",
			pruner:     &mockPruner{err: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "prune failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sweepH := handlers.NewSweepHandler(&mockSweeper{})
			pruneH := handlers.NewPruneHandler(tt.pruner)

			_, api := humatest.New(t)
			handlers.RegisterTriggerRoutes(api, sweepH, pruneH)

			resp := api.Post("/api/v1/prune")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, resp.Body.String(), "prune completed")
			}
		})
	}
}

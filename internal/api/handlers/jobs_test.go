package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuelab/vehicle-appraisal/internal/api/handlers"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// mockJobsProvider is a test double for the JobsProvider interface.
type mockJobsProvider struct {
	latestRuns []domain.JobRun
	history    []domain.JobRun
	err        error

	historyJob   string
	historyLimit int
}

func (m *mockJobsProvider) ListLatestJobRuns(_ context.Context) ([]domain.JobRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.latestRuns, nil
}

func (m *mockJobsProvider) ListJobRuns(_ context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	m.historyJob = jobName
	m.historyLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.history, nil
}

func sampleJobRun(jobName, status string) domain.JobRun {
	started := time.Date(2024, 6, 1, 3, 0, 0, 0, time.UTC)
	completed := started.Add(90 * time.Second)
	rows := 7
	return domain.JobRun{
		ID:           "run-" + jobName,
		JobName:      jobName,
		StartedAt:    started,
		CompletedAt:  &completed,
		Status:       status,
		RowsAffected: &rows,
	}
}

func TestListJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		provider   *mockJobsProvider
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns latest run per job",
			provider: &mockJobsProvider{
				latestRuns: []domain.JobRun{
					sampleJobRun("stale_sweep", "completed"),
					sampleJobRun("history_prune", "completed"),
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"job_name":"stale_sweep"`,
		},
		{
			name:       "no runs yet renders as empty array",
			provider:   &mockJobsProvider{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "store error returns 500",
			provider:   &mockJobsProvider{err: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing jobs failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewJobsHandler(tt.provider)

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, h)

			resp := api.Get("/api/v1/jobs")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestGetJobHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		provider   *mockJobsProvider
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns history for the job",
			provider: &mockJobsProvider{
				history: []domain.JobRun{
					sampleJobRun("stale_sweep", "completed"),
					sampleJobRun("stale_sweep", "failed"),
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"failed"`,
		},
		{
			name:       "store error returns 500",
			provider:   &mockJobsProvider{err: assert.AnError},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching job history failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := handlers.NewJobsHandler(tt.provider)

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, h)

			resp := api.Get("/api/v1/jobs/stale_sweep")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)

			assert.Equal(t, "stale_sweep", tt.provider.historyJob)
			assert.Equal(t, 20, tt.provider.historyLimit)
		})
	}
}

// Package store defines the datastore abstraction for the vehicle appraisal
// service. All business logic depends on the Store interface, never on
// concrete implementations. This enables mock-based testing without a running
// database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

// Sentinel errors returned by Store implementations.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStaleRevision is returned by SaveAnalysis when the target revision
	// was already written by a concurrent compute.
	ErrStaleRevision = errors.New("stale analysis revision")
)

// AppraisalQuery defines optional filters for appraisal queries.
type AppraisalQuery struct {
	ClaimRef    *string
	VIN         *string
	Make        *string
	Model       *string
	YearMin     *int
	YearMax     *int
	Conditions  []string
	Undervalued *bool // filters on the latest analysis
	Limit       int   // default 50
	Offset      int
	OrderBy     string // "created_at", "year", "mileage"
}

// Store defines all data access operations for the vehicle appraisal service.
type Store interface {
	// Appraisals
	CreateAppraisal(ctx context.Context, a *domain.Appraisal) error
	GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error)
	GetAppraisalByClaimRef(ctx context.Context, claimRef string) (*domain.Appraisal, error)
	ListAppraisals(ctx context.Context, opts *AppraisalQuery) ([]domain.Appraisal, int, error)
	UpdateAppraisal(ctx context.Context, a *domain.Appraisal) error
	DeleteAppraisal(ctx context.Context, id string) error

	// Comparables
	CreateComparable(ctx context.Context, c *domain.Comparable) error
	GetComparable(ctx context.Context, id string) (*domain.Comparable, error)
	ListComparables(ctx context.Context, appraisalID string) ([]domain.Comparable, error)
	UpdateComparable(ctx context.Context, c *domain.Comparable) error
	DeleteComparable(ctx context.Context, id string) error
	// UpdateComparableResults writes the engine-result columns for each
	// comparable; listing columns are left untouched.
	UpdateComparableResults(ctx context.Context, comps []domain.Comparable) error

	// Analyses
	//
	// SaveAnalysis inserts the analysis under the revision set by the
	// caller. If that revision already exists the write is rejected with
	// ErrStaleRevision; callers re-read the current revision and retry.
	SaveAnalysis(ctx context.Context, m *domain.MarketAnalysis) error
	GetCurrentAnalysis(ctx context.Context, appraisalID string) (*domain.MarketAnalysis, error)
	ListAnalysisHistory(ctx context.Context, appraisalID string, limit int) ([]domain.MarketAnalysis, error)
	PruneAnalysisHistory(ctx context.Context, before time.Time, keepLatest int) (int, error)

	// Scheduler
	ListStaleAppraisals(ctx context.Context, olderThan time.Time, limit int) ([]domain.Appraisal, error)
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)
	AcquireSchedulerLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseSchedulerLock(ctx context.Context, jobName string, holder string) error

	// State
	GetSystemState(ctx context.Context) (*domain.SystemState, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
	Close()
}

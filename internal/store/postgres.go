package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// A poolSize <= 0 falls back to the default.
func NewPostgresStore(ctx context.Context, connString string, poolSize int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	cfg.MaxConns = int32(poolSize)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// MigrationStatus reports each embedded migration and when it was applied.
func (s *PostgresStore) MigrationStatus(ctx context.Context) ([]MigrationRecord, error) {
	return Status(ctx, s.pool)
}

// CreateAppraisal inserts a new appraisal and fills its ID and timestamps.
func (s *PostgresStore) CreateAppraisal(ctx context.Context, a *domain.Appraisal) error {
	args := pgx.NamedArgs{
		"claim_ref":       a.ClaimRef,
		"vin":             a.VIN,
		"year":            a.Year,
		"make":            a.Make,
		"model":           a.Model,
		"mileage":         a.Mileage,
		"condition":       string(a.Condition),
		"equipment":       a.Equipment,
		"reference_value": a.ReferenceValue,
		"notes":           a.Notes,
	}

	err := s.pool.QueryRow(ctx, queryCreateAppraisal, args).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating appraisal: %w", err)
	}
	return nil
}

// GetAppraisal retrieves an appraisal by its ID.
func (s *PostgresStore) GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error) {
	a := &domain.Appraisal{}
	err := scanAppraisal(s.pool.QueryRow(ctx, queryGetAppraisal, id), a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("appraisal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting appraisal: %w", err)
	}
	return a, nil
}

// GetAppraisalByClaimRef retrieves an appraisal by its claim reference.
func (s *PostgresStore) GetAppraisalByClaimRef(
	ctx context.Context,
	claimRef string,
) (*domain.Appraisal, error) {
	a := &domain.Appraisal{}
	err := scanAppraisal(s.pool.QueryRow(ctx, queryGetAppraisalByClaimRef, claimRef), a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("claim %s: %w", claimRef, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting appraisal by claim ref: %w", err)
	}
	return a, nil
}

// ListAppraisals queries appraisals with optional filters, returning results
// and total count.
func (s *PostgresStore) ListAppraisals(
	ctx context.Context,
	opts *AppraisalQuery,
) ([]domain.Appraisal, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	// Get total count.
	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting appraisals: %w", err)
	}

	// Get data rows.
	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying appraisals: %w", err)
	}
	defer rows.Close()

	var appraisals []domain.Appraisal
	for rows.Next() {
		var a domain.Appraisal
		if err := scanAppraisal(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("scanning appraisal: %w", err)
		}
		appraisals = append(appraisals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating appraisals: %w", err)
	}

	return appraisals, total, nil
}

// UpdateAppraisal updates an existing appraisal.
func (s *PostgresStore) UpdateAppraisal(ctx context.Context, a *domain.Appraisal) error {
	args := pgx.NamedArgs{
		"id":              a.ID,
		"claim_ref":       a.ClaimRef,
		"vin":             a.VIN,
		"year":            a.Year,
		"make":            a.Make,
		"model":           a.Model,
		"mileage":         a.Mileage,
		"condition":       string(a.Condition),
		"equipment":       a.Equipment,
		"reference_value": a.ReferenceValue,
		"notes":           a.Notes,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateAppraisal, args)
	if err != nil {
		return fmt.Errorf("updating appraisal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appraisal %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

// DeleteAppraisal removes an appraisal; comparables and analyses cascade.
func (s *PostgresStore) DeleteAppraisal(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteAppraisal, id)
	if err != nil {
		return fmt.Errorf("deleting appraisal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("appraisal %s: %w", id, ErrNotFound)
	}
	return nil
}

// CreateComparable inserts a new comparable and fills its ID and timestamps.
func (s *PostgresStore) CreateComparable(ctx context.Context, c *domain.Comparable) error {
	args := pgx.NamedArgs{
		"appraisal_id":   c.AppraisalID,
		"source":         c.Source,
		"year":           c.Year,
		"make":           c.Make,
		"model":          c.Model,
		"mileage":        c.Mileage,
		"distance_miles": c.DistanceMiles,
		"condition":      string(c.Condition),
		"equipment":      c.Equipment,
		"list_price":     c.ListPrice,
	}

	err := s.pool.QueryRow(ctx, queryCreateComparable, args).Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating comparable: %w", err)
	}
	return nil
}

// GetComparable retrieves a comparable by its ID.
func (s *PostgresStore) GetComparable(ctx context.Context, id string) (*domain.Comparable, error) {
	c := &domain.Comparable{}
	err := scanComparable(s.pool.QueryRow(ctx, queryGetComparable, id), c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("comparable %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting comparable: %w", err)
	}
	return c, nil
}

// ListComparables returns all comparables for an appraisal, oldest first.
func (s *PostgresStore) ListComparables(
	ctx context.Context,
	appraisalID string,
) ([]domain.Comparable, error) {
	rows, err := s.pool.Query(ctx, queryListComparables, appraisalID)
	if err != nil {
		return nil, fmt.Errorf("querying comparables: %w", err)
	}
	defer rows.Close()

	var comps []domain.Comparable
	for rows.Next() {
		var c domain.Comparable
		if err := scanComparable(rows, &c); err != nil {
			return nil, fmt.Errorf("scanning comparable: %w", err)
		}
		comps = append(comps, c)
	}

	return comps, rows.Err()
}

// UpdateComparable updates the listing columns of an existing comparable.
func (s *PostgresStore) UpdateComparable(ctx context.Context, c *domain.Comparable) error {
	args := pgx.NamedArgs{
		"id":             c.ID,
		"source":         c.Source,
		"year":           c.Year,
		"make":           c.Make,
		"model":          c.Model,
		"mileage":        c.Mileage,
		"distance_miles": c.DistanceMiles,
		"condition":      string(c.Condition),
		"equipment":      c.Equipment,
		"list_price":     c.ListPrice,
	}

	tag, err := s.pool.Exec(ctx, queryUpdateComparable, args)
	if err != nil {
		return fmt.Errorf("updating comparable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comparable %s: %w", c.ID, ErrNotFound)
	}
	return nil
}

// DeleteComparable removes a comparable by its ID.
func (s *PostgresStore) DeleteComparable(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteComparable, id)
	if err != nil {
		return fmt.Errorf("deleting comparable: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("comparable %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateComparableResults writes the engine-result columns for each
// comparable. Rows deleted mid-compute are skipped silently.
func (s *PostgresStore) UpdateComparableResults(
	ctx context.Context,
	comps []domain.Comparable,
) error {
	for i := range comps {
		c := &comps[i]
		_, err := s.pool.Exec(ctx, queryUpdateComparableResult,
			c.ID, c.QualityScore, c.QualityBreakdown,
			c.AdjustedPrice, c.Adjustments, c.Excluded, c.ExclusionReason,
		)
		if err != nil {
			return fmt.Errorf("updating comparable result %s: %w", c.ID, err)
		}
	}
	return nil
}

// SaveAnalysis inserts the analysis under the caller-assigned revision and
// fills its ID and computed_at. A concurrent write to the same revision
// yields ErrStaleRevision.
func (s *PostgresStore) SaveAnalysis(ctx context.Context, m *domain.MarketAnalysis) error {
	args := pgx.NamedArgs{
		"appraisal_id":         m.AppraisalID,
		"revision":             m.Revision,
		"input_fingerprint":    m.InputFingerprint,
		"market_value":         m.MarketValue,
		"comparables_total":    m.ComparablesTotal,
		"comparables_used":     m.ComparablesUsed,
		"comparables_skipped":  m.ComparablesSkipped,
		"reference_value":      m.ReferenceValue,
		"value_difference":     m.ValueDifference,
		"value_difference_pct": m.ValueDifferencePct,
		"undervalued":          m.Undervalued,
		"confidence":           m.Confidence,
		"confidence_factors":   m.ConfidenceFactors,
		"trace":                m.Trace,
	}

	err := s.pool.QueryRow(ctx, queryInsertAnalysis, args).Scan(&m.ID, &m.ComputedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("appraisal %s revision %d: %w", m.AppraisalID, m.Revision, ErrStaleRevision)
	}
	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// GetCurrentAnalysis returns the newest analysis revision for an appraisal.
func (s *PostgresStore) GetCurrentAnalysis(
	ctx context.Context,
	appraisalID string,
) (*domain.MarketAnalysis, error) {
	m := &domain.MarketAnalysis{}
	err := scanAnalysis(s.pool.QueryRow(ctx, queryGetCurrentAnalysis, appraisalID), m)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("analysis for appraisal %s: %w", appraisalID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting current analysis: %w", err)
	}
	return m, nil
}

// ListAnalysisHistory returns analysis revisions for an appraisal, newest first.
func (s *PostgresStore) ListAnalysisHistory(
	ctx context.Context,
	appraisalID string,
	limit int,
) ([]domain.MarketAnalysis, error) {
	rows, err := s.pool.Query(ctx, queryListAnalysisHistory, appraisalID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying analysis history: %w", err)
	}
	defer rows.Close()

	var analyses []domain.MarketAnalysis
	for rows.Next() {
		var m domain.MarketAnalysis
		if err := scanAnalysis(rows, &m); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		analyses = append(analyses, m)
	}

	return analyses, rows.Err()
}

// PruneAnalysisHistory deletes analysis revisions computed before the cutoff,
// always keeping the newest keepLatest revisions per appraisal. Returns the
// number of deleted rows.
func (s *PostgresStore) PruneAnalysisHistory(
	ctx context.Context,
	before time.Time,
	keepLatest int,
) (int, error) {
	var removed int
	if err := s.pool.QueryRow(ctx, queryPruneAnalysisHistory, before, keepLatest).Scan(&removed); err != nil {
		return 0, fmt.Errorf("pruning analysis history: %w", err)
	}
	return removed, nil
}

// ListStaleAppraisals returns appraisals whose newest analysis predates the
// cutoff (or that have never been analyzed), stalest first.
func (s *PostgresStore) ListStaleAppraisals(
	ctx context.Context,
	olderThan time.Time,
	limit int,
) ([]domain.Appraisal, error) {
	rows, err := s.pool.Query(ctx, queryListStaleAppraisals, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("querying stale appraisals: %w", err)
	}
	defer rows.Close()

	var appraisals []domain.Appraisal
	for rows.Next() {
		var a domain.Appraisal
		if err := scanAppraisal(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning stale appraisal: %w", err)
		}
		appraisals = append(appraisals, a)
	}

	return appraisals, rows.Err()
}

// InsertJobRun records the start of a scheduled job and returns the run ID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// ListLatestJobRuns returns the single most recent run for each distinct job name.
func (s *PostgresStore) ListLatestJobRuns(ctx context.Context) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListLatestJobRuns)
	if err != nil {
		return nil, fmt.Errorf("querying latest job runs: %w", err)
	}
	defer rows.Close()

	return scanJobRuns(rows)
}

// RecoverStaleJobRuns marks any 'running' job rows older than olderThan as
// 'crashed', then deletes all rows older than 30 days. Returns the number of
// rows marked as crashed.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("marking stale job runs crashed: %w", err)
	}
	affected := int(tag.RowsAffected())

	if _, err := s.pool.Exec(ctx, queryDeleteOldJobRuns); err != nil {
		return affected, fmt.Errorf("deleting old job runs: %w", err)
	}

	return affected, nil
}

// AcquireSchedulerLock attempts to acquire a distributed lock for the given
// job. Returns true if the lock was acquired, false if another holder still
// owns it.
func (s *PostgresStore) AcquireSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	expiresAt := time.Now().Add(ttl)

	var gotName string
	err := s.pool.QueryRow(ctx, queryAcquireSchedulerLock, jobName, holder, expiresAt).Scan(&gotName)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil // lock held by another; conflict not replaced
	}
	if err != nil {
		return false, fmt.Errorf("acquiring scheduler lock: %w", err)
	}

	return true, nil
}

// ReleaseSchedulerLock deletes the lock row for the given job and holder.
func (s *PostgresStore) ReleaseSchedulerLock(
	ctx context.Context,
	jobName string,
	holder string,
) error {
	_, err := s.pool.Exec(ctx, queryReleaseSchedulerLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing scheduler lock: %w", err)
	}
	return nil
}

// GetSystemState returns aggregate counters in a single round trip.
func (s *PostgresStore) GetSystemState(ctx context.Context) (*domain.SystemState, error) {
	st := &domain.SystemState{}
	err := s.pool.QueryRow(ctx, queryGetSystemState).Scan(
		&st.AppraisalsTotal, &st.AppraisalsUnanalyzed, &st.AppraisalsUndervalued,
		&st.ComparablesTotal, &st.ComparablesExcluded,
		&st.AnalysesTotal, &st.AnalysisRevisions,
	)
	if err != nil {
		return nil, fmt.Errorf("getting system state: %w", err)
	}
	return st, nil
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanAppraisal scans a full appraisal row.
func scanAppraisal(row scannable, a *domain.Appraisal) error {
	return row.Scan(
		&a.ID, &a.ClaimRef, &a.VIN, &a.Year, &a.Make, &a.Model, &a.Mileage,
		&a.Condition, &a.Equipment, &a.ReferenceValue, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
}

// scanComparable scans a full comparable row.
func scanComparable(row scannable, c *domain.Comparable) error {
	return row.Scan(
		&c.ID, &c.AppraisalID, &c.Source, &c.Year, &c.Make, &c.Model, &c.Mileage,
		&c.DistanceMiles, &c.Condition, &c.Equipment, &c.ListPrice,
		&c.QualityScore, &c.QualityBreakdown, &c.AdjustedPrice, &c.Adjustments,
		&c.Excluded, &c.ExclusionReason,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// scanAnalysis scans a full analysis row.
func scanAnalysis(row scannable, m *domain.MarketAnalysis) error {
	return row.Scan(
		&m.ID, &m.AppraisalID, &m.Revision, &m.InputFingerprint,
		&m.MarketValue, &m.ComparablesTotal, &m.ComparablesUsed, &m.ComparablesSkipped,
		&m.ReferenceValue, &m.ValueDifference, &m.ValueDifferencePct, &m.Undervalued,
		&m.Confidence, &m.ConfidenceFactors, &m.Trace, &m.ComputedAt,
	)
}

// scanJobRuns scans rows from a job_runs query into a slice.
func scanJobRuns(rows pgx.Rows) ([]domain.JobRun, error) {
	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

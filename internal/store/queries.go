package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Appraisal queries.
const (
	queryCreateAppraisal = `
		INSERT INTO appraisals (
			claim_ref, vin, year, make, model, mileage,
			condition, equipment, reference_value, notes,
			created_at, updated_at
		) VALUES (
			@claim_ref, @vin, @year, @make, @model, @mileage,
			@condition, @equipment, @reference_value, @notes,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetAppraisal = `
		SELECT id, claim_ref, vin, year, make, model, mileage,
			condition, equipment, reference_value, notes,
			created_at, updated_at
		FROM appraisals
		WHERE id = $1`

	queryGetAppraisalByClaimRef = `
		SELECT id, claim_ref, vin, year, make, model, mileage,
			condition, equipment, reference_value, notes,
			created_at, updated_at
		FROM appraisals
		WHERE claim_ref = $1 AND claim_ref != ''`

	queryUpdateAppraisal = `
		UPDATE appraisals SET
			claim_ref = @claim_ref,
			vin = @vin,
			year = @year,
			make = @make,
			model = @model,
			mileage = @mileage,
			condition = @condition,
			equipment = @equipment,
			reference_value = @reference_value,
			notes = @notes,
			updated_at = now()
		WHERE id = @id`

	queryDeleteAppraisal = `DELETE FROM appraisals WHERE id = $1`
)

// Comparable queries.
const (
	queryCreateComparable = `
		INSERT INTO comparables (
			appraisal_id, source, year, make, model, mileage,
			distance_miles, condition, equipment, list_price,
			created_at, updated_at
		) VALUES (
			@appraisal_id, @source, @year, @make, @model, @mileage,
			@distance_miles, @condition, @equipment, @list_price,
			now(), now()
		)
		RETURNING id, created_at, updated_at`

	queryGetComparable = `
		SELECT id, appraisal_id, source, year, make, model, mileage,
			distance_miles, condition, equipment, list_price,
			quality_score, quality_breakdown, adjusted_price, adjustments,
			excluded, COALESCE(exclusion_reason, ''),
			created_at, updated_at
		FROM comparables
		WHERE id = $1`

	queryListComparables = `
		SELECT id, appraisal_id, source, year, make, model, mileage,
			distance_miles, condition, equipment, list_price,
			quality_score, quality_breakdown, adjusted_price, adjustments,
			excluded, COALESCE(exclusion_reason, ''),
			created_at, updated_at
		FROM comparables
		WHERE appraisal_id = $1
		ORDER BY created_at ASC`

	queryUpdateComparable = `
		UPDATE comparables SET
			source = @source,
			year = @year,
			make = @make,
			model = @model,
			mileage = @mileage,
			distance_miles = @distance_miles,
			condition = @condition,
			equipment = @equipment,
			list_price = @list_price,
			updated_at = now()
		WHERE id = @id`

	queryDeleteComparable = `DELETE FROM comparables WHERE id = $1`

	queryUpdateComparableResult = `
		UPDATE comparables SET
			quality_score = $2,
			quality_breakdown = $3,
			adjusted_price = $4,
			adjustments = $5,
			excluded = $6,
			exclusion_reason = $7,
			updated_at = now()
		WHERE id = $1`
)

// Analysis queries.
const (
	// Concurrent recomputes can race for the same revision; the conflict
	// clause turns the loser's insert into a no-row result, surfaced as
	// ErrStaleRevision.
	queryInsertAnalysis = `
		INSERT INTO market_analyses (
			appraisal_id, revision, input_fingerprint,
			market_value, comparables_total, comparables_used, comparables_skipped,
			reference_value, value_difference, value_difference_pct, undervalued,
			confidence, confidence_factors, trace, computed_at
		) VALUES (
			@appraisal_id, @revision, @input_fingerprint,
			@market_value, @comparables_total, @comparables_used, @comparables_skipped,
			@reference_value, @value_difference, @value_difference_pct, @undervalued,
			@confidence, @confidence_factors, @trace, now()
		)
		ON CONFLICT (appraisal_id, revision) DO NOTHING
		RETURNING id, computed_at`

	queryGetCurrentAnalysis = `
		SELECT id, appraisal_id, revision, input_fingerprint,
			market_value, comparables_total, comparables_used, comparables_skipped,
			reference_value, value_difference, value_difference_pct, undervalued,
			confidence, confidence_factors, trace, computed_at
		FROM market_analyses
		WHERE appraisal_id = $1
		ORDER BY revision DESC
		LIMIT 1`

	queryListAnalysisHistory = `
		SELECT id, appraisal_id, revision, input_fingerprint,
			market_value, comparables_total, comparables_used, comparables_skipped,
			reference_value, value_difference, value_difference_pct, undervalued,
			confidence, confidence_factors, trace, computed_at
		FROM market_analyses
		WHERE appraisal_id = $1
		ORDER BY revision DESC
		LIMIT $2`

	queryPruneAnalysisHistory = `SELECT prune_analysis_history($1, $2)`
)

// Scheduler queries.
const (
	queryListStaleAppraisals = `
		SELECT a.id, a.claim_ref, a.vin, a.year, a.make, a.model, a.mileage,
			a.condition, a.equipment, a.reference_value, a.notes,
			a.created_at, a.updated_at
		FROM appraisals a
		LEFT JOIN LATERAL (
			SELECT computed_at FROM market_analyses m
			WHERE m.appraisal_id = a.id
			ORDER BY m.revision DESC
			LIMIT 1
		) latest ON true
		WHERE latest.computed_at IS NULL OR latest.computed_at < $1
		ORDER BY latest.computed_at ASC NULLS FIRST
		LIMIT $2`

	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)

// State queries.
const (
	queryGetSystemState = `
		WITH latest AS (
			SELECT DISTINCT ON (appraisal_id) appraisal_id, market_value, undervalued
			FROM market_analyses
			ORDER BY appraisal_id, revision DESC
		)
		SELECT
			(SELECT COUNT(*) FROM appraisals) AS appraisals_total,
			(SELECT COUNT(*) FROM appraisals a
				WHERE NOT EXISTS (SELECT 1 FROM latest l WHERE l.appraisal_id = a.id)) AS appraisals_unanalyzed,
			(SELECT COUNT(*) FROM latest WHERE undervalued) AS appraisals_undervalued,
			(SELECT COUNT(*) FROM comparables) AS comparables_total,
			(SELECT COUNT(*) FROM comparables WHERE excluded) AS comparables_excluded,
			(SELECT COUNT(*) FROM latest) AS analyses_total,
			(SELECT COUNT(*) FROM market_analyses) AS analysis_revisions`
)

package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreatedAt = "created_at"
	orderByYear      = "year"
	orderByMileage   = "mileage"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreatedAt: "a.created_at DESC",
	orderByYear:      "a.year DESC",
	orderByMileage:   "a.mileage ASC",
}

const defaultOrderBy = "a.created_at DESC"

const baseAppraisalsSelect = `SELECT a.id, a.claim_ref, a.vin, a.year, a.make, a.model, a.mileage,
	a.condition, a.equipment, a.reference_value, a.notes,
	a.created_at, a.updated_at
FROM appraisals a`

const countAppraisalsSelect = "SELECT COUNT(*) FROM appraisals a"

// latestAnalysisJoin exposes the newest analysis row per appraisal for
// filters that depend on engine results.
const latestAnalysisJoin = ` LEFT JOIN LATERAL (
	SELECT undervalued FROM market_analyses m
	WHERE m.appraisal_id = a.id
	ORDER BY m.revision DESC
	LIMIT 1
) latest ON true`

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for an appraisal
// query. It returns two SQL strings (one for the data query, one for the
// count query) and the positional parameters.
func (q *AppraisalQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.ClaimRef != nil {
		conditions = append(conditions, fmt.Sprintf("a.claim_ref = $%d", paramIdx))
		args = append(args, *q.ClaimRef)
		paramIdx++
	}

	if q.VIN != nil {
		conditions = append(conditions, fmt.Sprintf("a.vin = $%d", paramIdx))
		args = append(args, *q.VIN)
		paramIdx++
	}

	if q.Make != nil {
		conditions = append(conditions, fmt.Sprintf("lower(a.make) = lower($%d)", paramIdx))
		args = append(args, *q.Make)
		paramIdx++
	}

	if q.Model != nil {
		conditions = append(conditions, fmt.Sprintf("lower(a.model) = lower($%d)", paramIdx))
		args = append(args, *q.Model)
		paramIdx++
	}

	if q.YearMin != nil {
		conditions = append(conditions, fmt.Sprintf("a.year >= $%d", paramIdx))
		args = append(args, *q.YearMin)
		paramIdx++
	}

	if q.YearMax != nil {
		conditions = append(conditions, fmt.Sprintf("a.year <= $%d", paramIdx))
		args = append(args, *q.YearMax)
		paramIdx++
	}

	if len(q.Conditions) > 0 {
		placeholders := make([]string, len(q.Conditions))
		for i, c := range q.Conditions {
			placeholders[i] = fmt.Sprintf("$%d", paramIdx)
			args = append(args, c)
			paramIdx++
		}
		conditions = append(conditions, fmt.Sprintf(
			"a.condition IN (%s)", strings.Join(placeholders, ", "),
		))
	}

	var joinClause string
	if q.Undervalued != nil {
		joinClause = latestAnalysisJoin
		conditions = append(conditions, fmt.Sprintf(
			"COALESCE(latest.undervalued, false) = $%d", paramIdx,
		))
		args = append(args, *q.Undervalued)
		paramIdx++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseAppraisalsSelect, joinClause, whereClause, orderClause, limit, offset,
	)

	countSQL = countAppraisalsSelect + joinClause + whereClause

	return dataSQL, countSQL, args
}

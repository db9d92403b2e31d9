package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAppraisalQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         AppraisalQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: AppraisalQuery{},
			wantDataHas: []string{
				"FROM appraisals a",
				"ORDER BY a.created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE", "LATERAL"},
			wantCountSQL:  "SELECT COUNT(*) FROM appraisals a",
			wantArgs:      nil,
		},
		{
			name: "claim ref filter",
			query: AppraisalQuery{
				ClaimRef: ptr("CLM-2024-0042"),
			},
			wantDataHas: []string{
				"WHERE a.claim_ref = $1",
				"LIMIT 50",
			},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE a.claim_ref = $1",
			wantArgs:     []any{"CLM-2024-0042"},
		},
		{
			name: "vin filter",
			query: AppraisalQuery{
				VIN: ptr("1HGCM82633A004352"),
			},
			wantDataHas:  []string{"WHERE a.vin = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE a.vin = $1",
			wantArgs:     []any{"1HGCM82633A004352"},
		},
		{
			name: "make filter is case-insensitive",
			query: AppraisalQuery{
				Make: ptr("Honda"),
			},
			wantDataHas:  []string{"WHERE lower(a.make) = lower($1)"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE lower(a.make) = lower($1)",
			wantArgs:     []any{"Honda"},
		},
		{
			name: "model filter is case-insensitive",
			query: AppraisalQuery{
				Model: ptr("Accord"),
			},
			wantDataHas:  []string{"WHERE lower(a.model) = lower($1)"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE lower(a.model) = lower($1)",
			wantArgs:     []any{"Accord"},
		},
		{
			name: "year range filters",
			query: AppraisalQuery{
				YearMin: ptr(2018),
				YearMax: ptr(2022),
			},
			wantDataHas: []string{
				"a.year >= $1",
				"a.year <= $2",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE a.year >= $1 AND a.year <= $2",
			wantArgs:     []any{2018, 2022},
		},
		{
			name: "single condition filter",
			query: AppraisalQuery{
				Conditions: []string{"good"},
			},
			wantDataHas:  []string{"WHERE a.condition IN ($1)"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE a.condition IN ($1)",
			wantArgs:     []any{"good"},
		},
		{
			name: "multiple conditions filter",
			query: AppraisalQuery{
				Conditions: []string{"excellent", "good", "fair"},
			},
			wantDataHas:  []string{"WHERE a.condition IN ($1, $2, $3)"},
			wantCountSQL: "SELECT COUNT(*) FROM appraisals a WHERE a.condition IN ($1, $2, $3)",
			wantArgs:     []any{"excellent", "good", "fair"},
		},
		{
			name: "undervalued filter joins latest analysis",
			query: AppraisalQuery{
				Undervalued: ptr(true),
			},
			wantDataHas: []string{
				"LEFT JOIN LATERAL",
				"ORDER BY m.revision DESC",
				"COALESCE(latest.undervalued, false) = $1",
			},
			wantArgs: []any{true},
		},
		{
			name: "undervalued false matches missing analyses",
			query: AppraisalQuery{
				Undervalued: ptr(false),
			},
			wantDataHas: []string{
				"LEFT JOIN LATERAL",
				"COALESCE(latest.undervalued, false) = $1",
			},
			wantArgs: []any{false},
		},
		{
			name: "multiple filters with correct parameter numbering",
			query: AppraisalQuery{
				Make:    ptr("Toyota"),
				Model:   ptr("Camry"),
				YearMin: ptr(2019),
				Conditions: []string{
					"good", "fair",
				},
			},
			wantDataHas: []string{
				"lower(a.make) = lower($1)",
				"lower(a.model) = lower($2)",
				"a.year >= $3",
				"a.condition IN ($4, $5)",
				" AND ",
			},
			wantArgs: []any{"Toyota", "Camry", 2019, "good", "fair"},
		},
		{
			name: "order by year",
			query: AppraisalQuery{
				OrderBy: "year",
			},
			wantDataHas: []string{"ORDER BY a.year DESC"},
		},
		{
			name: "order by mileage",
			query: AppraisalQuery{
				OrderBy: "mileage",
			},
			wantDataHas: []string{"ORDER BY a.mileage ASC"},
		},
		{
			name: "order by created_at",
			query: AppraisalQuery{
				OrderBy: "created_at",
			},
			wantDataHas: []string{"ORDER BY a.created_at DESC"},
		},
		{
			name: "invalid order by falls back to default",
			query: AppraisalQuery{
				OrderBy: "DROP TABLE appraisals; --",
			},
			wantDataHas:   []string{"ORDER BY a.created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name: "custom limit and offset",
			query: AppraisalQuery{
				Limit:  25,
				Offset: 100,
			},
			wantDataHas: []string{
				"LIMIT 25",
				"OFFSET 100",
			},
		},
		{
			name: "zero limit defaults to 50",
			query: AppraisalQuery{
				Limit: 0,
			},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name: "negative limit defaults to 50",
			query: AppraisalQuery{
				Limit: -10,
			},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name: "limit exceeding max is capped",
			query: AppraisalQuery{
				Limit: 1000,
			},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name: "negative offset defaults to 0",
			query: AppraisalQuery{
				Offset: -5,
			},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else if len(tt.wantArgs) == 0 {
				assert.Empty(t, args)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.InDelta(t, 20.0, cfg.Valuation.UndervaluedThresholdPct, 1e-9)
				assert.InDelta(t, 1.0, cfg.Recompute.PerSecond, 1e-9)
				assert.Equal(t, 3, cfg.Recompute.Burst)
				assert.Equal(t, 1*time.Hour, cfg.Schedule.SweepInterval)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.StaleAfter)
				assert.Equal(t, 4, cfg.Schedule.SweepConcurrency)
				assert.Equal(t, 24*time.Hour, cfg.Schedule.PruneInterval)
				assert.Equal(t, 90*24*time.Hour, cfg.Schedule.HistoryRetention)
				assert.Equal(t, 5, cfg.Schedule.HistoryKeep)
				assert.Equal(t, 30*time.Second, cfg.Schedule.StaggerOffset)
				assert.Equal(t, 40, cfg.Alerts.MinConfidence)
				assert.Equal(t, 2, cfg.Alerts.MinComparables)
				assert.False(t, cfg.Alerts.ReAlertsEnabled)
				assert.Equal(t, 30*time.Second, cfg.Report.PageTimeout)
				assert.Equal(t, "vehicle-appraisal", cfg.Telemetry.ServiceName)
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "negative equipment value",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
valuation:
  equipment_values:
    Sunroof: -100
`,
			wantErr: "valuation.equipment_values[Sunroof] must not be negative",
		},
		{
			name: "open-ended tier not last",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
valuation:
  depreciation_tiers:
    - max_age_years: -1
      rate_per_mile: 0.05
    - max_age_years: 3
      rate_per_mile: 0.25
`,
			wantErr: "valuation.depreciation_tiers: open-ended tier must come last",
		},
		{
			name: "tiers out of order",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
valuation:
  depreciation_tiers:
    - max_age_years: 7
      rate_per_mile: 0.15
    - max_age_years: 3
      rate_per_mile: 0.25
`,
			wantErr: "valuation.depreciation_tiers must be ordered by ascending max_age_years",
		},
		{
			name: "zero condition multiplier",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
valuation:
  condition_multipliers:
    poor: 0
`,
			wantErr: "valuation.condition_multipliers[poor] must be positive",
		},
		{
			name: "telemetry enabled without endpoint",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
telemetry:
  enabled: true
  endpoint: ""
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				// Empty endpoint falls back to the default before validation.
				assert.Equal(t, "localhost:4317", cfg.Telemetry.Endpoint)
			},
		},
		{
			name: "alerts confidence out of range",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
alerts:
  min_confidence: 120
`,
			wantErr: "alerts.min_confidence must be between 0 and 95",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: appraisal_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
valuation:
  year: 2025
  equipment_values:
    Navigation: 1500
    Towing Package: 900
  default_equipment_value: 400
  depreciation_tiers:
    - max_age_years: 2
      rate_per_mile: 0.30
    - max_age_years: 6
      rate_per_mile: 0.18
    - max_age_years: -1
      rate_per_mile: 0.04
  condition_multipliers:
    excellent: 1.10
    poor: 0.80
  age_match_bonus: 5
  undervalued_threshold_pct: 15
recompute:
  per_second: 0.5
  burst: 5
schedule:
  sweep_interval: 30m
  stale_after: 12h
  sweep_concurrency: 8
  history_retention: 720h
  history_keep: 10
  stagger_offset: 1m
alerts:
  min_confidence: 60
  min_difference_pct: 10
  min_comparables: 3
  re_alerts_enabled: true
notifications:
  discord:
    enabled: true
    webhook_url: https://discord.com/api/webhooks/123
  webhook:
    enabled: false
report:
  pdf_enabled: true
  chrome_path: /usr/bin/chromium
  page_timeout: 45s
telemetry:
  enabled: true
  endpoint: otel-collector:4317
  service_name: appraisal-svc
  insecure: true
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, 2025, cfg.Valuation.Year)
				assert.InDelta(t, 1500.0, cfg.Valuation.EquipmentValues["Navigation"], 1e-9)
				assert.InDelta(t, 400.0, cfg.Valuation.DefaultEquipmentValue, 1e-9)
				require.Len(t, cfg.Valuation.DepreciationTiers, 3)
				assert.Equal(t, 2, cfg.Valuation.DepreciationTiers[0].MaxAgeYears)
				assert.InDelta(t, 0.04, cfg.Valuation.DepreciationTiers[2].RatePerMile, 1e-9)
				assert.InDelta(t, 1.10, cfg.Valuation.ConditionMultipliers["excellent"], 1e-9)
				assert.InDelta(t, 5.0, cfg.Valuation.AgeMatchBonus, 1e-9)
				assert.InDelta(t, 15.0, cfg.Valuation.UndervaluedThresholdPct, 1e-9)
				assert.InDelta(t, 0.5, cfg.Recompute.PerSecond, 1e-9)
				assert.Equal(t, 5, cfg.Recompute.Burst)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.SweepInterval)
				assert.Equal(t, 12*time.Hour, cfg.Schedule.StaleAfter)
				assert.Equal(t, 8, cfg.Schedule.SweepConcurrency)
				assert.Equal(t, 720*time.Hour, cfg.Schedule.HistoryRetention)
				assert.Equal(t, 10, cfg.Schedule.HistoryKeep)
				assert.Equal(t, 60, cfg.Alerts.MinConfidence)
				assert.InDelta(t, 10.0, cfg.Alerts.MinDifferencePct, 1e-9)
				assert.Equal(t, 3, cfg.Alerts.MinComparables)
				assert.True(t, cfg.Alerts.ReAlertsEnabled)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "https://discord.com/api/webhooks/123", cfg.Notifications.Discord.WebhookURL)
				assert.True(t, cfg.Report.PDFEnabled)
				assert.Equal(t, "/usr/bin/chromium", cfg.Report.ChromePath)
				assert.Equal(t, 45*time.Second, cfg.Report.PageTimeout)
				assert.True(t, cfg.Telemetry.Enabled)
				assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
				assert.Equal(t, "appraisal-svc", cfg.Telemetry.ServiceName)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			// Set env vars for this test.
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Write YAML to a temp file.
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "testdb",
				User:     "testuser",
				Password: "testpass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=testdb user=testuser password=testpass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "appraisal",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=appraisal user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestValuationConfig_Tables(t *testing.T) {
	t.Parallel()

	t.Run("empty config yields defaults", func(t *testing.T) {
		t.Parallel()

		v := &ValuationConfig{UndervaluedThresholdPct: 20}
		got := v.Tables(2024)

		want := valuation.DefaultTables(2024)
		assert.Equal(t, want, got)
	})

	t.Run("configured year wins", func(t *testing.T) {
		t.Parallel()

		v := &ValuationConfig{Year: 2023, UndervaluedThresholdPct: 20}
		got := v.Tables(2024)

		assert.Equal(t, 2023, got.ValuationYear)
	})

	t.Run("overrides replace defaults wholesale", func(t *testing.T) {
		t.Parallel()

		v := &ValuationConfig{
			EquipmentValues:       map[string]float64{"Navigation": 1500},
			DefaultEquipmentValue: 400,
			DepreciationTiers: []DepreciationTier{
				{MaxAgeYears: 5, RatePerMile: 0.2},
				{MaxAgeYears: -1, RatePerMile: 0.05},
			},
			ConditionMultipliers:    map[string]float64{"excellent": 1.2},
			AgeMatchBonus:           5,
			UndervaluedThresholdPct: 15,
		}
		got := v.Tables(2024)

		assert.Equal(t, map[string]float64{"Navigation": 1500}, got.EquipmentValues)
		assert.InDelta(t, 400.0, got.DefaultEquipmentValue, 1e-9)
		require.Len(t, got.DepreciationTiers, 2)
		assert.InDelta(t, 0.2, got.DepreciationTiers[0].RatePerMile, 1e-9)
		assert.InDelta(t, 1.2, got.ConditionMultipliers["excellent"], 1e-9)
		assert.InDelta(t, 5.0, got.AgeMatchBonus, 1e-9)
		assert.InDelta(t, 15.0, got.UndervaluedThresholdPct, 1e-9)
		assert.Equal(t, 2024, got.ValuationYear)
	})
}

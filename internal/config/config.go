// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/valuelab/vehicle-appraisal/pkg/valuation"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Valuation     ValuationConfig     `yaml:"valuation"`
	Recompute     RecomputeConfig     `yaml:"recompute"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Alerts        AlertsConfig        `yaml:"alerts"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Report        ReportConfig        `yaml:"report"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// ValuationConfig defines the engine's tunable tables. Empty maps and
// slices fall back to the engine defaults.
type ValuationConfig struct {
	// Year anchors comparable-age calculations; 0 means the current year
	// at computation time.
	Year                    int                `yaml:"year"`
	EquipmentValues         map[string]float64 `yaml:"equipment_values"`
	DefaultEquipmentValue   float64            `yaml:"default_equipment_value"`
	DepreciationTiers       []DepreciationTier `yaml:"depreciation_tiers"`
	ConditionMultipliers    map[string]float64 `yaml:"condition_multipliers"`
	AgeMatchBonus           float64            `yaml:"age_match_bonus"`
	UndervaluedThresholdPct float64            `yaml:"undervalued_threshold_pct"`
}

// DepreciationTier mirrors valuation.DepreciationTier for YAML binding.
// A negative max_age_years marks the open-ended tier.
type DepreciationTier struct {
	MaxAgeYears int     `yaml:"max_age_years"`
	RatePerMile float64 `yaml:"rate_per_mile"`
}

// RecomputeConfig limits how fast analysis recomputes may be requested
// per appraisal.
type RecomputeConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// ScheduleConfig defines cron intervals for background maintenance.
type ScheduleConfig struct {
	SweepInterval    time.Duration `yaml:"sweep_interval"`
	StaleAfter       time.Duration `yaml:"stale_after"`
	SweepConcurrency int           `yaml:"sweep_concurrency"`
	StaggerOffset    time.Duration `yaml:"stagger_offset"`
	PruneInterval    time.Duration `yaml:"prune_interval"`
	HistoryRetention time.Duration `yaml:"history_retention"`
	HistoryKeep      int           `yaml:"history_keep"`
}

// AlertsConfig defines when undervalued-vehicle alerts fire.
type AlertsConfig struct {
	MinConfidence    int     `yaml:"min_confidence"`
	MinDifferencePct float64 `yaml:"min_difference_pct"`
	MinComparables   int     `yaml:"min_comparables"`
	ReAlertsEnabled  bool    `yaml:"re_alerts_enabled"` // default: false, alert only on transition
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// WebhookConfig defines generic webhook settings.
type WebhookConfig struct {
	Enabled bool              `yaml:"enabled"`
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// ReportConfig defines report rendering settings. PDF output shells out to
// headless Chrome and stays disabled unless configured.
type ReportConfig struct {
	PDFEnabled  bool          `yaml:"pdf_enabled"`
	ChromePath  string        `yaml:"chrome_path"`
	PageTimeout time.Duration `yaml:"page_timeout"`
}

// TelemetryConfig defines OTLP export settings.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Tables materializes the engine tables for a computation anchored at year.
// A configured year wins over the caller's.
func (v *ValuationConfig) Tables(year int) valuation.Tables {
	if v.Year != 0 {
		year = v.Year
	}
	t := valuation.DefaultTables(year)

	if len(v.EquipmentValues) > 0 {
		t.EquipmentValues = v.EquipmentValues
	}
	if v.DefaultEquipmentValue != 0 {
		t.DefaultEquipmentValue = v.DefaultEquipmentValue
	}
	if len(v.DepreciationTiers) > 0 {
		tiers := make([]valuation.DepreciationTier, 0, len(v.DepreciationTiers))
		for _, tier := range v.DepreciationTiers {
			tiers = append(tiers, valuation.DepreciationTier{
				MaxAgeYears: tier.MaxAgeYears,
				RatePerMile: tier.RatePerMile,
			})
		}
		t.DepreciationTiers = tiers
	}
	if len(v.ConditionMultipliers) > 0 {
		t.ConditionMultipliers = v.ConditionMultipliers
	}
	t.AgeMatchBonus = v.AgeMatchBonus
	if v.UndervaluedThresholdPct != 0 {
		t.UndervaluedThresholdPct = v.UndervaluedThresholdPct
	}
	return t
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyValuationDefaults(&cfg.Valuation)
	applyRecomputeDefaults(&cfg.Recompute)
	applyScheduleDefaults(&cfg.Schedule)
	applyAlertsDefaults(&cfg.Alerts)
	applyReportDefaults(&cfg.Report)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyValuationDefaults(v *ValuationConfig) {
	if v.UndervaluedThresholdPct == 0 {
		v.UndervaluedThresholdPct = 20
	}
}

func applyRecomputeDefaults(r *RecomputeConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 3
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.SweepInterval == 0 {
		s.SweepInterval = 1 * time.Hour
	}
	if s.StaleAfter == 0 {
		s.StaleAfter = 24 * time.Hour
	}
	if s.SweepConcurrency == 0 {
		s.SweepConcurrency = 4
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 30 * time.Second
	}
	if s.PruneInterval == 0 {
		s.PruneInterval = 24 * time.Hour
	}
	if s.HistoryRetention == 0 {
		s.HistoryRetention = 90 * 24 * time.Hour
	}
	if s.HistoryKeep == 0 {
		s.HistoryKeep = 5
	}
}

func applyAlertsDefaults(a *AlertsConfig) {
	if a.MinConfidence == 0 {
		a.MinConfidence = 40
	}
	if a.MinComparables == 0 {
		a.MinComparables = 2
	}
}

func applyReportDefaults(r *ReportConfig) {
	if r.PageTimeout == 0 {
		r.PageTimeout = 30 * time.Second
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "vehicle-appraisal"
	}
	if t.Endpoint == "" {
		t.Endpoint = "localhost:4317"
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	errs = append(errs, validateValuation(&cfg.Valuation)...)

	if cfg.Recompute.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("recompute.per_second must not be negative"))
	}
	if cfg.Schedule.SweepConcurrency < 1 {
		errs = append(errs, fmt.Errorf("schedule.sweep_concurrency must be at least 1"))
	}
	if cfg.Alerts.MinConfidence < 0 || cfg.Alerts.MinConfidence > 95 {
		errs = append(errs, fmt.Errorf("alerts.min_confidence must be between 0 and 95"))
	}
	if cfg.Report.PDFEnabled && cfg.Report.PageTimeout <= 0 {
		errs = append(errs, fmt.Errorf("report.page_timeout must be positive when PDF output is enabled"))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}

	return errors.Join(errs...)
}

func validateValuation(v *ValuationConfig) []error {
	var errs []error

	for name, value := range v.EquipmentValues {
		if value < 0 {
			errs = append(errs, fmt.Errorf("valuation.equipment_values[%s] must not be negative", name))
		}
	}
	if v.DefaultEquipmentValue < 0 {
		errs = append(errs, fmt.Errorf("valuation.default_equipment_value must not be negative"))
	}

	prev := -1
	for i, tier := range v.DepreciationTiers {
		if tier.RatePerMile < 0 {
			errs = append(errs, fmt.Errorf("valuation.depreciation_tiers[%d].rate_per_mile must not be negative", i))
		}
		if tier.MaxAgeYears < 0 {
			if i != len(v.DepreciationTiers)-1 {
				errs = append(errs, fmt.Errorf("valuation.depreciation_tiers: open-ended tier must come last"))
			}
			continue
		}
		if tier.MaxAgeYears <= prev {
			errs = append(errs, fmt.Errorf("valuation.depreciation_tiers must be ordered by ascending max_age_years"))
		}
		prev = tier.MaxAgeYears
	}

	for name, m := range v.ConditionMultipliers {
		if m <= 0 {
			errs = append(errs, fmt.Errorf("valuation.condition_multipliers[%s] must be positive", name))
		}
	}
	if v.UndervaluedThresholdPct < 0 {
		errs = append(errs, fmt.Errorf("valuation.undervalued_threshold_pct must not be negative"))
	}

	return errs
}

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valuelab/vehicle-appraisal/internal/config"
	"github.com/valuelab/vehicle-appraisal/internal/store"
	"github.com/valuelab/vehicle-appraisal/pkg/logger"
)

var migrateStatus bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "show migration status instead of applying")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if migrateStatus {
		records, err := st.MigrationStatus(ctx)
		if err != nil {
			return fmt.Errorf("reading migration status: %w", err)
		}
		for _, r := range records {
			applied := "pending"
			if r.AppliedAt != nil {
				applied = r.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%s\t%s\n", r.Version, applied)
		}
		return nil
	}

	log.Info("running migrations", "host", cfg.Database.Host, "database", cfg.Database.Name)

	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	log.Info("migrations complete")
	return nil
}

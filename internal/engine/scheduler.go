package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/valuelab/vehicle-appraisal/internal/metrics"
	"github.com/valuelab/vehicle-appraisal/internal/store"
)

// Scheduled job names as recorded in job_runs.
const (
	jobSweep = "stale_sweep"
	jobPrune = "history_prune"
)

// staleJobCutoff is how old a 'running' job row must be before startup
// recovery marks it crashed.
const staleJobCutoff = 2 * time.Hour

// Scheduler manages the periodic stale sweep and history pruning tasks.
// A database lock keeps each job single-flight across service replicas,
// and every execution is recorded in job_runs.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	store  store.Store
	log    *slog.Logger
	holder string

	sweepInterval time.Duration
	pruneInterval time.Duration

	sweepEntryID cron.EntryID
	pruneEntryID cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine tasks on a
// schedule. A pruneInterval of zero or less disables the history prune
// job.
func NewScheduler(
	eng *Engine,
	st store.Store,
	sweepInterval time.Duration,
	pruneInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}

	s := &Scheduler{
		cron:          cron.New(),
		engine:        eng,
		store:         st,
		log:           log,
		holder:        fmt.Sprintf("%s-%d", host, os.Getpid()),
		sweepInterval: sweepInterval,
		pruneInterval: pruneInterval,
	}

	s.sweepEntryID, err = s.cron.AddFunc(
		"@every "+sweepInterval.String(),
		s.runSweep,
	)
	if err != nil {
		return nil, err
	}

	if pruneInterval > 0 {
		s.pruneEntryID, err = s.cron.AddFunc(
			"@every "+pruneInterval.String(),
			s.runPrune,
		)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "holder", s.holder)
	s.cron.Start()
	s.SyncNextRunTimestamps()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamps exports each job's next scheduled run time.
func (s *Scheduler) SyncNextRunTimestamps() {
	for _, e := range s.cron.Entries() {
		switch e.ID {
		case s.sweepEntryID:
			metrics.SchedulerNextSweepTimestamp.Set(float64(e.Next.Unix()))
		case s.pruneEntryID:
			metrics.SchedulerNextPruneTimestamp.Set(float64(e.Next.Unix()))
		}
	}
}

// RecoverStaleJobRuns marks job rows left 'running' by a crashed process
// as crashed. Called once at startup.
func (s *Scheduler) RecoverStaleJobRuns(ctx context.Context) {
	n, err := s.store.RecoverStaleJobRuns(ctx, staleJobCutoff)
	if err != nil {
		s.log.Error("recovering stale job runs failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("recovered stale job runs", "count", n)
	}
}

// runJob wraps one job execution with the scheduler lock and job_runs
// bookkeeping. When another instance holds the lock the run is skipped
// without error.
func (s *Scheduler) runJob(
	ctx context.Context,
	jobName string,
	ttl time.Duration,
	fn func(context.Context) (int, error),
) error {
	acquired, err := s.store.AcquireSchedulerLock(ctx, jobName, s.holder, ttl)
	if err != nil {
		return fmt.Errorf("acquiring lock for %s: %w", jobName, err)
	}
	if !acquired {
		metrics.SchedulerLockSkipsTotal.Inc()
		s.log.Info("job lock held elsewhere, skipping", "job", jobName)
		return nil
	}
	defer func() {
		if err := s.store.ReleaseSchedulerLock(ctx, jobName, s.holder); err != nil {
			s.log.Error("releasing job lock failed", "job", jobName, "error", err)
		}
	}()

	runID, err := s.store.InsertJobRun(ctx, jobName)
	if err != nil {
		return fmt.Errorf("recording job run for %s: %w", jobName, err)
	}

	rows, jobErr := fn(ctx)
	if jobErr != nil {
		if err := s.store.CompleteJobRun(ctx, runID, "failed", jobErr.Error(), rows); err != nil {
			s.log.Error("completing job run failed", "job", jobName, "error", err)
		}
		return jobErr
	}

	if err := s.store.CompleteJobRun(ctx, runID, "succeeded", "", rows); err != nil {
		s.log.Error("completing job run failed", "job", jobName, "error", err)
	}
	return nil
}

// lockTTL sizes a job's lock so a crashed holder's lock self-expires by
// the next scheduled run, with a floor for very short intervals.
func lockTTL(interval time.Duration) time.Duration {
	const floor = 10 * time.Minute
	if interval < floor {
		return floor
	}
	return interval
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()
	s.log.Info("scheduled sweep starting")
	if err := s.runJob(ctx, jobSweep, lockTTL(s.sweepInterval), s.engine.SweepStale); err != nil {
		s.log.Error("scheduled sweep failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}

func (s *Scheduler) runPrune() {
	ctx := context.Background()
	s.log.Info("scheduled history prune starting")
	if err := s.runJob(ctx, jobPrune, lockTTL(s.pruneInterval), s.engine.PruneHistory); err != nil {
		s.log.Error("scheduled history prune failed", "error", err)
	}
	s.SyncNextRunTimestamps()
}

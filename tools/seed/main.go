// Package main loads fixture appraisals and comparables into a running
// vehicle-appraisal server for local development. It drives the public API
// through the same client the CLI uses, so every insert triggers a real
// recompute.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	apiclient "github.com/valuelab/vehicle-appraisal/internal/api/client"
	domain "github.com/valuelab/vehicle-appraisal/pkg/types"
)

type fixture struct {
	Appraisals []fixtureAppraisal `json:"appraisals"`
}

type fixtureAppraisal struct {
	Appraisal   domain.Appraisal    `json:"appraisal"`
	Comparables []domain.Comparable `json:"comparables"`
}

func main() {
	server := flag.String("server", "http://localhost:8080", "vehicle-appraisal server URL")
	fixtureFile := flag.String("fixture", "tools/seed/testdata/appraisals.json", "path to fixture file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "appraisals", len(fx.Appraisals))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c := apiclient.New(*server)
	if err := seed(ctx, c, fx, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func seed(ctx context.Context, c *apiclient.Client, fx *fixture, logger *slog.Logger) error {
	for i := range fx.Appraisals {
		entry := &fx.Appraisals[i]

		created, err := c.CreateAppraisal(ctx, &entry.Appraisal)
		if err != nil {
			return fmt.Errorf("creating appraisal %q: %w", entry.Appraisal.Label(), err)
		}
		logger.Info("created appraisal",
			"id", created.ID,
			"vehicle", created.Label(),
			"comparables", len(entry.Comparables),
		)

		for j := range entry.Comparables {
			comp, err := c.AddComparable(ctx, created.ID, &entry.Comparables[j])
			if err != nil {
				return fmt.Errorf("adding comparable %d to appraisal %s: %w", j, created.ID, err)
			}
			logger.Debug("added comparable",
				"id", comp.ID,
				"vehicle", fmt.Sprintf("%d %s %s", comp.Year, comp.Make, comp.Model),
				"list_price", comp.ListPrice,
			)
		}

		analysis, err := c.GetAnalysis(ctx, created.ID)
		if err != nil {
			return fmt.Errorf("fetching analysis for appraisal %s: %w", created.ID, err)
		}
		marketValue := "n/a"
		if analysis.MarketValue != nil {
			marketValue = fmt.Sprintf("$%.2f", *analysis.MarketValue)
		}
		logger.Info("analysis computed",
			"appraisal", created.ID,
			"market_value", marketValue,
			"confidence", analysis.Confidence,
			"undervalued", analysis.Undervalued,
		)
	}
	return nil
}

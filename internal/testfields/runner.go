package testfields

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	app "github.com/okian/fieldmap/internal/app"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/pkg/logger"
)

// File permission constants.
const (
	outputFilePermission = 0600
)

// Run executes the complete field mapping test: generate noisy names,
// map them through the service, and report the match rate.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	if config.Verbose {
		_ = logger.SetLevelString("debug")
	}

	logger.Get().Info(ctx, "starting field mapping test",
		logger.Int("fields", config.NumFields),
		logger.Int("workers", config.Workers),
		logger.Float64("noise", config.Noise),
		logger.Float64("threshold", config.Threshold))

	// Step 1: Build a registry to draw variants from
	registry, err := schema.NewRegistry()
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}

	// Step 2: Generate noisy field names
	fields := generateFields(ctx, registry, config, stats)

	// Step 3: Start the mapping service
	svc := app.New(
		app.WithWorkerCount(config.Workers),
		app.WithThreshold(config.Threshold),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("starting service: %w", err)
	}
	defer svc.Stop()

	// Step 4: Map the generated names as one batch
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	results, err := svc.MapBatch(ctx, names, sampleResume())
	if err != nil {
		return fmt.Errorf("batch mapping failed: %w", err)
	}

	// Step 5: Score the outcome against the expected canonical fields
	scoreResults(ctx, fields, results, stats)

	// Step 6: Save generated fields for reproduction
	if config.OutputFile != "" {
		if err := saveFieldsToFile(config.OutputFile, fields); err != nil {
			logger.Get().Warn(ctx, "failed to save generated fields", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)
	return nil
}

func scoreResults(ctx context.Context, fields []GeneratedField, results []*model.MappingResult, stats *Stats) {
	for i, f := range fields {
		res := results[i]
		if res == nil {
			stats.Unmatched++
			continue
		}
		switch res.MatchKind {
		case model.MatchIgnored:
			stats.Ignored++
			continue
		case model.MatchExact:
			stats.ExactMatches++
		case model.MatchFuzzy:
			stats.FuzzyMatches++
		}
		stats.FieldsMapped++
		if res.CanonicalField != f.Expected {
			stats.Mismatched++
			logger.Get().Debug(ctx, "mapped to unexpected canonical field",
				logger.String("name", f.Name),
				logger.String("expected", f.Expected),
				logger.String("got", res.CanonicalField),
			)
		}
	}
}

func saveFieldsToFile(path string, fields []GeneratedField) error {
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, outputFilePermission)
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	matchRate := 0.0
	if stats.FieldsGenerated > 0 {
		matchRate = float64(stats.FieldsMapped) / float64(stats.FieldsGenerated)
	}
	logger.Get().Info(ctx, "field mapping test complete",
		logger.Int("generated", stats.FieldsGenerated),
		logger.Int("mapped", stats.FieldsMapped),
		logger.Int("exact", stats.ExactMatches),
		logger.Int("fuzzy", stats.FuzzyMatches),
		logger.Int("ignored", stats.Ignored),
		logger.Int("unmatched", stats.Unmatched),
		logger.Int("mismatched", stats.Mismatched),
		logger.Float64("matchRate", matchRate),
		logger.String("duration", stats.Duration.String()),
	)
}

// sampleResume is a fixed resume document so mapped fields resolve real
// values during the test.
func sampleResume() *model.Resume {
	return &model.Resume{
		Name:    "Ada King Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1 555 0100",
		City:    "London",
		Country: "UK",
		Skills:  []string{"mathematics", "analysis"},
		Education: []model.EducationEntry{
			{Degree: "BS in Mathematics", Institution: "University of London", StartYear: "2014", EndYear: "2018"},
		},
		Experience: []model.ExperienceEntry{
			{Title: "Analyst", Company: "Analytical Engines Ltd", StartYear: "2018", Current: true},
		},
		Projects: []model.ProjectEntry{
			{Name: "Note G", Description: "First published algorithm"},
		},
	}
}

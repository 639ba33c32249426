// Package seed loads scenario fixtures from a directory of JSON files and
// replaces the stored content with them.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/metrics"
	"github.com/osse101/LoveSim_Go/internal/repository"
	"github.com/osse101/LoveSim_Go/internal/validation"
)

// FileError records a fixture file that was skipped
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Report summarizes a reload
type Report struct {
	domain.ReloadResult
	FilesRead   int
	FilesFailed []FileError
}

// Service defines the seeding operations
type Service interface {
	// LoadDir parses every fixture in dir in file name order. Invalid files
	// are reported and skipped.
	LoadDir(ctx context.Context, dir string) ([]domain.Scenario, []FileError, error)
	// Reload loads dir and replaces the stored content with its scenarios.
	Reload(ctx context.Context, dir string, opts domain.ReloadOptions) (*Report, error)
}

type service struct {
	repo      repository.Seed
	validator validation.SchemaValidator
}

// NewService creates a new seed service
func NewService(repo repository.Seed, validator validation.SchemaValidator) Service {
	return &service{
		repo:      repo,
		validator: validator,
	}
}

// LoadDir reads *.json fixtures; the scenario name is the file name without extension
func (s *service) LoadDir(ctx context.Context, dir string) ([]domain.Scenario, []FileError, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf(ErrMsgReadDirFailed, dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), FixtureExtension) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var (
		scenarios []domain.Scenario
		failed    []FileError
	)
	for _, fileName := range names {
		path := filepath.Join(dir, fileName)
		log.Info(LogMsgReadingFixture, "file", fileName)

		sc, err := s.loadFile(path, strings.TrimSuffix(fileName, FixtureExtension))
		if err != nil {
			log.Error(LogMsgFixtureSkipped, "file", fileName, "error", err)
			metrics.SeedFilesFailed.Inc()
			failed = append(failed, FileError{File: fileName, Err: err})
			continue
		}

		log.Debug(LogMsgScenarioParsed, "scenario", sc.Name, "title", sc.Title, "scenes", len(sc.Scenes))
		scenarios = append(scenarios, sc)
	}

	return scenarios, failed, nil
}

func (s *service) loadFile(path, name string) (domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Scenario{}, err
	}
	if err := s.validator.ValidateBytes(data, validation.ScenarioSchema); err != nil {
		return domain.Scenario{}, fmt.Errorf("%w: %v", domain.ErrInvalidFixture, err)
	}
	return parseFixture(name, data)
}

// Reload performs the destructive full reload of content tables
func (s *service) Reload(ctx context.Context, dir string, opts domain.ReloadOptions) (*Report, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReloadStarting, "dir", dir, "preserve_rankings", opts.PreserveRankings)

	scenarios, failed, err := s.LoadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.ReplaceContent(ctx, scenarios, opts)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReloadFailed, err)
	}
	metrics.SeedScenariosLoaded.Add(float64(result.ScenariosLoaded))

	report := &Report{
		ReloadResult: *result,
		FilesRead:    len(scenarios) + len(failed),
		FilesFailed:  failed,
	}

	if opts.PreserveRankings {
		log.Info(LogMsgRankingsPreserved)
	}
	log.Info(LogMsgReloadComplete,
		"scenarios", report.ScenariosLoaded,
		"scenes", report.ScenesLoaded,
		"choices", report.ChoicesLoaded,
		"files_failed", len(report.FilesFailed),
		"scenarios_failed", len(report.Failed))

	return report, nil
}

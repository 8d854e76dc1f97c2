package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
	"github.com/structura-labs/layerlint-cli/internal/logger"
)

// DefaultHistoryKeep is the number of runs retained when no
// history.keep config value is set.
const DefaultHistoryKeep = 50

// Ensure CheckService implements the interface.
var _ driving.CheckService = (*CheckService)(nil)

// CheckService runs layer dependency checks over a source tree.
type CheckService struct {
	registry driven.ScannerRegistry
	runStore driven.RunStore
	config   driven.ConfigStore
}

// NewCheckService creates a new check service. runStore and config
// may be nil; persistence and configuration degrade gracefully.
func NewCheckService(
	registry driven.ScannerRegistry,
	runStore driven.RunStore,
	config driven.ConfigStore,
) *CheckService {
	return &CheckService{
		registry: registry,
		runStore: runStore,
		config:   config,
	}
}

// Check builds the module graph for the tree at root, evaluates the
// inward-dependency rule, and returns the report.
func (s *CheckService) Check(
	ctx context.Context,
	root string,
	opts driving.CheckOptions,
) (*domain.Report, error) {
	if s.registry == nil {
		return nil, domain.ErrNotImplemented
	}
	if root == "" {
		return nil, fmt.Errorf("%w: empty root", domain.ErrInvalidInput)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	scanner, err := s.selectScanner(abs, opts.Language)
	if err != nil {
		return nil, err
	}

	cfg, err := s.scanConfig()
	if err != nil {
		return nil, err
	}

	logger.Section("Check")
	logger.Debug("scanning %s with %s scanner", abs, scanner.Language())

	started := time.Now()
	graph, err := scanner.Scan(ctx, abs, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", abs, err)
	}

	violations, err := domain.Validate(graph)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:          uuid.NewString(),
		Root:        abs,
		Language:    scanner.Language(),
		StartedAt:   started,
		Duration:    time.Since(started),
		ModuleCount: graph.Len(),
		EdgeCount:   graph.EdgeCount(),

		ViolationCount: len(violations),
		Violations:     violations,
	}

	logger.Debug("checked %d modules, %d edges: %d violations",
		report.ModuleCount, report.EdgeCount, len(report.Violations))

	if !opts.NoPersist {
		s.persist(ctx, report)
	}

	return report, nil
}

// selectScanner resolves the scanner for an explicit language or by
// tree detection.
func (s *CheckService) selectScanner(root, language string) (driven.Scanner, error) {
	if language == "" || language == "auto" {
		return s.registry.Detect(root)
	}
	return s.registry.Get(language)
}

// scanConfig assembles the scan policy from configuration.
func (s *CheckService) scanConfig() (domain.ScanConfig, error) {
	cfg := domain.ScanConfig{Convention: domain.DefaultConvention()}
	if s.config == nil {
		return cfg, nil
	}

	aliases := make(map[domain.Layer][]string)
	for _, layer := range domain.Layers() {
		if dirs := s.config.GetStringSlice("layers." + layer.String()); len(dirs) > 0 {
			aliases[layer] = dirs
		}
	}
	if len(aliases) > 0 {
		convention, err := domain.NewConvention(aliases)
		if err != nil {
			return domain.ScanConfig{}, fmt.Errorf("layer config: %w", err)
		}
		cfg.Convention = convention
	}

	cfg.External = s.config.GetStringSlice("check.external")
	cfg.Exclude = s.config.GetStringSlice("check.exclude")
	return cfg, nil
}

// persist records the report, best effort. A check result is still
// useful when the history store is unavailable.
func (s *CheckService) persist(ctx context.Context, report *domain.Report) {
	if s.runStore == nil {
		return
	}
	if err := s.runStore.SaveRun(ctx, *report); err != nil {
		logger.Warn("recording run %s: %v", report.ID, err)
		return
	}

	keep := DefaultHistoryKeep
	if s.config != nil {
		if v := s.config.GetInt("history.keep"); v > 0 {
			keep = v
		}
	}
	if err := s.runStore.Prune(ctx, keep); err != nil {
		logger.Warn("pruning run history: %v", err)
	}
}

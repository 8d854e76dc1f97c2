package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService provides access to recorded check runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// List returns up to limit recent run summaries, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Report, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if limit <= 0 {
		limit = DefaultHistoryKeep
	}
	return s.runStore.ListRuns(ctx, limit)
}

// Show retrieves a full report by run ID or unique ID prefix.
func (s *HistoryService) Show(ctx context.Context, id string) (*domain.Report, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty run ID", domain.ErrInvalidInput)
	}

	report, err := s.runStore.GetRun(ctx, id)
	if err == nil {
		return report, nil
	}

	// Fall back to prefix matching across recent runs.
	runs, listErr := s.runStore.ListRuns(ctx, DefaultHistoryKeep)
	if listErr != nil {
		return nil, err
	}
	var match string
	for i := range runs {
		if strings.HasPrefix(runs[i].ID, id) {
			if match != "" {
				return nil, fmt.Errorf("%w: run ID prefix %q is ambiguous", domain.ErrInvalidInput, id)
			}
			match = runs[i].ID
		}
	}
	if match == "" {
		return nil, err
	}
	return s.runStore.GetRun(ctx, match)
}

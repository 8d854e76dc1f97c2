package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]domain.Report
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]domain.Report),
	}
}

// SaveRun stores a report and its violations.
func (s *RunStore) SaveRun(_ context.Context, report domain.Report) error {
	if report.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[report.ID] = report
	return nil
}

// GetRun retrieves a report by ID, violations included.
func (s *RunStore) GetRun(_ context.Context, id string) (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &report, nil
}

// ListRuns returns up to limit recent run summaries, newest first.
func (s *RunStore) ListRuns(_ context.Context, limit int) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Report, 0, len(s.runs))
	for _, report := range s.runs {
		report.ViolationCount = len(report.Violations)
		report.Violations = nil
		out = append(out, report)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.After(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Prune deletes all but the newest keep runs.
func (s *RunStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}
	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := keep; i < len(runs); i++ {
		delete(s.runs, runs[i].ID)
	}
	return nil
}

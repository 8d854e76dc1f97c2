package driven

import (
	"context"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

// RunStore persists check run reports for later inspection.
type RunStore interface {
	// SaveRun stores a report and its violations.
	SaveRun(ctx context.Context, report domain.Report) error

	// GetRun retrieves a report by ID, violations included.
	// Returns domain.ErrNotFound if no such run exists.
	GetRun(ctx context.Context, id string) (*domain.Report, error)

	// ListRuns returns up to limit recent run summaries, newest first.
	// Violations are not populated; use GetRun for the full report.
	ListRuns(ctx context.Context, limit int) ([]domain.Report, error)

	// Prune deletes all but the newest keep runs.
	Prune(ctx context.Context, keep int) error
}

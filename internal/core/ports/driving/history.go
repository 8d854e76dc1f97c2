package driving

import (
	"context"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

// HistoryService provides access to recorded check runs.
type HistoryService interface {
	// List returns up to limit recent run summaries, newest first.
	List(ctx context.Context, limit int) ([]domain.Report, error)

	// Show retrieves a full report by run ID. A unique run ID prefix
	// is accepted in place of the full ID.
	Show(ctx context.Context, id string) (*domain.Report, error)
}

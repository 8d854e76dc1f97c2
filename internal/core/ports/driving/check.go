package driving

import (
	"context"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

// CheckOptions control a single check run.
type CheckOptions struct {
	// Language selects the scanner. Empty or "auto" picks the first
	// scanner whose Detect matches the tree.
	Language string

	// NoPersist skips recording the report in the run store.
	NoPersist bool
}

// CheckService runs layer dependency checks over a source tree.
type CheckService interface {
	// Check builds the module graph for the tree at root, evaluates
	// the inward-dependency rule, and returns the report. The report
	// is recorded in the run store unless opts.NoPersist is set;
	// persistence failures are logged, not returned.
	Check(ctx context.Context, root string, opts CheckOptions) (*domain.Report, error)
}

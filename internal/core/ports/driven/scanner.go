package driven

import (
	"context"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

// Scanner builds a module graph from a source tree.
// Each supported language (golang, java, graphfile) implements this
// interface.
type Scanner interface {
	// Language returns the scanner's language identifier.
	Language() string

	// Detect reports whether the scanner recognises the tree at root,
	// typically by file extension. Used for language auto-selection.
	Detect(root string) bool

	// Scan walks the tree at root and returns the module graph.
	// The graph is a fresh snapshot on every call; nothing is cached
	// between invocations.
	Scan(ctx context.Context, root string, cfg domain.ScanConfig) (*domain.Graph, error)
}

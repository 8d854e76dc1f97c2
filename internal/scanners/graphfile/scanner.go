package graphfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/logger"
)

// FileName is the graph file looked up when scanning a directory.
const FileName = "layerlint.graph.json"

// Ensure Scanner implements the interface.
var _ driven.Scanner = (*Scanner)(nil)

// Scanner loads a precomputed module graph from a JSON file, for CI
// pipelines and build tools that extract the graph themselves. The
// root may be the JSON file itself or a directory containing
// layerlint.graph.json.
type Scanner struct{}

// New creates a graph file scanner.
func New() *Scanner {
	return &Scanner{}
}

// Language returns the scanner's language identifier.
func (s *Scanner) Language() string {
	return "graphfile"
}

// Detect reports whether root is a .json file or contains a graph file.
func (s *Scanner) Detect(root string) bool {
	if strings.HasSuffix(root, ".json") {
		_, err := os.Stat(root)
		return err == nil
	}
	_, err := os.Stat(filepath.Join(root, FileName))
	return err == nil
}

// graphDoc is the on-disk graph format.
type graphDoc struct {
	Modules []moduleDoc `json:"modules"`

	// External lists reference prefixes exempt from resolution,
	// merged with the configured check.external prefixes.
	External []string `json:"external,omitempty"`
}

type moduleDoc struct {
	ID    string   `json:"id"`
	Layer string   `json:"layer"`
	Refs  []string `json:"refs,omitempty"`
}

// Scan loads and decodes the graph file.
func (s *Scanner) Scan(ctx context.Context, root string, cfg domain.ScanConfig) (*domain.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := root
	if !strings.HasSuffix(path, ".json") {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}

	var doc graphDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", domain.ErrInvalidInput, path, err)
	}

	modules := make([]domain.Module, 0, len(doc.Modules))
	for _, m := range doc.Modules {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: module with empty id in %s", domain.ErrInvalidInput, path)
		}
		layer, err := domain.ParseLayer(m.Layer)
		if err != nil {
			return nil, fmt.Errorf("module %q: %w", m.ID, err)
		}
		modules = append(modules, domain.Module{
			ID:    m.ID,
			Layer: layer,
			Refs:  m.Refs,
			File:  path,
		})
	}

	external := append(append([]string(nil), doc.External...), cfg.External...)
	logger.Debug("graphfile scanner: %d modules from %s", len(modules), path)
	return domain.NewGraph(modules, external), nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
)

// fakeScanner is a canned-graph scanner for service tests.
type fakeScanner struct {
	language string
	detects  bool
	graph    *domain.Graph
	err      error

	scanned []string
}

func (f *fakeScanner) Language() string { return f.language }

func (f *fakeScanner) Detect(string) bool { return f.detects }

func (f *fakeScanner) Scan(_ context.Context, root string, _ domain.ScanConfig) (*domain.Graph, error) {
	f.scanned = append(f.scanned, root)
	if f.err != nil {
		return nil, f.err
	}
	return f.graph, nil
}

func TestScannerRegistry_GetRegistered(t *testing.T) {
	registry := NewScannerRegistry()
	registry.Register(&fakeScanner{language: "golang"})

	scanner, err := registry.Get("golang")

	require.NoError(t, err)
	assert.Equal(t, "golang", scanner.Language())
}

func TestScannerRegistry_GetUnknown(t *testing.T) {
	registry := NewScannerRegistry()

	_, err := registry.Get("cobol")

	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestScannerRegistry_DetectOrder(t *testing.T) {
	registry := NewScannerRegistry()
	registry.Register(&fakeScanner{language: "java", detects: false})
	registry.Register(&fakeScanner{language: "golang", detects: true})
	registry.Register(&fakeScanner{language: "graphfile", detects: true})

	scanner, err := registry.Detect("/some/tree")

	require.NoError(t, err)
	assert.Equal(t, "golang", scanner.Language())
}

func TestScannerRegistry_DetectNone(t *testing.T) {
	registry := NewScannerRegistry()
	registry.Register(&fakeScanner{language: "golang", detects: false})

	_, err := registry.Detect("/some/tree")

	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestScannerRegistry_Languages(t *testing.T) {
	registry := NewScannerRegistry()
	registry.Register(&fakeScanner{language: "java"})
	registry.Register(&fakeScanner{language: "golang"})
	registry.Register(&fakeScanner{language: "golang"}) // replace, not duplicate

	assert.Equal(t, []string{"golang", "java"}, registry.Languages())
}

package services

import (
	"fmt"
	"sort"
	"sync"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
)

// Ensure ScannerRegistry implements the interface.
var _ driven.ScannerRegistry = (*ScannerRegistry)(nil)

// ScannerRegistry holds the available scanners keyed by language.
// Scanners are registered at wiring time; detection order follows the
// registration order so more specific scanners should register first.
type ScannerRegistry struct {
	mu       sync.RWMutex
	scanners map[string]driven.Scanner
	order    []string
}

// NewScannerRegistry creates an empty scanner registry.
func NewScannerRegistry() *ScannerRegistry {
	return &ScannerRegistry{scanners: make(map[string]driven.Scanner)}
}

// Register adds a scanner to the registry. Registering the same
// language twice replaces the earlier scanner.
func (r *ScannerRegistry) Register(scanner driven.Scanner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lang := scanner.Language()
	if _, exists := r.scanners[lang]; !exists {
		r.order = append(r.order, lang)
	}
	r.scanners[lang] = scanner
}

// Get returns the scanner for a language identifier.
func (r *ScannerRegistry) Get(language string) (driven.Scanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scanner, ok := r.scanners[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, language)
	}
	return scanner, nil
}

// Detect returns the first registered scanner recognising the tree.
func (r *ScannerRegistry) Detect(root string) (driven.Scanner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, lang := range r.order {
		if r.scanners[lang].Detect(root) {
			return r.scanners[lang], nil
		}
	}
	return nil, fmt.Errorf("%w: no scanner recognises %s", domain.ErrUnsupportedLanguage, root)
}

// Languages lists registered language identifiers, sorted.
func (r *ScannerRegistry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	sort.Strings(out)
	return out
}

package golang

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.Scanner = (*Scanner)(nil)

// Scanner builds a module graph from a Go source tree. A module is a
// Go package; references are the package's imports within the same Go
// module. Imports outside the Go module (standard library, third
// party) are external by definition and never produce edges.
type Scanner struct{}

// New creates a Go scanner.
func New() *Scanner {
	return &Scanner{}
}

// Language returns the scanner's language identifier.
func (s *Scanner) Language() string {
	return "golang"
}

// Detect reports whether the tree looks like a Go module: a go.mod at
// the root, or .go files at the root or one level down.
func (s *Scanner) Detect(root string) bool {
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err == nil {
		return true
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".go") {
			return true
		}
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			sub, err := os.ReadDir(filepath.Join(root, e.Name()))
			if err != nil {
				continue
			}
			for _, f := range sub {
				if !f.IsDir() && strings.HasSuffix(f.Name(), ".go") {
					return true
				}
			}
		}
	}
	return false
}

// Scan walks the tree and returns the package graph. Packages outside
// any layer directory are skipped; references to skipped packages
// surface as dangling references during validation, which is the
// signal to either alias the directory to a layer or exclude it.
func (s *Scanner) Scan(ctx context.Context, root string, cfg domain.ScanConfig) (*domain.Graph, error) {
	convention := cfg.Convention
	if convention == nil {
		convention = domain.DefaultConvention()
	}

	modulePath, err := readModulePath(filepath.Join(root, "go.mod"))
	if err != nil {
		return nil, err
	}
	if modulePath == "" {
		logger.Warn("no go.mod under %s: imports cannot be resolved to packages", root)
	}

	// package rel dir -> aggregated imports
	imports := make(map[string]map[string]struct{})
	files := make(map[string]string)

	fset := token.NewFileSet()
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || cfg.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(rel, ".go") || strings.HasSuffix(rel, "_test.go") || cfg.Excluded(rel) {
			return nil
		}

		dir := filepath.ToSlash(filepath.Dir(rel))
		if _, ok := convention.LayerForPath(dir); !ok {
			// Not inside a layer directory; not part of the checked graph.
			return nil
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", rel, err)
		}

		if imports[dir] == nil {
			imports[dir] = make(map[string]struct{})
			files[dir] = rel
		}
		for _, imp := range file.Imports {
			imports[dir][strings.Trim(imp.Path.Value, `"`)] = struct{}{}
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	modules := make([]domain.Module, 0, len(imports))
	for dir, imps := range imports {
		layer, _ := convention.LayerForPath(dir)
		m := domain.Module{
			ID:    dir,
			Layer: layer,
			File:  files[dir],
		}
		for imp := range imps {
			ref, ok := internalRef(imp, modulePath)
			if !ok || ref == dir {
				continue
			}
			m.Refs = append(m.Refs, ref)
		}
		sort.Strings(m.Refs)
		modules = append(modules, m)
	}

	logger.Debug("golang scanner: %d packages under %s", len(modules), root)
	return domain.NewGraph(modules, cfg.External), nil
}

// internalRef maps an import path within the Go module to a relative
// package directory. Imports outside the module are external.
func internalRef(importPath, modulePath string) (string, bool) {
	if modulePath == "" {
		return "", false
	}
	if importPath == modulePath {
		return ".", true
	}
	if !strings.HasPrefix(importPath, modulePath+"/") {
		return "", false
	}
	return strings.TrimPrefix(importPath, modulePath+"/"), true
}

// readModulePath extracts the module path from a go.mod file.
// Returns empty string if the file does not exist.
func readModulePath(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading go.mod: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module ")), nil
		}
	}
	return "", nil
}

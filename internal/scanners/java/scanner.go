package java

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
	"github.com/structura-labs/layerlint-cli/internal/logger"
)

// jdkPrefixes are always external; no configuration needed to exempt
// the JDK itself.
var jdkPrefixes = []string{"java.", "javax.", "jakarta."}

// Ensure Scanner implements the interface.
var _ driven.Scanner = (*Scanner)(nil)

// Scanner builds a module graph from a Java source tree. A module is a
// top-level type: its ID is the fully-qualified name derived from the
// package declaration and the file name. References are import
// declarations. Imports that resolve to no scanned type must be
// covered by an external prefix (check.external) or they surface as
// dangling references, which keeps typos and unmapped packages loud.
type Scanner struct{}

// New creates a Java scanner.
func New() *Scanner {
	return &Scanner{}
}

// Language returns the scanner's language identifier.
func (s *Scanner) Language() string {
	return "java"
}

// Detect reports whether the tree contains any .java file.
func (s *Scanner) Detect(root string) bool {
	found := false
	//nolint:errcheck // best-effort probe, SkipAll is the success path
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != root {
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".java") {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// Scan walks the tree and returns the type graph.
func (s *Scanner) Scan(ctx context.Context, root string, cfg domain.ScanConfig) (*domain.Graph, error) {
	convention := cfg.Convention
	if convention == nil {
		convention = domain.DefaultConvention()
	}
	external := append(append([]string(nil), jdkPrefixes...), cfg.External...)

	var modules []domain.Module
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
			if strings.HasPrefix(d.Name(), ".") || cfg.Excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(rel, ".java") || cfg.Excluded(rel) {
			return nil
		}

		layer, ok := convention.LayerForPath(rel)
		if !ok {
			return fmt.Errorf("%w: %s is outside every layer directory", domain.ErrUnknownLayer, rel)
		}

		module, err := parseFile(path, rel, layer)
		if err != nil {
			return err
		}
		modules = append(modules, module)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logger.Debug("java scanner: %d types under %s", len(modules), root)
	return domain.NewGraph(modules, external), nil
}

// parseFile reads the package and import declarations of a Java file.
// This is a line scan, not a full parse; it stops at the first type
// declaration since imports cannot appear after it.
func parseFile(path, rel string, layer domain.Layer) (domain.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Module{}, fmt.Errorf("opening %s: %w", rel, err)
	}
	defer f.Close()

	typeName := strings.TrimSuffix(filepath.Base(rel), ".java")
	var pkg string
	var refs []string

	scanner := bufio.NewScanner(f)
scan:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "package "):
			pkg = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(line, "package ")), ";")
		case strings.HasPrefix(line, "import "):
			ref := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(line, "import ")), ";")
			ref = strings.TrimSpace(strings.TrimPrefix(ref, "static "))
			if strings.HasSuffix(ref, ".*") {
				// Wildcard imports cannot be resolved to a type.
				logger.Debug("java scanner: ignoring wildcard import %s in %s", ref, rel)
				continue
			}
			refs = append(refs, ref)
		case strings.HasPrefix(line, "public ") || strings.HasPrefix(line, "class ") ||
			strings.HasPrefix(line, "interface ") || strings.HasPrefix(line, "enum ") ||
			strings.HasPrefix(line, "record ") || strings.HasPrefix(line, "@"):
			// First type declaration (or annotation on it); imports are done.
			break scan
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Module{}, fmt.Errorf("reading %s: %w", rel, err)
	}

	id := typeName
	if pkg != "" {
		id = pkg + "." + typeName
	}

	// Static member imports reference Type.member; trim to the type.
	for i, ref := range refs {
		refs[i] = trimStaticMember(ref)
	}
	sort.Strings(refs)
	refs = dedupe(refs)

	return domain.Module{ID: id, Layer: layer, Refs: refs, File: rel}, nil
}

// trimStaticMember maps com.example.Foo.BAR to com.example.Foo by
// dropping a trailing segment that does not look like a type name.
func trimStaticMember(ref string) string {
	segments := strings.Split(ref, ".")
	if len(segments) < 2 {
		return ref
	}
	last := segments[len(segments)-1]
	prev := segments[len(segments)-2]
	if isTypeName(prev) && !isTypeName(last) {
		return strings.Join(segments[:len(segments)-1], ".")
	}
	return ref
}

// isTypeName reports whether a segment follows the Java type naming
// convention: leading upper-case letter, not all caps.
func isTypeName(segment string) bool {
	if segment == "" {
		return false
	}
	first := rune(segment[0])
	if first < 'A' || first > 'Z' {
		return false
	}
	return segment != strings.ToUpper(segment) || len(segment) == 1
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

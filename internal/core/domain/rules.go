package domain

import (
	"fmt"
	"sort"
)

// Validate evaluates the inward-dependency rule over the graph and
// returns every violating edge, ordered by (FromModule, ToModule).
//
// Validate is a pure function over the supplied graph: it performs no
// I/O, mutates nothing, and yields identical output for identical
// input. It fails fast with ErrUnknownLayer if a module carries an
// unknown layer, or ErrDanglingReference if a reference resolves to
// neither a graph module nor an external prefix; no partial violation
// list is returned in either case.
//
// Single linear pass, O(edges).
func Validate(g *Graph) ([]Violation, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidInput)
	}

	var violations []Violation
	for _, from := range g.modules {
		if !from.Layer.Valid() {
			return nil, fmt.Errorf("%w: module %q", ErrUnknownLayer, from.ID)
		}
		for _, ref := range from.Refs {
			to, ok := g.modules[ref]
			if !ok {
				if g.External(ref) {
					continue
				}
				return nil, fmt.Errorf("%w: %q referenced by %q", ErrDanglingReference, ref, from.ID)
			}
			if !to.Layer.Valid() {
				return nil, fmt.Errorf("%w: module %q", ErrUnknownLayer, to.ID)
			}
			if !from.Layer.MayReference(to.Layer) {
				violations = append(violations, Violation{
					FromModule: from.ID,
					FromLayer:  from.Layer,
					ToModule:   to.ID,
					ToLayer:    to.Layer,
				})
			}
		}
	}

	// Map iteration order is random; sort for deterministic output.
	sort.Slice(violations, func(i, j int) bool {
		if violations[i].FromModule != violations[j].FromModule {
			return violations[i].FromModule < violations[j].FromModule
		}
		return violations[i].ToModule < violations[j].ToModule
	})

	return violations, nil
}

package domain

import (
	"sort"
	"strings"
)

// Module is a unit of source code assigned to exactly one layer.
type Module struct {
	// ID uniquely identifies the module within the graph, e.g. a
	// package path or fully-qualified type name.
	ID string

	// Layer is the tier derived from the module's location.
	Layer Layer

	// Refs lists the IDs of modules this module references.
	Refs []string

	// File is the source location the module was derived from.
	// Informational only; empty for synthetic graphs.
	File string
}

// Graph is an immutable snapshot of modules and their references,
// rebuilt from the source tree on every check invocation.
type Graph struct {
	modules map[string]Module

	// external holds reference prefixes exempt from the
	// dangling-reference check (standard library, third-party code).
	external []string
}

// NewGraph creates a graph over the given modules. External prefixes
// exempt matching references from the dangling-reference check.
func NewGraph(modules []Module, external []string) *Graph {
	g := &Graph{
		modules:  make(map[string]Module, len(modules)),
		external: external,
	}
	for _, m := range modules {
		g.modules[m.ID] = m
	}
	return g
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	return len(g.modules)
}

// EdgeCount returns the total number of reference edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, m := range g.modules {
		n += len(m.Refs)
	}
	return n
}

// Module returns the module with the given ID, if present.
func (g *Graph) Module(id string) (Module, bool) {
	m, ok := g.modules[id]
	return m, ok
}

// Modules returns all modules sorted by ID.
func (g *Graph) Modules() []Module {
	out := make([]Module, 0, len(g.modules))
	for _, m := range g.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// External reports whether a reference is exempt from resolution,
// i.e. matches one of the configured external prefixes.
func (g *Graph) External(ref string) bool {
	for _, prefix := range g.external {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return false
}

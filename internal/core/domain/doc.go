// Package domain defines the core entities for layerlint.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Layer: One of the four concentric architecture tiers
//   - Module: A unit of source code assigned to exactly one Layer
//   - Graph: An immutable snapshot of modules and their references
//   - Violation: A reference edge that breaks the inward-dependency rule
//   - Report: The outcome of a single check run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse. layerlint's own layout follows the rule it
// enforces.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

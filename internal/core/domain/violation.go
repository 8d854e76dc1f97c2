package domain

import (
	"fmt"
	"time"
)

// Violation records a single reference edge that breaks the
// inward-dependency rule: a module referencing a module in a
// strictly outer layer.
type Violation struct {
	// FromModule is the referencing module's ID.
	FromModule string `json:"from_module"`

	// FromLayer is the referencing module's layer.
	FromLayer Layer `json:"from_layer"`

	// ToModule is the referenced module's ID.
	ToModule string `json:"to_module"`

	// ToLayer is the referenced module's layer.
	ToLayer Layer `json:"to_layer"`
}

// String renders the violation in the canonical single-line form used
// by the CLI's plain output.
func (v Violation) String() string {
	return fmt.Sprintf("%s (%s) -> %s (%s)", v.FromModule, v.FromLayer, v.ToModule, v.ToLayer)
}

// Report is the outcome of a single check run.
type Report struct {
	// ID is the unique identifier for the run.
	ID string `json:"id"`

	// Root is the source tree the graph was built from.
	Root string `json:"root"`

	// Language identifies the scanner that built the graph.
	Language string `json:"language"`

	// StartedAt is when the check began.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the scan and evaluation took.
	Duration time.Duration `json:"duration"`

	// ModuleCount is the number of modules in the graph.
	ModuleCount int `json:"module_count"`

	// EdgeCount is the number of reference edges evaluated.
	EdgeCount int `json:"edge_count"`

	// ViolationCount is the number of violating edges. Equal to
	// len(Violations) on a full report; run summaries carry the
	// count without the violation list.
	ViolationCount int `json:"violation_count"`

	// Violations lists violating edges ordered by
	// (FromModule, ToModule). Empty for a clean tree.
	Violations []Violation `json:"violations"`
}

// Clean reports whether the run found no violations.
func (r *Report) Clean() bool {
	return r.ViolationCount == 0 && len(r.Violations) == 0
}

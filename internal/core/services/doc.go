// Package services implements the driving port interfaces.
// Services contain the core check logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external dependencies beyond the
// uuid generator used for run IDs.
package services

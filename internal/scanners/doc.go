// Package scanners contains the driven.Scanner implementations that
// build a module graph from a source tree.
//
// Each language lives in its own subpackage:
//
//   - golang: Go packages, imports resolved via go/parser
//   - java: Java types, package/import declarations read textually
//   - graphfile: precomputed JSON graphs for CI pipelines
//
// Scanners assign layers from directory location using the convention
// in the scan config and never evaluate the dependency rule themselves;
// that is the domain package's job.
package scanners

// Package file provides the TOML-backed configuration store.
//
// Configuration lives in ~/.layerlint/config.toml by default. Nested
// tables flatten to dot-notation keys on load, so [check] external =
// [...] is read as "check.external".
package file

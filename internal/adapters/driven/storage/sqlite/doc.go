// Package sqlite provides the SQLite-backed run history store.
//
// The store keeps every recorded check run and its violations in a
// single database file (default ~/.layerlint/data/history.db) opened
// in WAL mode. Schema changes ship as embedded SQL migrations applied
// on open.
//
// modernc.org/sqlite is a pure-Go driver, so the binary stays
// CGO-free.
package sqlite

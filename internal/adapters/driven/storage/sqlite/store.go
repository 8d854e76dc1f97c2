package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/structura-labs/layerlint-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/structura-labs/layerlint-cli/internal/core/domain"
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RunStore = (*Store)(nil)

// Store is the SQLite-backed run history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.layerlint/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".layerlint", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRun stores a report and its violations in one transaction.
func (s *Store) SaveRun(ctx context.Context, report domain.Report) error {
	if report.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, root, language, started_at, duration_ms,
			module_count, edge_count, violation_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			root = excluded.root,
			language = excluded.language,
			started_at = excluded.started_at,
			duration_ms = excluded.duration_ms,
			module_count = excluded.module_count,
			edge_count = excluded.edge_count,
			violation_count = excluded.violation_count
	`, report.ID, report.Root, report.Language, report.StartedAt.UTC(),
		report.Duration.Milliseconds(), report.ModuleCount, report.EdgeCount,
		len(report.Violations))
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM violations WHERE run_id = ?", report.ID); err != nil {
		return fmt.Errorf("clearing violations: %w", err)
	}

	for i, v := range report.Violations {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO violations (run_id, position, from_module, from_layer, to_module, to_layer)
			VALUES (?, ?, ?, ?, ?, ?)
		`, report.ID, i, v.FromModule, v.FromLayer.String(), v.ToModule, v.ToLayer.String())
		if err != nil {
			return fmt.Errorf("saving violation: %w", err)
		}
	}

	return tx.Commit()
}

// GetRun retrieves a report by ID, violations included.
func (s *Store) GetRun(ctx context.Context, id string) (*domain.Report, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, root, language, started_at, duration_ms,
			module_count, edge_count, violation_count
		FROM runs WHERE id = ?
	`, id)

	report, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT from_module, from_layer, to_module, to_layer
		FROM violations WHERE run_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("getting violations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.Violation
		var fromLayer, toLayer string
		if err := rows.Scan(&v.FromModule, &fromLayer, &v.ToModule, &toLayer); err != nil {
			return nil, fmt.Errorf("scanning violation: %w", err)
		}
		if v.FromLayer, err = domain.ParseLayer(fromLayer); err != nil {
			return nil, err
		}
		if v.ToLayer, err = domain.ParseLayer(toLayer); err != nil {
			return nil, err
		}
		report.Violations = append(report.Violations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating violations: %w", err)
	}

	return report, nil
}

// ListRuns returns up to limit recent run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.Report, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, root, language, started_at, duration_ms,
			module_count, edge_count, violation_count
		FROM runs
		ORDER BY started_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []domain.Report
	for rows.Next() {
		report, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return out, nil
}

// Prune deletes all but the newest keep runs. Violations go with
// their runs via the foreign key cascade.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at DESC, id LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning runs: %w", err)
	}
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanRun.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Report, error) {
	var report domain.Report
	var startedAt time.Time
	var durationMs int64
	if err := row.Scan(&report.ID, &report.Root, &report.Language, &startedAt,
		&durationMs, &report.ModuleCount, &report.EdgeCount,
		&report.ViolationCount); err != nil {
		return nil, err
	}
	report.StartedAt = startedAt
	report.Duration = time.Duration(durationMs) * time.Millisecond
	return &report, nil
}

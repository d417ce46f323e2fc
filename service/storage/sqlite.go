package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.tagcheck/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

// SaveRun persists one verification run.
func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.Tag == "" {
		return 0, errors.New("tag is required")
	}
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			run_uuid, tag, tag_version, manifest_path, manifest_version,
			module_path, module_version, docs_mentioned, mismatch_count,
			passed, cli_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.Tag, input.TagVersion, input.ManifestPath, input.ManifestVersion,
		input.ModulePath, input.ModuleVersion, boolToInt(input.DocsMentioned),
		input.MismatchCount, boolToInt(input.Passed), input.Version)
	if err != nil {
		return 0, fmt.Errorf("failed to save run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return runID, nil
}

// GetRecentRuns returns the most recent runs, newest first.
func (s *service) GetRecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(`
		SELECT run_id, run_uuid, tag, tag_version, manifest_version,
		       module_version, mismatch_count, passed, run_timestamp, cli_version
		FROM runs
		ORDER BY run_timestamp DESC, run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			r       RunSummary
			passed  int
			rawTime string
		)
		if err := rows.Scan(&r.RunID, &r.RunUUID, &r.Tag, &r.TagVersion,
			&r.ManifestVersion, &r.ModuleVersion, &r.MismatchCount,
			&passed, &rawTime, &r.Version); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		r.Passed = passed != 0
		ts, err := time.Parse("2006-01-02 15:04:05", rawTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp %q: %w", rawTime, err)
		}
		r.RunTimestamp = ts
		out = append(out, r)
	}
	return out, rows.Err()
}

// PurgeOlderThan removes runs older than the given number of days and
// returns the number of deleted rows.
func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be positive")
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE run_timestamp < datetime('now', ?)`,
		fmt.Sprintf("-%d days", days))
	if err != nil {
		return 0, fmt.Errorf("failed to purge runs: %w", err)
	}
	return res.RowsAffected()
}

// Vacuum compacts the database file.
func (s *service) Vacuum(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum db: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *service) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/a11yaudit/internal/aggregate"
	"github.com/nao1215/a11yaudit/internal/model"
)

// AuditDB provides SQLite-based storage for audit run history.
//
// Design decision: We use a single database file holding every run rather
// than one file per run. History queries and the run comparison need to see
// all runs at once, and a single file keeps backup trivial.
type AuditDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an AuditDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is
// returned.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, "a11yaudit.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses mode=rw to prevent creating new files and
	// mode=rwc to allow creation.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a larger pool buys nothing here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	schema := `
	-- Audit runs store complete audit results as JSON plus summary columns
	-- that history listings can read without deserializing the full run.
	CREATE TABLE IF NOT EXISTS audit_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		page_count INTEGER NOT NULL,
		average_score INTEGER NOT NULL,
		severity_summary TEXT,
		run_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON audit_runs(timestamp);
	`

	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun stores a completed audit run and returns its database ID.
func (adb *AuditDB) SaveRun(ctx context.Context, audits []model.PageAudit) (int64, error) {
	runJSON, err := json.Marshal(audits)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize audit run: %w", err)
	}

	counts := aggregate.CountsBySeverity(audits)
	summary := map[string]int{
		"error":   counts[model.SeverityError],
		"warning": counts[model.SeverityWarning],
		"info":    counts[model.SeverityInfo],
	}
	summaryJSON, _ := json.Marshal(summary) //nolint:errcheck,errchkjson // simple map; Marshal won't fail

	query := `
	INSERT INTO audit_runs (page_count, average_score, severity_summary, run_json)
	VALUES (?, ?, ?, ?)
	`

	result, err := adb.db.ExecContext(ctx, query,
		len(audits),
		aggregate.AverageScore(audits),
		string(summaryJSON),
		string(runJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save audit run: %w", err)
	}

	return result.LastInsertId()
}

// GetRunByID retrieves a run's audit collection by its database ID.
// Returns nil without error when no such run exists.
func (adb *AuditDB) GetRunByID(ctx context.Context, id int64) ([]model.PageAudit, error) {
	query := `SELECT run_json FROM audit_runs WHERE id = ?`

	var runJSON string
	err := adb.db.QueryRowContext(ctx, query, id).Scan(&runJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get audit run: %w", err)
	}

	var audits []model.PageAudit
	if err := json.Unmarshal([]byte(runJSON), &audits); err != nil {
		return nil, fmt.Errorf("failed to parse audit run: %w", err)
	}
	return audits, nil
}

// GetLatestRuns retrieves the newest n runs, newest first.
func (adb *AuditDB) GetLatestRuns(ctx context.Context, n int) ([][]model.PageAudit, error) {
	query := `
	SELECT run_json FROM audit_runs
	ORDER BY timestamp DESC, id DESC
	LIMIT ?
	`

	rows, err := adb.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest runs: %w", err)
	}
	defer rows.Close()

	var runs [][]model.PageAudit
	for rows.Next() {
		var runJSON string
		if err := rows.Scan(&runJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		var audits []model.PageAudit
		if err := json.Unmarshal([]byte(runJSON), &audits); err != nil {
			continue // Skip malformed runs
		}
		runs = append(runs, audits)
	}

	return runs, rows.Err()
}

// RunMetadata contains summary information about a stored audit run.
// This is used for displaying run history without loading the full run.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Timestamp is when the run was saved.
	Timestamp time.Time

	// PageCount is the number of audited pages in the run.
	PageCount int

	// AverageScore is the run's rounded mean page score.
	AverageScore int

	// SeveritySummary contains issue counts by severity name.
	SeveritySummary map[string]int
}

// GetRunHistory retrieves metadata for every stored run, newest first.
// This is more efficient than loading full runs when only the listing is
// needed.
func (adb *AuditDB) GetRunHistory(ctx context.Context) ([]RunMetadata, error) {
	query := `
	SELECT id, timestamp, page_count, average_score, severity_summary
	FROM audit_runs
	ORDER BY timestamp DESC, id DESC
	`

	rows, err := adb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var timestamp string
		var summaryJSON sql.NullString

		if err := rows.Scan(&meta.ID, &timestamp, &meta.PageCount, &meta.AverageScore, &summaryJSON); err != nil {
			return nil, fmt.Errorf("failed to scan run metadata: %w", err)
		}

		meta.Timestamp = parseTimestamp(timestamp)

		if summaryJSON.Valid && summaryJSON.String != "" {
			if err := json.Unmarshal([]byte(summaryJSON.String), &meta.SeveritySummary); err != nil {
				meta.SeveritySummary = make(map[string]int)
			}
		} else {
			meta.SeveritySummary = make(map[string]int)
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple
// formats. SQLite may return timestamps in different formats depending on
// configuration. If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

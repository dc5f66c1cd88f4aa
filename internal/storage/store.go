// Package storage persists entity collections as JSON-serialized arrays in a
// SQLite-backed key-value table, one row per collection key.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"budgetcal/internal/log"
)

// SchemaVersion tags every persisted payload. Bump together with a payload
// migration in migratePayload when a stored record shape changes.
const SchemaVersion = 1

// ErrRevisionConflict reports that a write lost the race against another
// writer: the stored revision no longer matches the one the caller read.
var ErrRevisionConflict = errors.New("storage: revision conflict")

// Store is the durable key-value adapter. Reads degrade to "no data" on
// missing or corrupt payloads; writes are guarded by per-key optimistic
// revisions so a concurrent writer cannot be silently overwritten.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if needed) the SQLite database at dbPath and runs
// schema migrations.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, logger: log.Default(log.ComponentStorage)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get unmarshals the payload stored under key into out and returns the
// current revision. A missing row, an unreadable row or a corrupt payload all
// degrade to found=false: the caller proceeds with an empty collection and
// the problem is logged, never surfaced. A corrupt row still reports its
// stored revision, so the next Set replaces it instead of conflicting with
// it forever.
func (s *Store) Get(ctx context.Context, key string, out any) (revision int64, found bool) {
	var (
		payload string
		version int64
	)
	row := s.db.QueryRowContext(ctx,
		`SELECT payload, revision, schema_version FROM collections WHERE key = ?`, key)
	if err := row.Scan(&payload, &revision, &version); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.WarnContext(ctx, "Collection read failed, treating as empty",
				log.FieldKey, key, log.FieldError, err)
		}
		return 0, false
	}

	payload, err := migratePayload(key, payload, version)
	if err != nil {
		s.logger.WarnContext(ctx, "Collection payload migration failed, treating as empty",
			log.FieldKey, key, "stored_version", version, log.FieldError, err)
		return revision, false
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		s.logger.WarnContext(ctx, "Corrupt collection payload, treating as empty",
			log.FieldKey, key, log.FieldError, err)
		return revision, false
	}
	return revision, true
}

// Set serializes value and writes it under key, but only if the stored
// revision still equals expected (0 means "no row yet"). Returns the new
// revision, or ErrRevisionConflict when another writer got there first.
func (s *Store) Set(ctx context.Context, key string, value any, expected int64) (int64, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return 0, fmt.Errorf("marshal collection %s: %w", key, err)
	}
	now := time.Now().UTC().Format(time.RFC3339)

	var res sql.Result
	if expected == 0 {
		res, err = s.db.ExecContext(ctx,
			`INSERT INTO collections (key, payload, revision, schema_version, updated_at)
			 VALUES (?, ?, 1, ?, ?)
			 ON CONFLICT(key) DO NOTHING`,
			key, string(payload), SchemaVersion, now)
	} else {
		res, err = s.db.ExecContext(ctx,
			`UPDATE collections
			 SET payload = ?, revision = revision + 1, schema_version = ?, updated_at = ?
			 WHERE key = ? AND revision = ?`,
			string(payload), SchemaVersion, now, key, expected)
	}
	if err != nil {
		return 0, fmt.Errorf("write collection %s: %w", key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("write collection %s: %w", key, err)
	}
	if affected == 0 {
		return 0, ErrRevisionConflict
	}
	return expected + 1, nil
}

// migratePayload upgrades a stored payload from an older schema version to
// the current one. With a single version in the wild this is a pass-through;
// the hook exists so shape changes get an explicit upgrade path instead of
// trusting stale records as-is.
func migratePayload(key, payload string, version int64) (string, error) {
	switch {
	case version == SchemaVersion:
		return payload, nil
	case version > SchemaVersion:
		return "", fmt.Errorf("payload for %s has schema version %d, newer than supported %d",
			key, version, SchemaVersion)
	default:
		// No older versions exist yet.
		return payload, nil
	}
}

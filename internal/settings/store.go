package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store persists settings as key-value rows in SQLite. Every write bumps a
// revision counter so another process can notice the change by polling.
type Store struct {
	conn *sqlx.DB
	log  *slog.Logger
}

// Open opens or creates the settings database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn, log: slog.Default().With("component", "store")}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS revision (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		rev INTEGER NOT NULL
	);

	INSERT OR IGNORE INTO revision (id, rev) VALUES (1, 0);
	`
	_, err := s.conn.Exec(schema)
	return err
}

type row struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Load reads all persisted settings. Keys that are missing or unreadable
// fall back to their defaults.
func (s *Store) Load(ctx context.Context) (Values, error) {
	var rows []row
	if err := s.conn.SelectContext(ctx, &rows, "SELECT key, value FROM settings"); err != nil {
		return Values{}, fmt.Errorf("select settings: %w", err)
	}

	m := make(map[string]string, len(rows))
	for _, r := range rows {
		m[r.Key] = r.Value
	}
	v, err := Decode(m)
	if err != nil {
		s.log.Warn("ignoring unreadable settings", "error", err)
	}
	return v, nil
}

// Save writes every key of v in one transaction.
func (s *Store) Save(ctx context.Context, v Values) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, "INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	enc := v.Encode()
	for _, key := range Keys {
		if _, err := stmt.ExecContext(ctx, key, enc[key]); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	if err := bump(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Reset deletes every persisted key so the next Load yields defaults.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM settings"); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	if err := bump(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Revision returns the write counter.
func (s *Store) Revision(ctx context.Context) (int64, error) {
	var rev int64
	err := s.conn.GetContext(ctx, &rev, "SELECT rev FROM revision WHERE id = 1")
	return rev, err
}

func bump(ctx context.Context, tx *sqlx.Tx) error {
	if _, err := tx.ExecContext(ctx, "UPDATE revision SET rev = rev + 1 WHERE id = 1"); err != nil {
		return fmt.Errorf("bump revision: %w", err)
	}
	return nil
}

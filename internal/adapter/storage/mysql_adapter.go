package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rl1809/storefront/internal/pkg/errs"
)

// MySQLAdapter persists store snapshots in a single kv table, one row per
// key, value replaced wholesale on every set.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// EnsureSchema creates the kv table if it does not exist yet.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			k VARCHAR(191) NOT NULL PRIMARY KEY,
			v LONGTEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	return errs.Wrap(err, "create kv table")
}

func (m *MySQLAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	var val string
	err := m.db.QueryRowContext(ctx, `SELECT v FROM kv WHERE k = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrapf(err, "select kv %s", key)
	}
	return val, true, nil
}

func (m *MySQLAdapter) Set(ctx context.Context, key string, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv (k, v) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE v = VALUES(v)`,
		key, value,
	)
	return errs.Wrapf(err, "upsert kv %s", key)
}

func (m *MySQLAdapter) Remove(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	return errs.Wrapf(err, "delete kv %s", key)
}

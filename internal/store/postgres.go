// AngelaMos | 2026
// postgres.go

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/copilothub/internal/core"
)

// PostgresKV persists collections in a single keyed-records table with JSONB
// values, one row per collection.
type PostgresKV struct {
	db core.DBTX
}

func NewPostgresKV(db core.DBTX) *PostgresKV {
	return &PostgresKV{db: db}
}

// EnsureSchema creates the records table when it does not exist yet.
func (p *PostgresKV) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS records (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`

	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("ensure records schema: %w", err)
	}

	return nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM records WHERE key = $1`

	var value []byte
	err := p.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", key, err)
	}

	return value, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO records (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set record %s: %w", key, err)
	}

	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM records WHERE key = $1`

	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}

	return nil
}

var _ KV = (*PostgresKV)(nil)

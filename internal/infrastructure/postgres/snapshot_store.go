package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/OnKodr-dev/inventory-app/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotRepo)(nil)

// Querier lo que necesita el repositorio; lo cumplen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS inventory_snapshots (
	name       TEXT PRIMARY KEY,
	value      BYTEA NOT NULL,
	size_kb    NUMERIC(12,3) NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SnapshotRepo implementación de SnapshotStore sobre PostgreSQL.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// EnsureSchema crea la tabla inventory_snapshots si no existe.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear inventory_snapshots: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.q.QueryRow(ctx, `SELECT value FROM inventory_snapshots WHERE name = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSnapshotNotFound
		}
		if isUndefinedTable(err) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("get snapshot %s: %w", key, err)
	}
	return value, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO inventory_snapshots (name, value, size_kb, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, size_kb = EXCLUDED.size_kb, updated_at = now()`
	if _, err := r.q.Exec(ctx, query, key, value, sizeKB(value)); err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

func (r *SnapshotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM inventory_snapshots WHERE name = $1`, key); err != nil {
		if isUndefinedTable(err) {
			return nil
		}
		return fmt.Errorf("delete snapshot %s: %w", key, err)
	}
	return nil
}

// Size tamaño guardado de una instantánea, en KB.
func (r *SnapshotRepo) Size(ctx context.Context, key string) (decimal.Decimal, error) {
	var kb decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT size_kb FROM inventory_snapshots WHERE name = $1`, key).Scan(&kb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, repository.ErrSnapshotNotFound
		}
		return decimal.Zero, fmt.Errorf("get snapshot size %s: %w", key, err)
	}
	return kb, nil
}

func sizeKB(value []byte) decimal.Decimal {
	return decimal.NewFromInt(int64(len(value))).Div(decimal.NewFromInt(1024)).Round(3)
}

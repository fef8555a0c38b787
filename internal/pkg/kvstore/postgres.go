package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stafftrack/stafftrack-go/internal/pkg/database"
)

// PostgresStore keeps each collection as a single jsonb row. There is no
// per-record schema on purpose: the store contract is whole-document
// read-modify-write.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(ctx context.Context, db *database.DB) (*PostgresStore, error) {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare collections table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Read(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM collections WHERE name = $1`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to read collection %q: %w", name, err)
	}

	return data, nil
}

func (s *PostgresStore) Write(ctx context.Context, name string, data []byte) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`, name, data)
	if err != nil {
		return fmt.Errorf("failed to write collection %q: %w", name, err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, name string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM collections WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete collection %q: %w", name, err)
	}

	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT name FROM collections ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

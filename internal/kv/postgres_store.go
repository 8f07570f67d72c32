package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nahidasmakeover/boutique/internal/utils"
)

type postgresStore struct {
	DB *sql.DB
}

// NewPostgresStore keeps values in the storefront_state table.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{DB: db}
}

func (p *postgresStore) Get(ctx context.Context, key string, value any) (bool, error) {
	dbCtx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	var data []byte

	query := `SELECT value FROM storefront_state WHERE key = $1`

	err := p.DB.QueryRowContext(dbCtx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from postgres: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal data for key %s: %w", key, err)
	}

	return true, nil
}

func (p *postgresStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	dbCtx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO storefront_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	if _, err := p.DB.ExecContext(dbCtx, query, key, data); err != nil {
		return fmt.Errorf("failed to set key %s in postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Delete(ctx context.Context, key string) error {
	dbCtx, cancel := utils.WithStorageTimeout(ctx)
	defer cancel()

	if _, err := p.DB.ExecContext(dbCtx, `DELETE FROM storefront_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete key %s from postgres: %w", key, err)
	}

	return nil
}

func (p *postgresStore) Close() error {
	return p.DB.Close()
}
